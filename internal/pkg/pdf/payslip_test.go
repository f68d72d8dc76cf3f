package pdf

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderPayslip(t *testing.T) {
	body, err := RenderPayslip(Payslip{
		Reference:        "6f1c2a9e-1111-2222-3333-444455556666",
		EmployeeCode:     "EMP00042",
		EmployeeName:     "Asha Nair",
		Designation:      "Engineer",
		Department:       "Engineering",
		Month:            3,
		Year:             2026,
		Basic:            "50000.00",
		HRA:              "20000.00",
		Conveyance:       "1600.00",
		MedicalAllowance: "1250.00",
		Gross:            "72850.00",
		Deductions:       "0.00",
		Net:              "72850.00",
		Status:           "Generated",
	})
	require.NoError(t, err)
	require.NotEmpty(t, body)
	assert.Equal(t, "%PDF", string(body[:4]))
}

func TestRenderPayslipWithoutOptionalFields(t *testing.T) {
	body, err := RenderPayslip(Payslip{
		Reference:    "ref",
		EmployeeCode: "EMP00001",
		EmployeeName: "Ravi",
		Month:        1,
		Year:         2026,
		Basic:        "10000.00",
		Net:          "10000.00",
		Status:       "Draft",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, body)
}
