package taxdecl

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateDeclarationRequestValidate(t *testing.T) {
	ok := CreateDeclarationRequest{EmployeeID: 1, FinancialYear: "2025-26"}
	assert.NoError(t, ok.Validate())

	cases := []struct {
		name string
		req  CreateDeclarationRequest
	}{
		{"missing employee", CreateDeclarationRequest{FinancialYear: "2025-26"}},
		{"missing year", CreateDeclarationRequest{EmployeeID: 1}},
		{"non-consecutive year", CreateDeclarationRequest{EmployeeID: 1, FinancialYear: "2025-27"}},
		{"bad status", CreateDeclarationRequest{EmployeeID: 1, FinancialYear: "2025-26", Status: "Filed"}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			require.Error(t, c.req.Validate())
		})
	}
}

func TestApproveRequestValidate(t *testing.T) {
	ok := ApproveRequest{IDs: []int64{1, 2}, Status: "Approved"}
	assert.NoError(t, ok.Validate())

	assert.Error(t, (&ApproveRequest{Status: "Approved"}).Validate())
	assert.Error(t, (&ApproveRequest{IDs: []int64{1}, Status: "Done"}).Validate())
}

func TestUpdateDeclarationRequestValidate(t *testing.T) {
	empty := UpdateDeclarationRequest{}
	assert.NoError(t, empty.Validate())

	bad := "Filed"
	req := UpdateDeclarationRequest{Status: &bad}
	assert.Error(t, req.Validate())
}
