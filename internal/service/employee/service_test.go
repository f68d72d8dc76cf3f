package employee

import (
	"testing"
	"time"

	"github.com/corehr/hrms-backend-go/internal/domain/employee"
	"github.com/corehr/hrms-backend-go/internal/pkg/spreadsheet"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func importRow() spreadsheet.Row {
	return spreadsheet.Row{
		"First Name":      "Asha",
		"Last Name":       "Menon",
		"Official Email":  "asha.menon@corehr.example",
		"Department ID":   "3",
		"Designation ID":  "7",
		"Branch ID":       "1",
		"Joining Date":    "2025-04-01",
		"Employment Type": "Permanent",
		"PAN":             "ABCDE1234F",
		"Aadhaar":         "123456789012",
	}
}

func TestImportRowWithoutPasswordGetsDefaultSecret(t *testing.T) {
	req, err := profileRequestFromRow(importRow())
	require.NoError(t, err)
	require.NoError(t, req.Validate())

	assert.Equal(t, defaultImportPassword, req.Password)

	svc := &ProfileServiceImpl{}
	acct, err := svc.buildAccount(req)
	require.NoError(t, err)
	require.NotEmpty(t, acct.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(acct.PasswordHash), []byte(defaultImportPassword)))
}

func TestImportRowKeepsProvidedPassword(t *testing.T) {
	row := importRow()
	row["Password"] = "s3cret-from-sheet"

	req, err := profileRequestFromRow(row)
	require.NoError(t, err)

	assert.Equal(t, "s3cret-from-sheet", req.Password)
}

// An exported row must survive re-import: mapping it back onto the creation
// payload has to pass validation, so the only failures left on a re-import of
// the same file are uniqueness violations on employee code and identity
// numbers.
func TestExportRowReimports(t *testing.T) {
	salary := decimal.NewFromInt(50000)
	phone := "9876543210"
	dept := "Engineering"
	desig := "Staff Engineer"
	branch := "Bengaluru"
	p := employee.ProfileWithAccount{
		Profile: employee.Profile{
			ID:               12,
			AccountID:        34,
			EmployeeCode:     "EMP00034",
			OfficialEmail:    "asha.menon@corehr.example",
			DepartmentID:     3,
			DesignationID:    7,
			BranchID:         1,
			JoiningDate:      time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC),
			EmploymentType:   employee.EmploymentTypePermanent,
			EmploymentStatus: employee.EmploymentStatusActive,
			BaseSalary:       &salary,
			PAN:              "ABCDE1234F",
			Aadhaar:          "123456789012",
		},
		Email:           "asha@corehr.example",
		FirstName:       "Asha",
		LastName:        "Menon",
		Phone:           &phone,
		DepartmentName:  &dept,
		DesignationName: &desig,
		BranchName:      &branch,
	}

	row := profileExportRow(p)
	for _, header := range profileExportHeaders {
		_, ok := row[header]
		assert.True(t, ok, "export row missing %q", header)
	}

	req, err := profileRequestFromRow(row)
	require.NoError(t, err)
	require.NoError(t, req.Validate())

	assert.Equal(t, "EMP00034", req.EmployeeCode)
	assert.Equal(t, "asha@corehr.example", req.Email)
	assert.Equal(t, int64(3), req.DepartmentID)
	assert.Equal(t, int64(7), req.DesignationID)
	assert.Equal(t, int64(1), req.BranchID)
	assert.Equal(t, "2025-04-01", req.JoiningDate)
	require.NotNil(t, req.BaseSalary)
	assert.Equal(t, "50000.00", *req.BaseSalary)
	require.NotNil(t, req.Phone)
	assert.Equal(t, "9876543210", *req.Phone)
}
