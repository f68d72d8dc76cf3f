package employee

import (
	"testing"

	"github.com/corehr/hrms-backend-go/internal/pkg/validator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validCreateRequest() CreateProfileRequest {
	return CreateProfileRequest{
		FirstName:      "Asha",
		OfficialEmail:  "asha@corehr.test",
		DepartmentID:   1,
		DesignationID:  2,
		BranchID:       3,
		JoiningDate:    "2024-04-01",
		EmploymentType: "Permanent",
		PAN:            "ABCDE1234F",
		Aadhaar:        "123456789012",
	}
}

func TestCreateProfileRequestValidateOK(t *testing.T) {
	req := validCreateRequest()
	assert.NoError(t, req.Validate())
}

func TestCreateProfileRequestRequiredFields(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*CreateProfileRequest)
		field  string
	}{
		{"missing first name", func(r *CreateProfileRequest) { r.FirstName = "" }, "first_name"},
		{"missing official email", func(r *CreateProfileRequest) { r.OfficialEmail = "" }, "official_email"},
		{"bad official email", func(r *CreateProfileRequest) { r.OfficialEmail = "not-an-email" }, "official_email"},
		{"missing branch", func(r *CreateProfileRequest) { r.BranchID = 0 }, "branch_id"},
		{"missing designation", func(r *CreateProfileRequest) { r.DesignationID = 0 }, "designation_id"},
		{"missing department", func(r *CreateProfileRequest) { r.DepartmentID = 0 }, "department_id"},
		{"missing joining date", func(r *CreateProfileRequest) { r.JoiningDate = "" }, "joining_date"},
		{"bad joining date", func(r *CreateProfileRequest) { r.JoiningDate = "01-04-2024" }, "joining_date"},
		{"missing employment type", func(r *CreateProfileRequest) { r.EmploymentType = "" }, "employment_type"},
		{"bad employment type", func(r *CreateProfileRequest) { r.EmploymentType = "Freelance" }, "employment_type"},
		{"missing pan", func(r *CreateProfileRequest) { r.PAN = "" }, "pan"},
		{"bad pan", func(r *CreateProfileRequest) { r.PAN = "ABC123" }, "pan"},
		{"missing aadhaar", func(r *CreateProfileRequest) { r.Aadhaar = "" }, "aadhaar"},
		{"bad aadhaar", func(r *CreateProfileRequest) { r.Aadhaar = "12345" }, "aadhaar"},
		{"bad role", func(r *CreateProfileRequest) { r.Role = "root" }, "role"},
		{"bad base salary", func(r *CreateProfileRequest) { s := "lots"; r.BaseSalary = &s }, "base_salary"},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			req := validCreateRequest()
			c.mutate(&req)

			err := req.Validate()
			require.Error(t, err)

			var errs validator.ValidationErrors
			require.ErrorAs(t, err, &errs)
			assert.Contains(t, errs.ToMap(), c.field)
		})
	}
}

func TestUpdateProfileRequestValidate(t *testing.T) {
	empty := UpdateProfileRequest{}
	assert.NoError(t, empty.Validate())
	assert.False(t, empty.HasAccountChanges())

	badEmail := "nope"
	badType := "Freelance"
	badDate := "2024-13-40"
	req := UpdateProfileRequest{
		OfficialEmail:    &badEmail,
		EmploymentType:   &badType,
		ConfirmationDate: &badDate,
	}
	err := req.Validate()
	require.Error(t, err)

	var errs validator.ValidationErrors
	require.ErrorAs(t, err, &errs)
	m := errs.ToMap()
	assert.Contains(t, m, "official_email")
	assert.Contains(t, m, "employment_type")
	assert.Contains(t, m, "confirmation_date")
}

func TestUpdateProfileRequestHasAccountChanges(t *testing.T) {
	name := "Ravi"
	req := UpdateProfileRequest{FirstName: &name}
	assert.True(t, req.HasAccountChanges())

	dept := int64(4)
	profileOnly := UpdateProfileRequest{DepartmentID: &dept}
	assert.False(t, profileOnly.HasAccountChanges())
}
