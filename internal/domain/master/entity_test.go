package master

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKindTable(t *testing.T) {
	for _, kind := range Kinds {
		assert.NotEmpty(t, kind.Table(), "kind %q", kind)
	}
	assert.Equal(t, "sub_departments", KindSubDepartment.Table())
	assert.Empty(t, Kind("bogus").Table())
}

func TestKindParent(t *testing.T) {
	assert.True(t, KindSubDepartment.HasParent())
	assert.Equal(t, "department_id", KindSubDepartment.ParentColumn())
	for _, kind := range []Kind{KindDepartment, KindBranch, KindCompany} {
		assert.False(t, kind.HasParent(), "kind %q", kind)
		assert.Empty(t, kind.ParentColumn(), "kind %q", kind)
	}
}

func TestKindAddress(t *testing.T) {
	assert.True(t, KindBranch.HasAddress())
	assert.True(t, KindCompany.HasAddress())
	assert.False(t, KindDepartment.HasAddress())
}

func TestCreateEntryRequestValidate(t *testing.T) {
	ok := CreateEntryRequest{Name: "Engineering"}
	assert.NoError(t, ok.Validate(KindDepartment))

	missing := CreateEntryRequest{}
	err := missing.Validate(KindDepartment)
	require.Error(t, err)

	// sub-departments must name their parent
	orphan := CreateEntryRequest{Name: "Platform"}
	err = orphan.Validate(KindSubDepartment)
	require.Error(t, err)

	parent := int64(3)
	child := CreateEntryRequest{Name: "Platform", ParentID: &parent}
	assert.NoError(t, child.Validate(KindSubDepartment))
}
