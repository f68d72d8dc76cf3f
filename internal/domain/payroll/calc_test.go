package payroll

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestCompute(t *testing.T) {
	c := Compute(decimal.NewFromInt(50000))

	assert.True(t, c.Basic.Equal(decimal.NewFromInt(50000)), "basic = %s", c.Basic)
	assert.True(t, c.HRA.Equal(decimal.NewFromInt(20000)), "hra = %s", c.HRA)
	assert.True(t, c.Conveyance.Equal(decimal.NewFromInt(1600)), "conveyance = %s", c.Conveyance)
	assert.True(t, c.MedicalAllowance.Equal(decimal.NewFromInt(1250)), "medical = %s", c.MedicalAllowance)
	assert.True(t, c.Gross.Equal(decimal.NewFromInt(72850)), "gross = %s", c.Gross)
	assert.True(t, c.Deductions.Equal(decimal.Zero), "deductions = %s", c.Deductions)
	assert.True(t, c.Net.Equal(c.Gross), "net = %s", c.Net)
}

func TestComputeRoundsToTwoPlaces(t *testing.T) {
	base := decimal.RequireFromString("33333.335")
	c := Compute(base)

	assert.True(t, c.Basic.Equal(decimal.RequireFromString("33333.34")), "basic = %s", c.Basic)
	// 40% of 33333.34 is 13333.336, rounded to 13333.34
	assert.True(t, c.HRA.Equal(decimal.RequireFromString("13333.34")), "hra = %s", c.HRA)
	assert.True(t, c.Gross.Equal(c.Basic.Add(c.HRA).Add(c.Conveyance).Add(c.MedicalAllowance)), "gross = %s", c.Gross)
}

func TestComputeGrossIsComponentSum(t *testing.T) {
	for _, base := range []string{"0", "12000", "99999.99", "150000"} {
		c := Compute(decimal.RequireFromString(base))
		sum := c.Basic.Add(c.HRA).Add(c.Conveyance).Add(c.MedicalAllowance)
		assert.True(t, c.Gross.Equal(sum), "base %s: gross %s != sum %s", base, c.Gross, sum)
		assert.True(t, c.Net.Equal(c.Gross.Sub(c.Deductions)), "base %s: net mismatch", base)
	}
}
