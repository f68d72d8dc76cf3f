package payroll

import "github.com/shopspring/decimal"

// Salary component constants. HRA is a percentage of basic; conveyance and
// medical are flat monthly amounts.
var (
	hraRate          = decimal.NewFromFloat(0.40)
	conveyanceAmount = decimal.NewFromInt(1600)
	medicalAmount    = decimal.NewFromInt(1250)
)

// Components is the derived salary breakdown for one month.
type Components struct {
	Basic            decimal.Decimal
	HRA              decimal.Decimal
	Conveyance       decimal.Decimal
	MedicalAllowance decimal.Decimal
	Gross            decimal.Decimal
	Deductions       decimal.Decimal
	Net              decimal.Decimal
}

// Compute derives the component breakdown from a monthly base salary. HRA is
// 40% of basic, conveyance and medical are fixed, gross is the sum of all
// components. Deductions default to zero; this is not a statutory payroll
// engine and computes no tax.
func Compute(monthlyBase decimal.Decimal) Components {
	basic := monthlyBase.Round(2)
	hra := basic.Mul(hraRate).Round(2)
	gross := basic.Add(hra).Add(conveyanceAmount).Add(medicalAmount)
	deductions := decimal.Zero

	return Components{
		Basic:            basic,
		HRA:              hra,
		Conveyance:       conveyanceAmount,
		MedicalAllowance: medicalAmount,
		Gross:            gross,
		Deductions:       deductions,
		Net:              gross.Sub(deductions),
	}
}
