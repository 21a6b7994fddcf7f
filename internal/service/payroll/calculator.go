package payroll

import (
	"github.com/shopspring/decimal"
)

// Fixed per-day wage model. Overtime kicks in above a full working month;
// the paid-leave credit is granted once attendance reaches 21 days.
const (
	monthlyWorkingDays = 26
	paidLeaveThreshold = 21
	paidLeaveDays      = 4
)

var (
	perDayPay    = decimal.NewFromInt(900)
	otMultiplier = decimal.NewFromFloat(1.5)
	hundred      = decimal.NewFromInt(100)
)

// Breakdown is a fully computed pay statement for one employee-period.
type Breakdown struct {
	DaysWorked       int
	BasePay          decimal.Decimal
	PaidLeavePay     decimal.Decimal
	OTPay            decimal.Decimal
	GrossSalary      decimal.Decimal
	PFDeduction      decimal.Decimal
	ESIDeduction     decimal.Decimal
	AdvanceDeduction decimal.Decimal
	AssetsDeduction  decimal.Decimal
	TotalDeductions  decimal.Decimal
	NetPay           decimal.Decimal
}

// Compute derives the pay breakdown from days worked, the statutory
// percentages and the caller-supplied deductions. Every amount is rounded to
// two decimal places at each step, matching currency display convention.
//
// Day-count tiers:
//   - below 21 days: paid for days worked only
//   - 21 to 26 days: paid leave credit of 4 days' pay added
//   - above 26 days: capped at 26 paid days, the excess paid as overtime
func Compute(daysWorked int, pfPercentage, esiPercentage, advanceDeduction, assetsDeduction decimal.Decimal) Breakdown {
	workAndLeaveDays := daysWorked
	otDays := 0
	paidLeavePay := decimal.Zero

	if daysWorked >= paidLeaveThreshold {
		paidLeavePay = perDayPay.Mul(decimal.NewFromInt(paidLeaveDays)).Round(2)
		if daysWorked > monthlyWorkingDays {
			otDays = daysWorked - monthlyWorkingDays
			workAndLeaveDays = monthlyWorkingDays
		}
	}

	basePay := perDayPay.Mul(decimal.NewFromInt(int64(workAndLeaveDays))).Round(2)
	otPay := perDayPay.Mul(decimal.NewFromInt(int64(otDays))).Mul(otMultiplier).Round(2)
	grossSalary := basePay.Add(otPay).Add(paidLeavePay).Round(2)

	pfDeduction := basePay.Add(paidLeavePay).Mul(pfPercentage).Div(hundred).Round(2)
	esiDeduction := grossSalary.Mul(esiPercentage).Div(hundred).Round(2)
	totalDeductions := pfDeduction.Add(esiDeduction).Add(advanceDeduction).Add(assetsDeduction).Round(2)
	netPay := grossSalary.Sub(totalDeductions).Round(2)

	return Breakdown{
		DaysWorked:       daysWorked,
		BasePay:          basePay,
		PaidLeavePay:     paidLeavePay,
		OTPay:            otPay,
		GrossSalary:      grossSalary,
		PFDeduction:      pfDeduction,
		ESIDeduction:     esiDeduction,
		AdvanceDeduction: advanceDeduction,
		AssetsDeduction:  assetsDeduction,
		TotalDeductions:  totalDeductions,
		NetPay:           netPay,
	}
}
