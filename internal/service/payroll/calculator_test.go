package payroll

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func assertDecimal(t *testing.T, expected string, actual decimal.Decimal, field string) {
	t.Helper()
	assert.True(t, dec(expected).Equal(actual), "%s: expected %s, got %s", field, expected, actual)
}

// Below 21 days there is no paid leave credit and no overtime.
func TestCompute_BelowLeaveThreshold(t *testing.T) {
	b := Compute(20, decimal.Zero, decimal.Zero, decimal.Zero, decimal.Zero)

	assertDecimal(t, "18000", b.BasePay, "base pay")
	assertDecimal(t, "0", b.PaidLeavePay, "paid leave pay")
	assertDecimal(t, "0", b.OTPay, "ot pay")
	assertDecimal(t, "18000", b.GrossSalary, "gross salary")
	assertDecimal(t, "18000", b.NetPay, "net pay")
}

// Exactly 21 days crosses the threshold and earns the 4-day credit.
func TestCompute_AtLeaveThreshold(t *testing.T) {
	b := Compute(21, decimal.Zero, decimal.Zero, decimal.Zero, decimal.Zero)

	assertDecimal(t, "18900", b.BasePay, "base pay")
	assertDecimal(t, "3600", b.PaidLeavePay, "paid leave pay")
	assertDecimal(t, "0", b.OTPay, "ot pay")
	assertDecimal(t, "22500", b.GrossSalary, "gross salary")
}

// A full working month pays 26 days plus the leave credit, no overtime.
func TestCompute_FullMonth(t *testing.T) {
	b := Compute(26, decimal.Zero, decimal.Zero, decimal.Zero, decimal.Zero)

	assertDecimal(t, "23400", b.BasePay, "base pay")
	assertDecimal(t, "3600", b.PaidLeavePay, "paid leave pay")
	assertDecimal(t, "0", b.OTPay, "ot pay")
	assertDecimal(t, "27000", b.GrossSalary, "gross salary")
}

// Days above 26 are paid as overtime at 1.5x while base stays capped.
func TestCompute_Overtime(t *testing.T) {
	b := Compute(30, decimal.Zero, decimal.Zero, decimal.Zero, decimal.Zero)

	assertDecimal(t, "23400", b.BasePay, "base pay")
	assertDecimal(t, "3600", b.PaidLeavePay, "paid leave pay")
	assertDecimal(t, "5400", b.OTPay, "ot pay")
	assertDecimal(t, "32400", b.GrossSalary, "gross salary")
	assertDecimal(t, "32400", b.NetPay, "net pay")
}

func TestCompute_ZeroDaysWorked(t *testing.T) {
	b := Compute(0, dec("12"), dec("0.75"), decimal.Zero, decimal.Zero)

	assertDecimal(t, "0", b.BasePay, "base pay")
	assertDecimal(t, "0", b.GrossSalary, "gross salary")
	assertDecimal(t, "0", b.PFDeduction, "pf deduction")
	assertDecimal(t, "0", b.ESIDeduction, "esi deduction")
	assertDecimal(t, "0", b.NetPay, "net pay")
}

// PF applies to base plus leave credit; ESI applies to the full gross.
func TestCompute_StatutoryDeductions(t *testing.T) {
	b := Compute(26, dec("12"), dec("0.75"), decimal.Zero, decimal.Zero)

	// PF: (23400 + 3600) * 12% = 3240
	assertDecimal(t, "3240", b.PFDeduction, "pf deduction")
	// ESI: 27000 * 0.75% = 202.50
	assertDecimal(t, "202.5", b.ESIDeduction, "esi deduction")
	assertDecimal(t, "3442.5", b.TotalDeductions, "total deductions")
	assertDecimal(t, "23557.5", b.NetPay, "net pay")
}

// Overtime pay is excluded from the PF base.
func TestCompute_OvertimeExcludedFromPF(t *testing.T) {
	b := Compute(30, dec("12"), decimal.Zero, decimal.Zero, decimal.Zero)

	// PF base stays (23400 + 3600) even though gross includes 5400 OT.
	assertDecimal(t, "3240", b.PFDeduction, "pf deduction")
}

func TestCompute_AdvanceAndAssetDeductions(t *testing.T) {
	b := Compute(26, decimal.Zero, decimal.Zero, dec("1000"), dec("300"))

	assertDecimal(t, "1000", b.AdvanceDeduction, "advance deduction")
	assertDecimal(t, "300", b.AssetsDeduction, "assets deduction")
	assertDecimal(t, "1300", b.TotalDeductions, "total deductions")
	assertDecimal(t, "25700", b.NetPay, "net pay")
}

// Each intermediate amount is rounded to two decimal places.
func TestCompute_RoundsEachStep(t *testing.T) {
	b := Compute(26, dec("12.3456"), dec("0.7577"), decimal.Zero, decimal.Zero)

	// PF: 27000 * 12.3456% = 3333.312, rounded to 3333.31
	assertDecimal(t, "3333.31", b.PFDeduction, "pf deduction")
	// ESI: 27000 * 0.7577% = 204.579, rounded to 204.58
	assertDecimal(t, "204.58", b.ESIDeduction, "esi deduction")
	assertDecimal(t, "3537.89", b.TotalDeductions, "total deductions")
	assertDecimal(t, "23462.11", b.NetPay, "net pay")
}

func TestCompute_DeductionsCanExceedGross(t *testing.T) {
	b := Compute(5, decimal.Zero, decimal.Zero, dec("10000"), decimal.Zero)

	assertDecimal(t, "4500", b.GrossSalary, "gross salary")
	assertDecimal(t, "-5500", b.NetPay, "net pay")
}
