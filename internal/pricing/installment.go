package pricing

import "github.com/shopspring/decimal"

// IsVariableFirstInstallment reports whether the plan collects a down payment,
// which makes the first installment differ from the rest.
func IsVariableFirstInstallment(plan PaymentPlan) bool {
	return plan.DownPaymentAmount.Valid && plan.DownPaymentAmount.Decimal.IsPositive()
}

// VariableFirstInstallmentAmount returns the amount due today for a VFI plan.
// The result is invalid when the plan is not VFI or has no installments.
func VariableFirstInstallmentAmount(plan PaymentPlan) decimal.NullDecimal {
	if !IsVariableFirstInstallment(plan) || len(plan.Installments) == 0 {
		return decimal.NullDecimal{}
	}
	return decimal.NewNullDecimal(plan.Installments[0].TotalAmountIncludingFees)
}

// ResolveInstallmentAmount returns the steady-state installment amount: the largest
// amount among the regular installments [start, installmentCount), where start skips
// the first installment of a VFI plan. An empty range yields zero.
func ResolveInstallmentAmount(installments []Installment, installmentCount int, isVFI bool) decimal.Decimal {
	start := 0
	if isVFI {
		start = 1
	}
	end := installmentCount
	if end > len(installments) {
		end = len(installments)
	}

	maxAmount := decimal.Zero
	for i := start; i < end; i++ {
		if amount := installments[i].TotalAmountIncludingFees; amount.GreaterThan(maxAmount) {
			maxAmount = amount
		}
	}
	return maxAmount
}

// TotalAmount sums every installment of the plan
func TotalAmount(installments []Installment) decimal.Decimal {
	total := decimal.Zero
	for _, installment := range installments {
		total = total.Add(installment.TotalAmountIncludingFees)
	}
	return total
}
