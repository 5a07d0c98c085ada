package pricing

import "github.com/shopspring/decimal"

// ResolvePlan derives every display amount of a single payment plan
func ResolvePlan(plan PaymentPlan, promotionAmount decimal.NullDecimal) Resolution {
	isVFI := IsVariableFirstInstallment(plan)
	installmentAmount := ResolveInstallmentAmount(plan.Installments, plan.InstallmentCount, isVFI)

	promotion := decimal.Zero
	if HasPromotion(promotionAmount) {
		promotion = promotionAmount.Decimal
	}

	return Resolution{
		InstallmentCount:               plan.InstallmentCount,
		InstallmentAmount:              installmentAmount,
		OriginalInstallmentAmount:      ResolveOriginalInstallmentAmount(installmentAmount, plan.Installments, plan.InstallmentCount, promotionAmount),
		VariableFirstInstallmentAmount: VariableFirstInstallmentAmount(plan),
		PromotionAmount:                promotion,
		HasPromotion:                   HasPromotion(promotionAmount),
		IsVariableFirstInstallment:     isVFI,
		Total:                          TotalAmount(plan.Installments),
	}
}
