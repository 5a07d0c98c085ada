package pricing

import (
	"github.com/shopspring/decimal"

	"github.com/cloud-ru/installment-pricing-go/pkg/utils"
)

// HasPromotion reports whether a promotion amount is present and positive
func HasPromotion(promotionAmount decimal.NullDecimal) bool {
	return promotionAmount.Valid && promotionAmount.Decimal.IsPositive()
}

// ResolveOriginalInstallmentAmount returns the pre-promotion installment amount shown
// struck through next to the discounted one.
//
// With no promotion the installment amount is returned unchanged. When the installment
// detail is available (non-nil slice) the promotion is added back to the plan total and
// spread across installmentCount; otherwise it is spread on top of installmentAmount.
// Both paths round up to the next cent so the original amount is never understated.
func ResolveOriginalInstallmentAmount(
	installmentAmount decimal.Decimal,
	installments []Installment,
	installmentCount int,
	promotionAmount decimal.NullDecimal,
) decimal.Decimal {
	if !HasPromotion(promotionAmount) || installmentCount <= 0 {
		return installmentAmount
	}

	promotion := promotionAmount.Decimal
	count := decimal.NewFromInt(int64(installmentCount))

	if installments != nil {
		totalBeforePromotion := TotalAmount(installments).Add(promotion)
		return utils.CeilCents(totalBeforePromotion.Div(count))
	}

	return utils.CeilCents(installmentAmount.Add(promotion.Div(count)))
}
