package pricing

import "github.com/shopspring/decimal"

// ResolveDueTodayPresentation computes the values of the due-today hero. It reports
// false when the hero is not shown or the installment detail is unavailable, in which
// case the caller keeps the standard presentation.
func ResolveDueTodayPresentation(
	showDueTodayHero bool,
	installmentCount int,
	installmentAmount decimal.Decimal,
	variableFirstInstallmentAmount decimal.NullDecimal,
	installments []Installment,
) (DueToday, bool) {
	if !showDueTodayHero || installments == nil {
		return DueToday{}, false
	}

	dueToday := installmentAmount
	if variableFirstInstallmentAmount.Valid {
		dueToday = variableFirstInstallmentAmount.Decimal
	}

	remaining := installmentCount - 1
	if remaining < 0 {
		remaining = 0
	}

	return DueToday{
		DueTodayAmount:  dueToday,
		RemainingCount:  remaining,
		RemainingAmount: installmentAmount,
		Total:           TotalAmount(installments),
	}, true
}
