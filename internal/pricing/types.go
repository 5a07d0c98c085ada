package pricing

import "github.com/shopspring/decimal"

// Installment is one scheduled payment of a plan
type Installment struct {
	TotalAmountIncludingFees decimal.Decimal `json:"total_amount_including_fees"`
}

// PaymentPlan is the plan state the checkout receives from the order service.
// Installments are ordered by due date; index 0 is due today.
type PaymentPlan struct {
	InstallmentCount  int                 `json:"installment_count"`
	Installments      []Installment       `json:"installments"`
	DownPaymentAmount decimal.NullDecimal `json:"down_payment_amount"`
}

// DueToday holds the values shown by the due-today hero presentation
type DueToday struct {
	DueTodayAmount  decimal.Decimal `json:"due_today_amount"`
	RemainingCount  int             `json:"remaining_count"`
	RemainingAmount decimal.Decimal `json:"remaining_amount"`
	Total           decimal.Decimal `json:"total"`
}

// Resolution is the set of display amounts derived from a plan and an optional promotion
type Resolution struct {
	InstallmentCount               int                 `json:"installment_count"`
	InstallmentAmount              decimal.Decimal     `json:"installment_amount"`
	OriginalInstallmentAmount      decimal.Decimal     `json:"original_installment_amount"`
	VariableFirstInstallmentAmount decimal.NullDecimal `json:"variable_first_installment_amount"`
	PromotionAmount                decimal.Decimal     `json:"promotion_amount"`
	HasPromotion                   bool                `json:"has_promotion"`
	IsVariableFirstInstallment     bool                `json:"is_variable_first_installment"`
	Total                          decimal.Decimal     `json:"total"`
}
