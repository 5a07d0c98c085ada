package presentation

import (
	"fmt"

	"github.com/cloud-ru/installment-pricing-go/internal/flags"
	"github.com/cloud-ru/installment-pricing-go/internal/money"
	"github.com/cloud-ru/installment-pricing-go/internal/pricing"
)

const dueTodayBadge = "DUE TODAY"

// Spotlight is the display model of the payment plan summary card
type Spotlight struct {
	Variant flags.Variant `json:"variant"`

	// Standard variant
	Heading        string `json:"heading,omitempty"`
	Amount         string `json:"amount,omitempty"`
	OriginalAmount string `json:"original_amount,omitempty"`
	ShowOriginal   bool   `json:"show_original"`
	Asterisk       bool   `json:"asterisk"`
	VFIBanner      string `json:"vfi_banner,omitempty"`

	// Due-today hero variant
	Badge      string `json:"badge,omitempty"`
	HeroAmount string `json:"hero_amount,omitempty"`
	Subline    string `json:"subline,omitempty"`
}

// PaymentNoun pluralises "payment" for a count
func PaymentNoun(count int) string {
	if count == 1 {
		return "payment"
	}
	return "payments"
}

// RemainingPhrase renders the due-today hero sub-line. The "then N more" clause is
// left out when nothing is due after today.
func RemainingPhrase(f *money.Formatter, d pricing.DueToday) string {
	total := fmt.Sprintf("%s total", f.Format(d.Total))
	if d.RemainingCount <= 0 {
		return total
	}
	return fmt.Sprintf("then %d more %s of %s · %s",
		d.RemainingCount, PaymentNoun(d.RemainingCount), f.Format(d.RemainingAmount), total)
}

// Build renders the spotlight for a resolved plan. The due-today hero is used only
// when the variant asks for it and the plan carries installment detail; otherwise the
// standard card is returned.
func Build(f *money.Formatter, plan pricing.PaymentPlan, res pricing.Resolution, variant flags.Variant) Spotlight {
	dueToday, ok := pricing.ResolveDueTodayPresentation(
		variant.ShowDueTodayHero(),
		res.InstallmentCount,
		res.InstallmentAmount,
		res.VariableFirstInstallmentAmount,
		plan.Installments,
	)
	if ok {
		return Spotlight{
			Variant:    flags.VariantDueTodayHero,
			Badge:      dueTodayBadge,
			HeroAmount: f.Format(dueToday.DueTodayAmount),
			Subline:    RemainingPhrase(f, dueToday),
		}
	}

	// A zero first payment gets no marker or banner.
	vfi := res.VariableFirstInstallmentAmount
	largerFirstPayment := vfi.Valid && vfi.Decimal.IsPositive()

	s := Spotlight{
		Variant:  flags.VariantStandard,
		Heading:  fmt.Sprintf("%d bi-weekly payments of", res.InstallmentCount),
		Amount:   f.FormatNumber(res.InstallmentAmount),
		Asterisk: largerFirstPayment,
	}
	if res.HasPromotion {
		s.ShowOriginal = true
		s.OriginalAmount = f.FormatNumber(res.OriginalInstallmentAmount)
	}
	if largerFirstPayment {
		s.VFIBanner = fmt.Sprintf("*Requires a larger first payment of %s", f.Format(vfi.Decimal))
	}
	return s
}
