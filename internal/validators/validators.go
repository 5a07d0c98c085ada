package validators

import (
	"fmt"

	"github.com/go-playground/validator/v10"

	"github.com/cloud-ru/installment-pricing-go/internal/config"
	"github.com/cloud-ru/installment-pricing-go/pkg/utils"
)

var validate = validator.New()

// PlanRequest is a payment plan as decoded from tool parameters
type PlanRequest struct {
	InstallmentCount  int       `validate:"gte=1"`
	Installments      []float64 `validate:"required,min=1,dive,gte=0"`
	DownPaymentAmount *float64  `validate:"omitempty,gte=0"`
	PromotionAmount   *float64  `validate:"omitempty,gte=0"`
}

// ValidatePositiveNumber checks that a number is finite and within [minInclusive; maxInclusive]
func ValidatePositiveNumber(name string, value float64, minInclusive, maxInclusive float64) error {
	if !utils.IsFinite(value) {
		return fmt.Errorf("%s: value is not a finite number", name)
	}
	if value < minInclusive {
		return fmt.Errorf("%s: value must be ≥ %.2f", name, minInclusive)
	}
	if value > maxInclusive {
		return fmt.Errorf("%s: value is too large (>%.2f)", name, maxInclusive)
	}
	return nil
}

// ValidateIntRange checks that an integer is within [minInclusive; maxInclusive]
func ValidateIntRange(name string, value int, minInclusive, maxInclusive int) error {
	if value < minInclusive || value > maxInclusive {
		return fmt.Errorf("%s: value must be in range [%d; %d]", name, minInclusive, maxInclusive)
	}
	return nil
}

// CheckAmount checks a monetary amount
func CheckAmount(cfg *config.Config, name string, amount float64) error {
	return ValidatePositiveNumber(name, amount, 0.0, AmountCap(cfg))
}

// CheckInstallmentCount checks the installment count against the schedule length
func CheckInstallmentCount(cfg *config.Config, count, scheduleLen int) error {
	upper := scheduleLen
	if cfg != nil && cfg.MaxInstallments < upper {
		upper = cfg.MaxInstallments
	}
	return ValidateIntRange("installment_count", count, 1, upper)
}

// CheckPlanRequest validates a decoded plan request
func CheckPlanRequest(cfg *config.Config, req PlanRequest) error {
	if err := validate.Struct(req); err != nil {
		return fmt.Errorf("invalid plan request: %w", err)
	}
	if err := CheckInstallmentCount(cfg, req.InstallmentCount, len(req.Installments)); err != nil {
		return err
	}
	for i, amount := range req.Installments {
		if err := CheckAmount(cfg, fmt.Sprintf("installments[%d]", i), amount); err != nil {
			return err
		}
	}
	if req.DownPaymentAmount != nil {
		if err := CheckAmount(cfg, "down_payment_amount", *req.DownPaymentAmount); err != nil {
			return err
		}
	}
	if req.PromotionAmount != nil {
		if err := CheckAmount(cfg, "promotion_amount", *req.PromotionAmount); err != nil {
			return err
		}
	}
	return nil
}

// AmountCap returns the largest accepted amount
func AmountCap(cfg *config.Config) float64 {
	if cfg == nil {
		return 1e7 // default
	}
	return cfg.AmountCap()
}
