package tools

import (
	"fmt"
	"math"

	"github.com/shopspring/decimal"

	"github.com/cloud-ru/installment-pricing-go/internal/pricing"
	"github.com/cloud-ru/installment-pricing-go/internal/validators"
)

func numberParam(params map[string]interface{}, name string) (float64, bool, error) {
	raw, ok := params[name]
	if !ok || raw == nil {
		return 0, false, nil
	}
	switch v := raw.(type) {
	case float64:
		return v, true, nil
	case int:
		return float64(v), true, nil
	case int64:
		return float64(v), true, nil
	default:
		return 0, false, fmt.Errorf("invalid parameter: %s", name)
	}
}

func optionalAmount(params map[string]interface{}, name string) (*float64, error) {
	v, ok, err := numberParam(params, name)
	if err != nil || !ok {
		return nil, err
	}
	return &v, nil
}

func installmentsParam(params map[string]interface{}) ([]float64, error) {
	switch raw := params["installments"].(type) {
	case []float64:
		return raw, nil
	case []interface{}:
		amounts := make([]float64, 0, len(raw))
		for i, item := range raw {
			switch v := item.(type) {
			case float64:
				amounts = append(amounts, v)
			case map[string]interface{}:
				amount, ok := v["total_amount_including_fees"].(float64)
				if !ok {
					return nil, fmt.Errorf("invalid parameter: installments[%d].total_amount_including_fees", i)
				}
				amounts = append(amounts, amount)
			default:
				return nil, fmt.Errorf("invalid parameter: installments[%d]", i)
			}
		}
		return amounts, nil
	default:
		return nil, fmt.Errorf("invalid parameter: installments")
	}
}

// parsePlanRequest extracts a plan request from tool parameters
func parsePlanRequest(params map[string]interface{}) (validators.PlanRequest, error) {
	var req validators.PlanRequest

	count, ok, err := numberParam(params, "installment_count")
	if err != nil {
		return req, err
	}
	if !ok || count != math.Trunc(count) {
		return req, fmt.Errorf("invalid parameter: installment_count")
	}
	req.InstallmentCount = int(count)

	if req.Installments, err = installmentsParam(params); err != nil {
		return req, err
	}
	if req.DownPaymentAmount, err = optionalAmount(params, "down_payment_amount"); err != nil {
		return req, err
	}
	if req.PromotionAmount, err = optionalAmount(params, "promotion_amount"); err != nil {
		return req, err
	}
	return req, nil
}

// toPlan converts a validated request into resolver inputs. The promotion is dropped
// when promotions are disabled.
func toPlan(req validators.PlanRequest, promotionEnabled bool) (pricing.PaymentPlan, decimal.NullDecimal) {
	plan := pricing.PaymentPlan{
		InstallmentCount: req.InstallmentCount,
		Installments:     make([]pricing.Installment, 0, len(req.Installments)),
	}
	for _, amount := range req.Installments {
		plan.Installments = append(plan.Installments, pricing.Installment{TotalAmountIncludingFees: decimal.NewFromFloat(amount)})
	}
	if req.DownPaymentAmount != nil {
		plan.DownPaymentAmount = decimal.NewNullDecimal(decimal.NewFromFloat(*req.DownPaymentAmount))
	}

	var promotion decimal.NullDecimal
	if promotionEnabled && req.PromotionAmount != nil {
		promotion = decimal.NewNullDecimal(decimal.NewFromFloat(*req.PromotionAmount))
	}
	return plan, promotion
}
