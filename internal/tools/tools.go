package tools

import (
	"context"
	"fmt"
	"strconv"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"

	"github.com/cloud-ru/installment-pricing-go/internal/config"
	"github.com/cloud-ru/installment-pricing-go/internal/flags"
	"github.com/cloud-ru/installment-pricing-go/internal/metrics"
	"github.com/cloud-ru/installment-pricing-go/internal/money"
	"github.com/cloud-ru/installment-pricing-go/internal/pricing"
	"github.com/cloud-ru/installment-pricing-go/internal/presentation"
	"github.com/cloud-ru/installment-pricing-go/internal/validators"
)

// APIService is the service label of api_calls_total
const APIService = "checkout"

const (
	ResolvePaymentPlanTool   = "resolve_payment_plan"
	PaymentPlanSpotlightTool = "payment_plan_spotlight"
)

// ToolHandler handles one tool call
type ToolHandler func(ctx context.Context, params map[string]interface{}) (interface{}, error)

// Deps are the collaborators shared by the tool handlers
type Deps struct {
	Config    *config.Config
	Tracer    trace.Tracer
	Logger    *zap.Logger
	Flags     flags.Provider
	Formatter *money.Formatter
}

type call struct {
	toolName string
	span     trace.Span
	logger   *zap.Logger
}

func (d Deps) begin(ctx context.Context, toolName string) (context.Context, *call) {
	ctx, span := d.Tracer.Start(ctx, toolName)
	callID := uuid.NewString()
	span.SetAttributes(attribute.String("call_id", callID))
	logger := d.Logger.With(zap.String("tool", toolName), zap.String("call_id", callID))
	logger.Debug("tool call started")
	metrics.APICalls.WithLabelValues(APIService, toolName, "started").Inc()
	return ctx, &call{toolName: toolName, span: span, logger: logger}
}

func (c *call) fail(kind string, err error) error {
	c.span.SetAttributes(attribute.String("error", kind+"_error"))
	c.span.RecordError(err)
	metrics.ToolCalls.WithLabelValues(c.toolName, kind+"_error").Inc()
	metrics.CalculationErrors.WithLabelValues(c.toolName, kind).Inc()
	metrics.APICalls.WithLabelValues(APIService, c.toolName, "error").Inc()
	c.logger.Warn("tool call failed", zap.String("error_type", kind), zap.Error(err))
	return fmt.Errorf("invalid parameters: %w", err)
}

func (c *call) succeed() {
	c.span.SetAttributes(attribute.Bool("success", true))
	metrics.ToolCalls.WithLabelValues(c.toolName, "success").Inc()
	metrics.APICalls.WithLabelValues(APIService, c.toolName, "success").Inc()
	c.logger.Debug("tool call finished")
}

// resolve parses, validates and resolves the plan carried by params
func (d Deps) resolve(c *call, params map[string]interface{}) (pricing.PaymentPlan, pricing.Resolution, error) {
	req, err := parsePlanRequest(params)
	if err != nil {
		return pricing.PaymentPlan{}, pricing.Resolution{}, c.fail("parameter", err)
	}

	c.span.SetAttributes(
		attribute.Int("installment_count", req.InstallmentCount),
		attribute.Int("schedule_length", len(req.Installments)),
		attribute.Bool("has_down_payment", req.DownPaymentAmount != nil),
		attribute.Bool("has_promotion", req.PromotionAmount != nil),
	)

	if err := validators.CheckPlanRequest(d.Config, req); err != nil {
		return pricing.PaymentPlan{}, pricing.Resolution{}, c.fail("validation", err)
	}

	plan, promotion := toPlan(req, d.Flags == nil || flags.PromotionEnabled(d.Flags))
	res := pricing.ResolvePlan(plan, promotion)

	metrics.ResolvedPlans.WithLabelValues(
		strconv.FormatBool(res.IsVariableFirstInstallment),
		strconv.FormatBool(res.HasPromotion),
	).Inc()
	c.span.SetAttributes(
		attribute.String("installment_amount", res.InstallmentAmount.String()),
		attribute.String("original_installment_amount", res.OriginalInstallmentAmount.String()),
	)
	return plan, res, nil
}

// ResolvePaymentPlanHandler resolves the display amounts of a payment plan
func ResolvePaymentPlanHandler(d Deps) ToolHandler {
	return func(ctx context.Context, params map[string]interface{}) (interface{}, error) {
		_, c := d.begin(ctx, ResolvePaymentPlanTool)
		defer c.span.End()

		_, res, err := d.resolve(c, params)
		if err != nil {
			return nil, err
		}

		c.succeed()
		return res, nil
	}
}

// PaymentPlanSpotlightHandler renders the payment plan spotlight for the variant
// chosen by the feature flags.
func PaymentPlanSpotlightHandler(d Deps, override string) ToolHandler {
	return func(ctx context.Context, params map[string]interface{}) (interface{}, error) {
		_, c := d.begin(ctx, PaymentPlanSpotlightTool)
		defer c.span.End()

		plan, res, err := d.resolve(c, params)
		if err != nil {
			return nil, err
		}

		variant := flags.ResolveVariant(d.Flags, override)
		spotlight := presentation.Build(d.Formatter, plan, res, variant)

		c.span.SetAttributes(attribute.String("variant", string(spotlight.Variant)))
		metrics.PresentationVariants.WithLabelValues(string(spotlight.Variant)).Inc()

		c.succeed()
		return spotlight, nil
	}
}
