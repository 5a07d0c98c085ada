package app

import (
	"context"
	"errors"
	"fmt"
	"sort"

	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.uber.org/zap"

	"github.com/cloud-ru/installment-pricing-go/internal/config"
	"github.com/cloud-ru/installment-pricing-go/internal/flags"
	"github.com/cloud-ru/installment-pricing-go/internal/logging"
	"github.com/cloud-ru/installment-pricing-go/internal/metrics"
	"github.com/cloud-ru/installment-pricing-go/internal/money"
	"github.com/cloud-ru/installment-pricing-go/internal/tools"
	"github.com/cloud-ru/installment-pricing-go/internal/tracing"
)

// ErrUnknownTool is returned by Call for an unregistered tool name
var ErrUnknownTool = errors.New("unknown tool")

// App wires configuration, flags, formatting and tracing into the tool registry
type App struct {
	cfg    *config.Config
	logger *zap.Logger
	tp     *sdktrace.TracerProvider
	tools  map[string]tools.ToolHandler
}

// NewFromEnv loads configuration from the environment and builds the application
// with a logger at the configured level.
func NewFromEnv() (*App, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, err
	}
	return New(cfg, nil)
}

// New builds the application from configuration. A nil logger is built from
// cfg.LogLevel.
func New(cfg *config.Config, logger *zap.Logger) (*App, error) {
	if logger == nil {
		l, err := logging.New(cfg.LogLevel)
		if err != nil {
			return nil, err
		}
		logger = l
	}

	provider, err := flags.LoadFile(cfg.FeatureFlagsFile)
	if err != nil {
		return nil, err
	}

	formatter, err := money.NewFormatter(cfg.Currency, cfg.Locale)
	if err != nil {
		return nil, fmt.Errorf("failed to create formatter: %w", err)
	}

	tp, err := tracing.InitTracing(cfg.OTELServiceName, cfg.OTELEndpoint, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to init tracing: %w", err)
	}

	deps := tools.Deps{
		Config:    cfg,
		Tracer:    tracing.Tracer,
		Logger:    logger,
		Flags:     provider,
		Formatter: formatter,
	}

	a := &App{
		cfg:    cfg,
		logger: logger,
		tp:     tp,
		tools: map[string]tools.ToolHandler{
			tools.ResolvePaymentPlanTool:   tools.ResolvePaymentPlanHandler(deps),
			tools.PaymentPlanSpotlightTool: tools.PaymentPlanSpotlightHandler(deps, cfg.DueTodayOverride),
		},
	}

	logger.Info("installment pricing ready",
		zap.String("currency", string(formatter.Currency())),
		zap.String("variant", string(flags.ResolveVariant(provider, cfg.DueTodayOverride))),
		zap.Strings("tools", a.ToolNames()),
	)
	return a, nil
}

// ToolNames lists the registered tools in name order
func (a *App) ToolNames() []string {
	names := make([]string, 0, len(a.tools))
	for name := range a.tools {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Call invokes a tool by name
func (a *App) Call(ctx context.Context, name string, params map[string]interface{}) (interface{}, error) {
	handler, ok := a.tools[name]
	if !ok {
		metrics.ToolCalls.WithLabelValues(name, "unknown").Inc()
		return nil, fmt.Errorf("%w: %s", ErrUnknownTool, name)
	}
	return handler(ctx, params)
}

// Shutdown flushes pending spans and the logger
func (a *App) Shutdown(ctx context.Context) error {
	err := a.tp.Shutdown(ctx)
	_ = a.logger.Sync()
	return err
}
