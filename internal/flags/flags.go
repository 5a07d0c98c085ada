package flags

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// FeatureFlag is the key of a remotely managed checkout flag
type FeatureFlag string

const (
	EnablePromotion FeatureFlag = "enable_promotion"
	CkoDueTodayTest FeatureFlag = "CKO_Due_Today_Test"
)

// OverrideOn is the override value that forces the due-today hero locally
const OverrideOn = "on"

// Provider answers whether a feature flag is enabled
type Provider interface {
	IsEnabled(flag FeatureFlag) bool
}

// StaticProvider serves flags from a fixed set, typically loaded from a file
type StaticProvider struct {
	flags map[FeatureFlag]bool
}

// NewStaticProvider creates a provider from a flag map. The map is copied.
func NewStaticProvider(values map[FeatureFlag]bool) *StaticProvider {
	p := &StaticProvider{flags: make(map[FeatureFlag]bool, len(values))}
	for k, v := range values {
		p.flags[k] = v
	}
	return p
}

// IsEnabled reports the flag value; unknown flags are disabled
func (p *StaticProvider) IsEnabled(flag FeatureFlag) bool {
	return p.flags[flag]
}

// IsSet reports whether the provider has an explicit value for the flag
func (p *StaticProvider) IsSet(flag FeatureFlag) bool {
	_, ok := p.flags[flag]
	return ok
}

type flagFile struct {
	Flags map[string]bool `yaml:"flags"`
}

// Parse decodes a YAML flag document of the form
//
//	flags:
//	  CKO_Due_Today_Test: true
func Parse(data []byte) (*StaticProvider, error) {
	var doc flagFile
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse feature flags: %w", err)
	}
	values := make(map[FeatureFlag]bool, len(doc.Flags))
	for k, v := range doc.Flags {
		values[FeatureFlag(k)] = v
	}
	return NewStaticProvider(values), nil
}

// LoadFile reads flags from a YAML file. An empty path yields an empty provider.
func LoadFile(path string) (*StaticProvider, error) {
	if path == "" {
		return NewStaticProvider(nil), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read feature flags: %w", err)
	}
	return Parse(data)
}

// PromotionEnabled reports whether discounts should reach the plan display.
// A static provider without an explicit value keeps promotions on.
func PromotionEnabled(p Provider) bool {
	if sp, ok := p.(*StaticProvider); ok && !sp.IsSet(EnablePromotion) {
		return true
	}
	return p.IsEnabled(EnablePromotion)
}

// Variant is the payment plan presentation chosen for a checkout
type Variant string

const (
	VariantStandard     Variant = "standard"
	VariantDueTodayHero Variant = "due_today_hero"
)

// ShowDueTodayHero reports whether the variant leads with the amount due today
func (v Variant) ShowDueTodayHero() bool {
	return v == VariantDueTodayHero
}

// ResolveVariant picks the presentation variant. A local override of "on" wins over
// the provider, which is useful to preview the due-today hero.
func ResolveVariant(p Provider, override string) Variant {
	if strings.EqualFold(strings.TrimSpace(override), OverrideOn) {
		return VariantDueTodayHero
	}
	if p != nil && p.IsEnabled(CkoDueTodayTest) {
		return VariantDueTodayHero
	}
	return VariantStandard
}
