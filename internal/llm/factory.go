package llm

import (
	"fmt"

	"appeals/internal/config"
	"appeals/internal/port"
)

// ProviderFactory is a function that creates a TextGenerator from a provider config.
type ProviderFactory func(cfg *config.LLMProviderConfig) (port.TextGenerator, error)

// registry of generation provider factories, populated via RegisterProvider.
var providers = map[string]ProviderFactory{}

// RegisterProvider registers a generation provider factory by name.
func RegisterProvider(name string, factory ProviderFactory) {
	providers[name] = factory
}

// NewGenerator creates a TextGenerator from a provider config using the
// registered factory.
func NewGenerator(cfg *config.LLMProviderConfig) (port.TextGenerator, error) {
	factory, ok := providers[cfg.Provider]
	if !ok {
		return nil, fmt.Errorf("unknown generation provider: %s", cfg.Provider)
	}
	return factory(cfg)
}

// NewGeneratorChain builds the configured provider chain: the primary alone,
// or a rate-limit-aware fallback over primary and secondary.
func NewGeneratorChain(cfg *config.LLMConfig) (port.TextGenerator, error) {
	primary, err := NewGenerator(&cfg.Primary)
	if err != nil {
		return nil, err
	}

	secondaryCfg := cfg.SecondaryConfig()
	if secondaryCfg == nil {
		return primary, nil
	}

	secondary, err := NewGenerator(secondaryCfg)
	if err != nil {
		return nil, err
	}

	return NewFallbackGenerator(
		[]port.TextGenerator{primary, secondary},
		[]string{cfg.Primary.Provider, secondaryCfg.Provider},
	), nil
}
