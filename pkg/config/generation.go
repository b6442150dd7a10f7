package config

import "time"

const (
	ProfileExpand    = "expand"
	ProfileContinuum = "continuum"
	ProfileExplore   = "explore"
)

type GenerationConfig struct {
	Provider string        `mapstructure:"provider"`
	Model    string        `mapstructure:"model"`
	BaseURL  string        `mapstructure:"base_url"`
	ApiKey   string        `mapstructure:"api_key"`
	Timeout  time.Duration `mapstructure:"timeout"`
	// Seed fixes sampling where the provider supports it. Zero leaves it random.
	Seed int64 `mapstructure:"seed"`
	// SystemPrompt is sent as the system message. With Ollama it also turns
	// off raw mode, so replies are parsed as chat answers.
	SystemPrompt string                   `mapstructure:"system_prompt"`
	Azure        *AzureConfig             `mapstructure:"azure"`
	Bedrock      *BedrockConfig           `mapstructure:"bedrock"`
	Options      map[string]interface{}   `mapstructure:"options"`
	Breaker      BreakerConfig            `mapstructure:"breaker"`
	Profiles     map[string]ProfileConfig `mapstructure:"profiles"`
}

type AzureConfig struct {
	Endpoint    string `mapstructure:"endpoint"`
	ApiVersion  string `mapstructure:"api_version"`
	UseIdentity bool   `mapstructure:"use_identity"`
}

type BedrockConfig struct {
	Region    string `mapstructure:"region"`
	AccessKey string `mapstructure:"access_key"`
	SecretKey string `mapstructure:"secret_key"`
	UseRole   bool   `mapstructure:"use_role"`
	RoleARN   string `mapstructure:"role_arn"`
}

type BreakerConfig struct {
	MaxFailures uint32        `mapstructure:"max_failures"`
	Timeout     time.Duration `mapstructure:"timeout"`
}

// ProfileConfig holds the sampling parameters used by one expansion route.
type ProfileConfig struct {
	MaxTokens   int     `mapstructure:"max_tokens"`
	Temperature float64 `mapstructure:"temperature"`
	TopK        int     `mapstructure:"top_k"`
	TopP        float64 `mapstructure:"top_p"`
}

func DefaultProfiles() map[string]ProfileConfig {
	return map[string]ProfileConfig{
		ProfileExpand: {
			MaxTokens:   60,
			Temperature: 0.8,
		},
		ProfileContinuum: {
			MaxTokens:   150,
			Temperature: 1.0,
			TopK:        50,
			TopP:        0.95,
		},
		ProfileExplore: {
			MaxTokens:   60,
			Temperature: 0.8,
		},
	}
}

// mergeProfiles fills unset fields of the configured profiles from the defaults.
func mergeProfiles(defaults, configured map[string]ProfileConfig) map[string]ProfileConfig {
	out := make(map[string]ProfileConfig, len(defaults))
	for name, def := range defaults {
		out[name] = def
	}
	for name, p := range configured {
		def := out[name]
		if p.MaxTokens == 0 {
			p.MaxTokens = def.MaxTokens
		}
		if p.Temperature == 0 {
			p.Temperature = def.Temperature
		}
		if p.TopK == 0 {
			p.TopK = def.TopK
		}
		if p.TopP == 0 {
			p.TopP = def.TopP
		}
		out[name] = p
	}
	return out
}
