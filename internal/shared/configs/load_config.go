package configs

import (
	"fmt"
	"strings"

	"trade-analytics/internal/shared/validators"

	"github.com/spf13/viper"
)

// EnvPrefix prefixes environment overrides, e.g. TRADE_ANALYTICS_SERVER_PORT.
const EnvPrefix = "TRADE_ANALYTICS"

// LoadConfig reads configuration from file, applies environment overrides and validates it.
var LoadConfig = func(configPath string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(configPath)
	v.SetConfigType("yaml")

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config file %q: %w", configPath, err)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	validate := validators.New()
	if err := validate.Struct(&cfg); err != nil {
		var validationErrors []string
		if ve, ok := err.(validators.ValidationErrors); ok {
			for _, e := range ve {
				validationErrors = append(validationErrors, formatValidationError(e))
			}
		}
		return nil, fmt.Errorf("config validation failed: %s", strings.Join(validationErrors, ", "))
	}

	return &cfg, nil
}

// formatValidationError renders one field error as "section.field (tag=param)".
func formatValidationError(e validators.FieldError) string {
	field := e.Field()

	// "Config.Server.Port" -> "server.port"
	if parts := strings.Split(e.StructNamespace(), "."); len(parts) >= 2 {
		field = strings.ToLower(strings.Join(parts[1:], "."))
	}

	switch tag := e.Tag(); tag {
	case "required":
		return fmt.Sprintf("%s (required)", field)
	case "min", "max", "gt", "lt", "oneof":
		return fmt.Sprintf("%s (%s=%s)", field, tag, e.Param())
	default:
		return fmt.Sprintf("%s (%s)", field, tag)
	}
}
