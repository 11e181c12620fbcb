package config

import (
	"fmt"
	"time"

	"github.com/jrsteele09/go-wiki-client/internal/errors"
)

type Config interface {
	EnvConfig
	HTTPConfig
	TelemetryConfig
	ServerConfig
}

type EnvConfig interface {
	GetAppName() string
	GetBackendURL() string
	GetEnv() string
	GetLogLevel() string
	GetSessionFile() string
}

type HTTPConfig interface {
	GetRequestTimeout() time.Duration
	GetMaxErrorBodyBytes() int64
}

type TelemetryConfig interface {
	GetOTLPEndpoint() string
	GetOTLPInsecure() bool
}

// ServerConfig configures the local development backend
type ServerConfig interface {
	GetListenAddr() string
	GetTokenSecret() string
	GetTokenExpiry() time.Duration
	GetAdminUsername() string
	GetAdminPassword() string
}

type mainConfig struct {
	EnvVars
	HTTP
	Telemetry
	Server
}

// New builds the configuration. When WIKI_CONFIG_FILE names a YAML file its values
// are used for every variable the environment leaves unset.
func New() (Config, error) {
	if path := GetEnv(configFileVar, ""); path != "" {
		if err := ApplyFile(path); err != nil {
			return nil, fmt.Errorf("%w: %w", errors.ErrInvalidConfig, err)
		}
	}
	return mainConfig{}, nil
}
