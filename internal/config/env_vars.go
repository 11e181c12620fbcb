package config

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
)

const (
	appNameVar        = "APP_NAME"
	backendURLVar     = "WIKI_BACKEND_URL"
	envVar            = "ENV"
	logLevelVar       = "LOG_LEVEL"
	sessionFileVar    = "WIKI_SESSION_FILE"
	configFileVar     = "WIKI_CONFIG_FILE"
	requestTimeoutVar = "WIKI_REQUEST_TIMEOUT"
	otlpEndpointVar   = "OTEL_EXPORTER_OTLP_ENDPOINT"
	otlpInsecureVar   = "OTEL_EXPORTER_OTLP_INSECURE"

	serverAddrVar     = "WIKI_DEVSERVER_ADDR"
	tokenSecretVar    = "WIKI_DEVSERVER_SECRET"
	tokenExpiryVar    = "WIKI_DEVSERVER_TOKEN_EXPIRY"
	adminUsernameVar  = "WIKI_DEVSERVER_ADMIN_USER"
	adminPasswordVar  = "WIKI_DEVSERVER_ADMIN_PASSWORD"
	defaultTokenTTL   = time.Hour
	defaultListenAddr = ":8000"
)

type EnvVars struct{}

var _ EnvConfig = EnvVars{}

func (EnvVars) GetAppName() string {
	return GetEnv(appNameVar, "Go Wiki Client")
}

// GetBackendURL returns the wiki backend base URL without a trailing slash
func (EnvVars) GetBackendURL() string {
	return strings.TrimRight(GetEnv(backendURLVar, "http://localhost:8000"), "/")
}

func (EnvVars) GetEnv() string {
	return GetEnv(envVar, "DEV")
}

func (EnvVars) GetLogLevel() string {
	return strings.ToLower(GetEnv(logLevelVar, "info"))
}

// GetSessionFile returns where the CLI keeps the bearer token between runs
func (EnvVars) GetSessionFile() string {
	if path := GetEnv(sessionFileVar, ""); path != "" {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".go-wiki", "session")
	}
	return filepath.Join(home, ".go-wiki", "session")
}

type HTTP struct{}

var _ HTTPConfig = HTTP{}

func (HTTP) GetRequestTimeout() time.Duration {
	d, err := time.ParseDuration(GetEnv(requestTimeoutVar, "30s"))
	if err != nil || d <= 0 {
		return 30 * time.Second
	}
	return d
}

func (HTTP) GetMaxErrorBodyBytes() int64 {
	return 1 << 20 // 1 MB
}

type Telemetry struct{}

var _ TelemetryConfig = Telemetry{}

func (Telemetry) GetOTLPEndpoint() string {
	return GetEnv(otlpEndpointVar, "")
}

func (Telemetry) GetOTLPInsecure() bool {
	insecure, _ := strconv.ParseBool(GetEnv(otlpInsecureVar, "false"))
	return insecure
}

type Server struct{}

var _ ServerConfig = Server{}

func (Server) GetListenAddr() string {
	return GetEnv(serverAddrVar, defaultListenAddr)
}

// GetTokenSecret returns the HS256 signing secret. Empty means one is generated at startup.
func (Server) GetTokenSecret() string {
	return GetEnv(tokenSecretVar, "")
}

func (Server) GetTokenExpiry() time.Duration {
	d, err := time.ParseDuration(GetEnv(tokenExpiryVar, defaultTokenTTL.String()))
	if err != nil || d <= 0 {
		return defaultTokenTTL
	}
	return d
}

func (Server) GetAdminUsername() string {
	return GetEnv(adminUsernameVar, "admin")
}

// GetAdminPassword returns the bootstrap admin password. Empty means one is generated.
func (Server) GetAdminPassword() string {
	return GetEnv(adminPasswordVar, "")
}

func GetEnv(envVar, defaultValue string) string {
	value := os.Getenv(envVar)
	if value == "" {
		return defaultValue
	}
	return value
}
