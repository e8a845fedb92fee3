package config

import (
	"time"
)

// EnvSpec is the basic environment configuration setup needed for the app to start
type EnvSpec struct {
	OtelGRPCEndpoint string `envconfig:"otel_grpc_endpoint"`
	OtelHTTPEndpoint string `envconfig:"otel_http_endpoint"`
	TracingEnabled   bool   `envconfig:"tracing_enabled" default:"true"`

	// EncryptionKey protects tenant credentials at rest. It must be 32
	// bytes, raw or hex encoded. The service refuses to start without it.
	EncryptionKey string `envconfig:"encryption_key" required:"true"`

	LogLevel string `envconfig:"log_level" default:"error"`
	Debug    bool   `envconfig:"debug" default:"false"`

	Port int `envconfig:"port" default:"8080"`

	DSN string `envconfig:"DSN" required:"true"`

	DBMaxConns        int32         `envconfig:"db_max_conns" default:"25"`
	DBMinConns        int32         `envconfig:"db_min_conns" default:"2"`
	DBMaxConnLifetime time.Duration `envconfig:"db_max_conn_lifetime" default:"1h"`
	DBMaxConnIdleTime time.Duration `envconfig:"db_max_conn_idle_time" default:"30m"`

	GeminiBaseURL    string        `envconfig:"gemini_base_url"`
	GeminiTextModel  string        `envconfig:"gemini_text_model"`
	GeminiImageModel string        `envconfig:"gemini_image_model"`
	GeminiTimeout    time.Duration `envconfig:"gemini_timeout" default:"60s"`

	InstagramBaseURL string        `envconfig:"instagram_base_url"`
	InstagramTimeout time.Duration `envconfig:"instagram_timeout" default:"30s"`
}
