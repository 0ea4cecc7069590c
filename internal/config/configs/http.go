package configs

import "time"

// HTTP defines configuration for the HTTP server and its routing.
type HTTP struct {
	// Port is the TCP port the HTTP server will listen on. Defaults to 8080.
	Port uint16 `env:"PORT" envDefault:"8080"`
	// BasePath prefixes the dashboard and AI routes.
	BasePath string `env:"BASE_PATH" envDefault:"/api"`
	// MetricsPath exposes Prometheus metrics. Empty disables the endpoint.
	MetricsPath string `env:"METRICS_PATH" envDefault:"/internal/metrics"`
	// AllowedOrigins is a comma separated CORS allow list.
	AllowedOrigins []string `env:"ALLOWED_ORIGINS" envSeparator:","`

	ReadTimeout     time.Duration `env:"READ_TIMEOUT" envDefault:"10s"`
	WriteTimeout    time.Duration `env:"WRITE_TIMEOUT" envDefault:"60s"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"5s"`
}
