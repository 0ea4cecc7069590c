package configs

import "time"

// AI configures the generative-text gateway and the /ai routes.
type AI struct {
	// Enabled turns AI features on. With it off, or without APIKey, every
	// AI route answers 503.
	Enabled bool          `env:"ENABLED" envDefault:"false"`
	APIKey  string        `env:"API_KEY"`
	APIURL  string        `env:"API_URL" envDefault:"https://generativelanguage.googleapis.com/v1beta/models/gemini-pro:generateContent"`
	Timeout time.Duration `env:"TIMEOUT" envDefault:"30s"`

	// RateLimitRPS and RateLimitBurst bound AI requests per client IP.
	// Zero RPS disables limiting.
	RateLimitRPS   float64 `env:"RATE_LIMIT_RPS" envDefault:"1"`
	RateLimitBurst int     `env:"RATE_LIMIT_BURST" envDefault:"5"`

	// KeywordsFile replaces the built-in classifier keyword tables.
	KeywordsFile string `env:"KEYWORDS_FILE"`
}
