package configs

// Store drivers.
const (
	StoreMemory   = "memory"
	StorePostgres = "postgres"
)

// Store selects where campaign rows are read from. Metrics and chart
// series are always served from the built-in fixture.
type Store struct {
	Driver string `env:"DRIVER" envDefault:"memory"`
}
