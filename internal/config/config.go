package config

import "runtime"

// Config carries everything a run needs. Resource knobs affect speed and
// memory use only, never which systems end up in the output.
type Config struct {
	InputPath  string
	OutputPath string

	Resources ResourceConfig
	Store     StoreConfig
}

type ResourceConfig struct {
	MemoryLimitMB int    // SQLite page-cache ceiling during bulk load
	Workers       int    // matcher goroutines; 1 = fully sequential
	TempDir       string // spill directory for the store engine ("" = engine default)
}

type StoreConfig struct {
	BatchSize int // rows per insert transaction
}

func Default() Config {
	return Config{
		Resources: ResourceConfig{
			MemoryLimitMB: 1024,
			Workers:       runtime.NumCPU(),
		},
		Store: StoreConfig{
			BatchSize: 10000,
		},
	}
}
