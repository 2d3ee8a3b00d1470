package entity

// Function is the entity struct which maps the [function] section.
type Function struct {
	Name                string `toml:"name"`
	Runtime             string `toml:"runtime"`
	Handler             string `toml:"handler"`
	CodePath            string `toml:"code_path"`
	MemorySize          int    `toml:"memory_size"`
	Timeout             int    `toml:"timeout"`
	Tracing             bool   `toml:"tracing"`
	ReservedConcurrency int    `toml:"reserved_concurrency"`
	LogRetentionDays    int    `toml:"log_retention_days"`
}

// Runtimes accepted in configuration, mapped onto provider runtimes
// by the stack package.
var Runtimes = []string{
	"provided.al2023",
	"provided.al2",
	"python3.12",
	"nodejs20.x",
}

// HasReservedConcurrency reports whether a concurrency reservation is
// requested. Zero means the account pool is shared.
func (f Function) HasReservedConcurrency() bool {
	return f.ReservedConcurrency > 0
}

// RuntimeValid reports whether the configured runtime identifier is one
// this tool knows how to map.
func (f Function) RuntimeValid() bool {
	for _, r := range Runtimes {
		if f.Runtime == r {
			return true
		}
	}
	return false
}
