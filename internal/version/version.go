package version

// Build information set by ldflags
var (
	Version = "dev"     // -X github.com/fluxehub/AdventOfCode2025/internal/version.Version={{.Version}}
	Commit  = "unknown" // -X github.com/fluxehub/AdventOfCode2025/internal/version.Commit={{.Commit}}
	Date    = "unknown" // -X github.com/fluxehub/AdventOfCode2025/internal/version.Date={{.Date}}
)
