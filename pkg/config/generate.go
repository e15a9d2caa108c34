package config

import (
	toml "github.com/pelletier/go-toml/v2"

	"github.com/fluxehub/AdventOfCode2025/pkg/errors"
)

// Generate renders cfg as a TOML document loadable by Load. The session
// token is blanked so the output is safe to commit.
func Generate(cfg *Config) ([]byte, error) {
	m := cfg.ToMap()
	m["input"].(map[string]interface{})["session"] = ""

	out, err := toml.Marshal(m)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrInternal, "failed to render configuration")
	}
	return out, nil
}
