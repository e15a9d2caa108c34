package config

import (
	"testing"

	"github.com/adrg/xdg"
)

// reloadXDG re-reads the XDG environment and restores it once t ends
func reloadXDG(t *testing.T) {
	t.Helper()
	xdg.Reload()
	t.Cleanup(xdg.Reload)
}
