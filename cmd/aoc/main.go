package main

import (
	"context"
	"os"
	"os/signal"

	"github.com/rs/zerolog/log"

	"github.com/fluxehub/AdventOfCode2025/internal/cli"
	"github.com/fluxehub/AdventOfCode2025/pkg/errors"
	"github.com/fluxehub/AdventOfCode2025/pkg/ui"

	// Link every day module so its init() registers it
	_ "github.com/fluxehub/AdventOfCode2025/days"
)

//go:generate go run ../aocgen --root ../..

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := cli.NewRootCmd().ExecuteContext(ctx); err != nil {
		if e, ok := errors.As(err); ok {
			log.Debug().EmbedObject(e).Msg("Command failed")
		}
		ui.RenderError(os.Stderr, ui.Resolve(ui.FormatAuto, os.Stderr), err)
		stop()
		os.Exit(1)
	}
}
