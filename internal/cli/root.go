// Package cli builds the aoc command tree.
package cli

import (
	"embed"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/rs/zerolog/log"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/fluxehub/AdventOfCode2025/internal/version"
	"github.com/fluxehub/AdventOfCode2025/pkg/config"
	"github.com/fluxehub/AdventOfCode2025/pkg/help"
	"github.com/fluxehub/AdventOfCode2025/pkg/input"
	"github.com/fluxehub/AdventOfCode2025/pkg/logging"
	"github.com/fluxehub/AdventOfCode2025/pkg/registry"
	"github.com/fluxehub/AdventOfCode2025/pkg/ui"
)

//go:embed topics
var topicFiles embed.FS

// Env is what the commands operate on. Tests swap every field.
type Env struct {
	Catalog *registry.Catalog
	Fs      afero.Fs

	// Root is the project directory holding go.mod, days/ and aoc.toml
	Root  string
	Stdin io.Reader

	// SkipUserConfig ignores $XDG_CONFIG_HOME/aoc/config.toml
	SkipUserConfig bool
}

// DefaultEnv runs against the working directory and the process catalog
func DefaultEnv() Env {
	root, err := os.Getwd()
	if err != nil {
		root = "."
	}
	return Env{
		Catalog: registry.Default(),
		Fs:      afero.NewOsFs(),
		Root:    root,
		Stdin:   os.Stdin,
	}
}

// app carries state shared by the commands of one invocation
type app struct {
	env        Env
	verbosity  int
	configFile string
	cfg        *config.Config
}

// skipConfig marks commands that run without loading configuration
const skipConfig = "skip-config"

// flagKeys maps bench flags onto configuration keys
var flagKeys = map[string]string{
	"warm-up":     "bench.warm_up",
	"measurement": "bench.measurement",
	"samples":     "bench.samples",
	"confidence":  "bench.confidence",
	"format":      "bench.format",
}

// NewRootCmd creates and returns the root command
func NewRootCmd() *cobra.Command {
	return NewRootCmdWithEnv(DefaultEnv())
}

// NewRootCmdWithEnv creates the root command over env
func NewRootCmdWithEnv(env Env) *cobra.Command {
	a := &app{env: env}
	var example bool

	rootCmd := &cobra.Command{
		Use:     "aoc [day]",
		Short:   MsgRootShort,
		Long:    MsgRootLong,
		Example: MsgRunExample,
		Version: version.Version,
		Args:    cobra.MaximumNArgs(1),
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			logging.SetupLogger(a.verbosity)
			log.Debug().Str("command", cmd.Name()).Msg("Command started")
			if cmd.Annotations[skipConfig] != "" {
				return nil
			}
			return a.loadConfig(cmd)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return cmd.Help()
			}
			return a.runDay(cmd, args[0], example)
		},
		SilenceUsage:      true,
		SilenceErrors:     true,
		DisableAutoGenTag: true,
	}

	rootCmd.PersistentFlags().CountVarP(&a.verbosity, "verbose", "v", MsgFlagVerbose)
	rootCmd.PersistentFlags().StringVar(&a.configFile, "config", "", MsgFlagConfig)
	rootCmd.Flags().BoolVar(&example, "example", false, MsgFlagExample)

	rootCmd.AddCommand(newRunCmd(a))
	rootCmd.AddCommand(newBenchCmd(a))
	rootCmd.AddCommand(newNewCmd(a))
	rootCmd.AddCommand(newListCmd(a))
	rootCmd.AddCommand(newGenConfigCmd(a))
	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newManCmd())

	var renderer help.Renderer = help.PlainRenderer{}
	if ui.DetectFormat(os.Stdout) == ui.FormatTerminal {
		renderer = help.GlamourRenderer{}
	}
	if _, err := help.Install(rootCmd, topicFiles, help.Options{
		Renderer:    renderer,
		Annotations: map[string]string{skipConfig: "true"},
	}); err != nil {
		log.Warn().Err(err).Msg("Help topics unavailable")
	}

	return rootCmd
}

// loadConfig resolves the configuration, applying changed bench flags last
func (a *app) loadConfig(cmd *cobra.Command) error {
	overrides := map[string]interface{}{}
	cmd.Flags().Visit(func(f *pflag.Flag) {
		if key, ok := flagKeys[f.Name]; ok {
			overrides[key] = f.Value.String()
		}
	})

	cfg, err := config.Load(config.LoadOptions{
		ProjectDir:   a.env.Root,
		ConfigFile:   a.configFile,
		SkipUserFile: a.env.SkipUserConfig,
		Overrides:    overrides,
	})
	if err != nil {
		return err
	}
	a.cfg = cfg
	return nil
}

// store builds the input provider from the configuration
func (a *app) store() (*input.Store, func(), error) {
	session := a.cfg.Input.Session
	if session == "" {
		var err error
		session, err = input.ReadSession(a.path(a.cfg.Input.SessionFile))
		if err != nil {
			return nil, nil, err
		}
	}

	fetcher := input.NewHTTPFetcher(input.FetchConfig{
		BaseURL:   a.cfg.Input.BaseURL,
		Year:      a.cfg.Year,
		Session:   session,
		Timeout:   a.cfg.Input.Timeout,
		UserAgent: a.cfg.Input.UserAgent,
	})
	closer := func() {
		if err := fetcher.Close(); err != nil {
			log.Debug().Err(err).Msg("Failed to close fetcher")
		}
	}
	return input.NewStore(a.env.Fs, a.path(a.cfg.Input.Dir), fetcher), closer, nil
}

// path resolves p against the project root unless it is absolute
func (a *app) path(p string) string {
	if p == "" || filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(a.env.Root, p)
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:         "version",
		Short:       MsgVersionShort,
		Annotations: map[string]string{skipConfig: "true"},
		Run: func(cmd *cobra.Command, args []string) {
			out := cmd.OutOrStdout()
			_, _ = fmt.Fprintf(out, MsgVersionFormat, version.Version)
			if version.Commit != "" {
				_, _ = fmt.Fprintf(out, MsgCommitFormat, version.Commit)
			}
			if version.Date != "" {
				_, _ = fmt.Fprintf(out, MsgBuiltFormat, version.Date)
			}
		},
	}
}
