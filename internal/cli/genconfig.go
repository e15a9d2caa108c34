package cli

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/fluxehub/AdventOfCode2025/pkg/config"
	"github.com/fluxehub/AdventOfCode2025/pkg/errors"
)

func newGenConfigCmd(a *app) *cobra.Command {
	var write bool

	cmd := &cobra.Command{
		Use:   "genconfig",
		Short: MsgGenConfigShort,
		Long:  MsgGenConfigLong,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out, err := config.Generate(a.cfg)
			if err != nil {
				return err
			}
			if !write {
				_, err := cmd.OutOrStdout().Write(out)
				return err
			}

			target := filepath.Join(a.env.Root, config.ProjectFileName)
			exists, err := afero.Exists(a.env.Fs, target)
			if err != nil {
				return errors.Wrapf(err, errors.ErrInternal, "failed to check %s", target)
			}
			if exists {
				return errors.Newf(errors.ErrAlreadyExists, "%s already exists", target)
			}
			if err := afero.WriteFile(a.env.Fs, target, out, 0644); err != nil {
				return errors.Wrapf(err, errors.ErrInternal, "failed to write %s", target)
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), MsgConfigWritten+"\n", target)
			return err
		},
	}
	cmd.Flags().BoolVarP(&write, "write", "w", false, MsgFlagWrite)
	return cmd
}
