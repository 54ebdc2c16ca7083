package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"

	"github.com/simonhull/flactag/internal/config"
)

func newConfigCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:         "config",
		Short:       "Manage configuration",
		Annotations: map[string]string{"skipConfigLoad": "true"},
	}
	cmd.AddCommand(newConfigInitCommand())
	cmd.AddCommand(newConfigValidateCommand())
	return cmd
}

func newConfigInitCommand() *cobra.Command {
	var path string
	var overwrite bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Create a sample configuration file",
		RunE: func(cmd *cobra.Command, args []string) error {
			target := strings.TrimSpace(path)
			if target == "" {
				target = config.DefaultPath()
			}
			if target == "" {
				return errors.New("no config directory; pass --path")
			}

			if !overwrite {
				if _, err := os.Stat(target); err == nil {
					return errors.Newf("config file %s already exists (use --overwrite to replace)", target)
				} else if !errors.Is(err, os.ErrNotExist) {
					return errors.Wrap(err, "check config path")
				}
			}

			if err := config.CreateSample(target); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote sample config to %s\n", target)
			return nil
		},
	}

	cmd.Flags().StringVarP(&path, "path", "p", "", "Destination for the configuration file")
	cmd.Flags().BoolVar(&overwrite, "overwrite", false, "Overwrite the file if it already exists")
	return cmd
}

func newConfigValidateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Short: "Check the configuration file",
		RunE: func(cmd *cobra.Command, args []string) error {
			flag := cmd.Flag("config")
			var path string
			if flag != nil {
				path = flag.Value.String()
			}
			_, resolved, exists, err := config.Load(strings.TrimSpace(path))
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if !exists {
				fmt.Fprintf(out, "No config file at %s, using defaults\n", resolved)
				return nil
			}
			fmt.Fprintf(out, "%s is valid\n", resolved)
			return nil
		},
	}
}
