package main

import (
	"fmt"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"

	"github.com/simonhull/flactag"
)

func newGetCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "get FILE [KEY]",
		Short: "Print comment values",
		Long:  "Print every value of KEY, one per line. Without KEY, print all comments as KEY=VALUE.",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			tag, err := ctx.read(args[0])
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()

			if len(args) == 1 {
				for _, kv := range tag.AllMetadata() {
					fmt.Fprintf(out, "%s=%s\n", kv[0], kv[1])
				}
				return nil
			}

			values := tag.Values(args[1])
			if len(values) == 0 {
				return errors.Newf("%s: %s not set", args[0], args[1])
			}
			for _, v := range values {
				fmt.Fprintln(out, v)
			}
			return nil
		},
	}
}

// assignment is one KEY=VALUE argument.
type assignment struct {
	key   string
	value string
}

func parseAssignment(arg string) (assignment, error) {
	key, value, ok := strings.Cut(arg, "=")
	if !ok || key == "" {
		return assignment{}, errors.Newf("invalid assignment %q, expected KEY=VALUE", arg)
	}
	return assignment{key: key, value: value}, nil
}

func newSetCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "set FILE KEY=VALUE...",
		Short: "Replace comment values",
		Long: "Replace the values of each named key. Repeating a key assigns " +
			"several values, in argument order.",
		Args: cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			var order []string
			values := make(map[string][]string)
			for _, arg := range args[1:] {
				a, err := parseAssignment(arg)
				if err != nil {
					return err
				}
				if _, seen := values[a.key]; !seen {
					order = append(order, a.key)
				}
				values[a.key] = append(values[a.key], a.value)
			}

			return ctx.edit(args[0], func(tag *flactag.Tag) error {
				for _, key := range order {
					tag.Set(key, values[key]...)
				}
				return nil
			})
		},
	}
}

func newRemoveCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "remove FILE KEY[=VALUE]...",
		Short: "Remove comments",
		Long:  "Remove every comment with KEY, or only those with KEY=VALUE.",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.edit(args[0], func(tag *flactag.Tag) error {
				for _, arg := range args[1:] {
					if key, value, ok := strings.Cut(arg, "="); ok {
						tag.RemoveKeyValue(key, value)
						continue
					}
					tag.RemoveKey(arg)
				}
				return nil
			})
		},
	}
}
