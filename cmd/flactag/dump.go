package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/simonhull/flactag"
)

func newDumpCommand(ctx *commandContext) *cobra.Command {
	var comments bool

	cmd := &cobra.Command{
		Use:   "dump FILE",
		Short: "List the metadata blocks of a FLAC file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			tag, err := ctx.read(args[0])
			if err != nil {
				return err
			}

			rows := make([][]string, 0, len(tag.Blocks()))
			for i, b := range tag.Blocks() {
				size, err := flactag.EncodedSize(b)
				sizeCol := strconv.Itoa(size)
				if err != nil {
					sizeCol = "?"
				}
				rows = append(rows, []string{
					strconv.Itoa(i),
					b.Type().String(),
					sizeCol,
					flactag.DescribeBlock(b),
				})
			}

			out := cmd.OutOrStdout()
			headers := []string{"#", "Type", "Size", "Summary"}
			aligns := []columnAlignment{alignRight, alignLeft, alignRight, alignLeft}
			if err := writeRows(out, headers, rows, aligns); err != nil {
				return err
			}

			if comments {
				for _, kv := range tag.AllMetadata() {
					fmt.Fprintf(out, "%s=%s\n", kv[0], kv[1])
				}
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&comments, "comments", false, "Also print every Vorbis comment")
	return cmd
}
