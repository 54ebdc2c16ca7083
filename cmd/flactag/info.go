package main

import (
	"github.com/spf13/cobra"

	"github.com/simonhull/flactag"
)

func newInfoCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "info FILE...",
		Short: "Summarize audio properties and main tags of several files",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			tags, err := flactag.ReadFiles(cmd.Context(), args...)
			if err != nil {
				return err
			}

			rows := make([][]string, 0, len(tags))
			for i, tag := range tags {
				audio := "-"
				if info, ok := flactag.AudioInfoOf(tag); ok {
					audio = info.String()
				}
				artist, _ := tag.Artist()
				title, _ := tag.Title()
				rows = append(rows, []string{args[i], audio, artist, title})
			}
			ctx.log().Debug("read files", "count", len(tags))

			headers := []string{"File", "Audio", "Artist", "Title"}
			return writeRows(cmd.OutOrStdout(), headers, rows, nil)
		},
	}
}
