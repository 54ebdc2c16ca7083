package main

import (
	"bytes"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"net/http"
	"os"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/webp"

	"github.com/simonhull/flactag"
)

func newPictureCommand(ctx *commandContext) *cobra.Command {
	var (
		pictureType uint32
		mimeType    string
		description string
	)

	cmd := &cobra.Command{
		Use:   "picture FILE IMAGE",
		Short: "Embed an image, replacing any picture of the same type",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(args[1])
			if err != nil {
				return errors.Wrap(err, "read image")
			}
			if len(data) == 0 {
				return errors.Newf("%s is empty", args[1])
			}
			if mimeType == "" {
				mimeType = http.DetectContentType(data)
			}
			typ := flactag.PictureType(pictureType)

			return ctx.edit(args[0], func(tag *flactag.Tag) error {
				tag.AddPicture(mimeType, typ, data)
				pic, ok := tag.Picture(typ)
				if !ok {
					return errors.AssertionFailedf("picture %s missing after add", typ)
				}
				pic.Description = description
				if cfg, _, err := image.DecodeConfig(bytes.NewReader(data)); err == nil {
					pic.Width = uint32(cfg.Width)
					pic.Height = uint32(cfg.Height)
				}
				ctx.log().Debug("embedded picture", "type", typ, "picture", pic.String())
				return nil
			})
		},
	}

	cmd.Flags().Uint32VarP(&pictureType, "type", "t", uint32(flactag.PictureFrontCover), "Picture type code (3 is front cover)")
	cmd.Flags().StringVar(&mimeType, "mime", "", "MIME type (detected from content when empty)")
	cmd.Flags().StringVar(&description, "description", "", "Picture description")
	return cmd
}

func newExportPictureCommand(ctx *commandContext) *cobra.Command {
	var pictureType uint32

	cmd := &cobra.Command{
		Use:   "export-picture FILE OUT",
		Short: "Write an embedded picture to a file",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			tag, err := ctx.read(args[0])
			if err != nil {
				return err
			}
			typ := flactag.PictureType(pictureType)
			pic, ok := tag.Picture(typ)
			if !ok {
				return errors.Newf("%s: no %s picture", args[0], typ)
			}
			if err := os.WriteFile(args[1], pic.Data, 0o644); err != nil {
				return errors.Wrap(err, "write picture")
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s -> %s\n", pic, args[1])
			return nil
		},
	}

	cmd.Flags().Uint32VarP(&pictureType, "type", "t", uint32(flactag.PictureFrontCover), "Picture type code (3 is front cover)")
	return cmd
}
