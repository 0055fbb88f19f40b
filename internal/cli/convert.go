package cli

import (
	"fmt"
	"github.com/spf13/cobra"
	"os"
	"stegobmp/pkg/bmp"
)

func convertCommand() *cobra.Command {
	var sourceImage, outputImage string

	convertCmd := &cobra.Command{
		Use:     "convert",
		Short:   "Convert a PNG, JPEG or BMP image into a 24-bit BMP carrier",
		Example: "stegobmp convert --image photo.png --out carrier.bmp",
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := os.Open(sourceImage)
			if err != nil {
				return err
			}
			defer f.Close()

			img, err := bmp.Convert(f)
			if err != nil {
				return fmt.Errorf("%s: %w", sourceImage, err)
			}
			if err = writeCarrier(outputImage, img); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Generated %s, %dx%d\n", outputImage, img.Width, img.Height)
			return nil
		},
	}

	convertCmd.Flags().StringVar(&sourceImage, "image", "", "Image to convert")
	convertCmd.Flags().StringVar(&outputImage, "out", "", "24-bit BMP to write")

	MarkFlagsRequired(convertCmd, "image", "out")
	return convertCmd
}
