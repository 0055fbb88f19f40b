package cli

import (
	"fmt"
	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
	"stegobmp/pkg/codec"
	"stegobmp/pkg/config"
	"stegobmp/pkg/stego"
	"text/tabwriter"
)

type capacityOpts struct {
	carrier    string
	extension  string
	encryption encryptionOpts
}

func capacityCommand(root *rootOpts) *cobra.Command {
	opts := capacityOpts{}

	capacityCmd := &cobra.Command{
		Use:     "capacity",
		Short:   "Show the largest file each method can hide in a BMP image",
		Example: "stegobmp capacity -p carrier.bmp --ext .pdf -a aes128 -m cbc --pass secret",
		RunE: func(cmd *cobra.Command, args []string) error {
			return opts.run(cmd, root)
		},
	}

	capacityCmd.Flags().StringVarP(&opts.carrier, "carrier", "p", "", "24-bit BMP to measure")
	capacityCmd.Flags().StringVar(&opts.extension, "ext", ".txt", "Extension of the file to hide, dot included")
	opts.encryption.register(capacityCmd)

	MarkFlagsRequired(capacityCmd, "carrier")
	return capacityCmd
}

func (o *capacityOpts) run(cmd *cobra.Command, root *rootOpts) error {
	encryption, err := o.encryption.toConfig(cmd)
	if err != nil {
		return err
	}
	params, err := config.StegoConfig{Encryption: encryption}.Merge(root.fileConfig.Defaults).Params()
	if err != nil {
		return err
	}
	img, err := readCarrier(o.carrier)
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintf(w, "%s: %dx%d, %s of pixel data, encryption %s\n", o.carrier, img.Width, img.Height,
		humanize.Bytes(uint64(img.Capacity())), params)
	fmt.Fprintln(w, "METHOD\tMAX FILE SIZE\tBYTES")
	for _, c := range []codec.Codec{codec.NewLSB1(), codec.NewLSB4(), codec.NewLSBI(codec.ConventionAdaptive),
		codec.NewLSBI(codec.ConventionLegacy)} {
		name := string(c.Method())
		if lsbi, ok := c.(*codec.LSBICodec); ok {
			name += " (" + lsbi.Convention().String() + ")"
		}
		size := stego.MaxFileSize(c, img.Capacity(), len(o.extension), params)
		fmt.Fprintf(w, "%s\t%s\t%s\n", name, humanize.Bytes(uint64(size)), humanize.Comma(int64(size)))
	}
	return w.Flush()
}
