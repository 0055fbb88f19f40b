package cli

import (
	"fmt"
	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
	"os"
	"stegobmp/pkg/model"
	"stegobmp/pkg/stego"
)

type embedOpts struct {
	inputFile   string
	carrier     string
	outputImage string
	stego       stegoOpts
}

func embedCommand(root *rootOpts) *cobra.Command {
	opts := embedOpts{}

	embedCmd := &cobra.Command{
		Use:     "embed",
		Short:   "Hide a file in a 24-bit BMP image",
		Example: "stegobmp embed --in secret.txt -p carrier.bmp --out stego.bmp --steg LSBI -a aes256 -m cbc --pass -",
		RunE: func(cmd *cobra.Command, args []string) error {
			return opts.run(cmd, root)
		},
	}

	embedCmd.Flags().StringVar(&opts.inputFile, "in", "", "File to hide")
	embedCmd.Flags().StringVarP(&opts.carrier, "carrier", "p", "", "24-bit BMP to hide the file in (left untouched)")
	embedCmd.Flags().StringVar(&opts.outputImage, "out", "", "BMP to write with the file hidden in it")
	opts.stego.register(embedCmd)

	MarkFlagsRequired(embedCmd, "in", "carrier", "out")
	return embedCmd
}

func (o *embedOpts) run(cmd *cobra.Command, root *rootOpts) error {
	cfg, err := o.stego.toConfig(cmd, root.fileConfig.Defaults)
	if err != nil {
		return err
	}

	s := NewSpinner(cmd.ErrOrStderr())
	s.Prefix = "Reading carrier "
	s.Start()
	defer s.Stop()

	img, err := readCarrier(o.carrier)
	if err != nil {
		return err
	}

	s.Prefix = "Setting up encoder "
	encoder, err := stego.NewEncoder(img, cfg)
	if err != nil {
		return err
	}

	file, err := os.Open(o.inputFile)
	if err != nil {
		return err
	}
	defer file.Close()
	fileStat, err := file.Stat()
	if err != nil {
		return err
	}

	s.Prefix = "Hiding file "
	err = encoder.EncodeFile(model.InputFile{Name: file.Name(), Content: file, Size: fileStat.Size()})
	if err != nil {
		return fmt.Errorf("error hiding %s in %s: %w", o.inputFile, o.carrier, err)
	}

	s.Prefix = "Writing output BMP "
	if err = writeCarrier(o.outputImage, encoder.Image()); err != nil {
		return err
	}
	s.Stop()

	stats := encoder.Stats()
	root.logger.Debug("Embedding stats", "setup", stats.Setup, "encryption", stats.Encryption,
		"data_encoding", stats.DataEncoding)
	fmt.Fprintf(cmd.OutOrStdout(), "Generated %s hiding %s with %s (%s of %s used)\n", o.outputImage, o.inputFile,
		cfg.Method, humanize.Bytes(uint64(stats.StreamSize)), humanize.Bytes(uint64(stats.Capacity)))
	return nil
}
