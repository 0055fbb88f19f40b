package cli

import (
	"fmt"
	"github.com/spf13/cobra"
	"os"
	"stegobmp/pkg/stego"
)

type extractOpts struct {
	carrier    string
	outputBase string
	stego      stegoOpts
}

func extractCommand(root *rootOpts) *cobra.Command {
	opts := extractOpts{}

	extractCmd := &cobra.Command{
		Use:     "extract",
		Short:   "Recover a file hidden in a BMP image",
		Example: "stegobmp extract -p stego.bmp --out secret --steg LSBI -a aes256 -m cbc --pass -",
		RunE: func(cmd *cobra.Command, args []string) error {
			return opts.run(cmd, root)
		},
	}

	extractCmd.Flags().StringVarP(&opts.carrier, "carrier", "p", "", "BMP the file is hidden in")
	extractCmd.Flags().StringVar(&opts.outputBase, "out", "", "Name of the recovered file, without extension. The hidden extension is appended")
	opts.stego.register(extractCmd)

	MarkFlagsRequired(extractCmd, "carrier", "out")
	return extractCmd
}

func (o *extractOpts) run(cmd *cobra.Command, root *rootOpts) error {
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

	s.Prefix = "Setting up decoder "
	decoder, err := stego.NewDecoder(img, cfg)
	if err != nil {
		return err
	}

	s.Prefix = "Recovering file "
	file, err := decoder.DecodeFile(o.outputBase)
	if err != nil {
		return fmt.Errorf("error recovering a file from %s: %w", o.carrier, err)
	}

	s.Prefix = "Writing recovered file to disk "
	if err = os.WriteFile(file.Name, file.Content, 0o644); err != nil {
		return err
	}
	s.Stop()

	stats := decoder.Stats()
	root.logger.Debug("Extraction stats", "data_decoding", stats.DataDecoding, "decryption", stats.Decryption)
	fmt.Fprintf(cmd.OutOrStdout(), "Recovered %s (%d bytes)\n", file.Name, len(file.Content))
	return nil
}
