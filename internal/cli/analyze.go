package cli

import (
	"errors"
	"fmt"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"io"
	"os"
	"stegobmp/pkg/analysis"
	"stegobmp/pkg/config"
	"stegobmp/pkg/stego"
)

var (
	infoPrinter    = color.New(color.FgCyan)
	successPrinter = color.New(color.FgGreen, color.Bold)
	warnPrinter    = color.New(color.FgYellow)
	failPrinter    = color.New(color.FgRed)
)

type analyzeOpts struct {
	carrier    string
	outputBase string
	encryption encryptionOpts
}

func analyzeCommand(root *rootOpts) *cobra.Command {
	opts := analyzeOpts{}

	analyzeCmd := &cobra.Command{
		Use:     "analyze",
		Short:   "Find out whether and how a BMP image hides a file",
		Example: "stegobmp analyze -p suspicious.bmp --out found",
		RunE: func(cmd *cobra.Command, args []string) error {
			return opts.run(cmd, root)
		},
	}

	analyzeCmd.Flags().StringVarP(&opts.carrier, "carrier", "p", "", "BMP to analyze")
	analyzeCmd.Flags().StringVar(&opts.outputBase, "out", "", "Save a detected file under this name, plus its extension")
	opts.encryption.register(analyzeCmd)

	MarkFlagsRequired(analyzeCmd, "carrier")
	return analyzeCmd
}

func (o *analyzeOpts) run(cmd *cobra.Command, root *rootOpts) error {
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

	w := cmd.OutOrStdout()
	result, stats, err := stego.Analyze(img)
	root.logger.Debug("Analysis stats", "analysis", stats.Analysis, "attempts", stats.Attempts)
	printReport(w, o.carrier, result)
	if errors.Is(err, analysis.ErrNoPayloadDetected) {
		return err
	}

	if o.outputBase == "" {
		return nil
	}
	file, err := stego.RecoverFile(result, o.outputBase, params)
	if errors.Is(err, analysis.ErrEncrypted) {
		warnPrinter.Fprintln(w, "[!] Payload is encrypted, supply --pass to decrypt and save it")
		return nil
	}
	if err != nil {
		return err
	}
	if err = os.WriteFile(file.Name, file.Content, 0o644); err != nil {
		return err
	}
	successPrinter.Fprintf(w, "[+] Saved %s (%d bytes)\n", file.Name, len(file.Content))
	return nil
}

func printReport(w io.Writer, name string, result *analysis.Result) {
	infoPrinter.Fprintf(w, "[*] Analyzing %s\n", name)
	for _, a := range result.Attempts {
		if a.Err != nil {
			failPrinter.Fprintf(w, "[-] %s: %s\n", a.Method, a.Err)
		}
	}

	s := result.LSBStats
	infoPrinter.Fprintf(w, "[*] LSB plane: %d ones, %d zeros, ratio %.4f, entropy %.4f\n", s.Ones, s.Zeros,
		s.OnesRatio, s.Entropy)

	if !result.HasPayload {
		failPrinter.Fprintln(w, "[!] No payload detected")
		if g := result.Guess; g != nil {
			warnPrinter.Fprintf(w, "[?] Best guess: %s, %s at offset %d\n", g.Method, g.Signature, g.Offset)
		}
		return
	}
	successPrinter.Fprintf(w, "[+] %s payload hidden with %s\n", result.Format, result.Method)
	fmt.Fprintf(w, "    declared size: %d bytes, extracted stream: %d bytes\n", result.DeclaredSize,
		result.ExtractedSize)
}
