package cli

import (
	"bufio"
	"fmt"
	"github.com/briandowns/spinner"
	"github.com/spf13/cobra"
	"golang.org/x/term"
	"io"
	"os"
	"stegobmp/pkg/bmp"
	"stegobmp/pkg/config"
	"strings"
	"time"
)

// passwordFromTerminal is the --pass value that prompts for the password instead
const passwordFromTerminal = "-"

func MarkFlagsRequired(cmd *cobra.Command, flags ...string) {
	for _, flag := range flags {
		if err := cmd.MarkFlagRequired(flag); err != nil {
			panic(err)
		}
	}
}

func NewSpinner(w io.Writer) *spinner.Spinner {
	return spinner.New(spinner.CharSets[4], 100*time.Millisecond, spinner.WithWriter(w))
}

type encryptionOpts struct {
	cipher   string
	mode     string
	password string
	kdf      string
}

func (o *encryptionOpts) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&o.cipher, "cipher", "a", "", "Cipher: aes128, aes192, aes256 or 3des. Defaults to aes128 when a password is given")
	cmd.Flags().StringVarP(&o.mode, "mode", "m", "", "Cipher mode: ecb, cbc, cfb or ofb. Defaults to cbc when a password is given")
	cmd.Flags().StringVar(&o.password, "pass", "", "Encryption password. Use - to be prompted for it")
	cmd.Flags().StringVar(&o.kdf, "kdf", "", "Key derivation: openssl, pbkdf2 or argon2")
}

func (o *encryptionOpts) toConfig(cmd *cobra.Command) (config.EncryptionConfig, error) {
	password := o.password
	if password == passwordFromTerminal {
		var err error
		if password, err = readPassword(cmd); err != nil {
			return config.EncryptionConfig{}, err
		}
	}
	return config.EncryptionConfig{Method: o.cipher, Mode: o.mode, Password: password, KDF: o.kdf}, nil
}

type stegoOpts struct {
	method     string
	convention string
	encryption encryptionOpts
}

func (o *stegoOpts) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&o.method, "steg", "", "Steganography method: LSB1, LSB4 or LSBI")
	cmd.Flags().StringVar(&o.convention, "lsbi-convention", "", "LSBI carrier convention: adaptive or legacy")
	o.encryption.register(cmd)
}

// toConfig resolves the flags over the defaults of the configuration file
func (o *stegoOpts) toConfig(cmd *cobra.Command, defaults config.StegoConfig) (config.StegoConfig, error) {
	encryption, err := o.encryption.toConfig(cmd)
	if err != nil {
		return config.StegoConfig{}, err
	}
	return config.StegoConfig{
		Method:         o.method,
		LSBIConvention: o.convention,
		Encryption:     encryption,
	}.Merge(defaults), nil
}

// readPassword prompts without echo on a terminal and reads a line otherwise
func readPassword(cmd *cobra.Command) (string, error) {
	in := cmd.InOrStdin()
	if f, ok := in.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		fmt.Fprint(cmd.ErrOrStderr(), "Password: ")
		password, err := term.ReadPassword(int(f.Fd()))
		fmt.Fprintln(cmd.ErrOrStderr())
		if err != nil {
			return "", fmt.Errorf("error reading password: %w", err)
		}
		return string(password), nil
	}

	line, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && line == "" {
		return "", fmt.Errorf("error reading password: %w", err)
	}
	return strings.TrimRight(line, "\r\n"), nil
}

func readCarrier(path string) (*bmp.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	img, err := bmp.Read(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return img, nil
}

func writeCarrier(path string, img *bmp.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err = img.Write(f); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}
