package stego

import (
	"bytes"
	"errors"
	"fmt"
	"stegobmp/pkg/analysis"
	"stegobmp/pkg/bmp"
	"stegobmp/pkg/codec"
	"stegobmp/pkg/config"
	"stegobmp/pkg/crypt"
	"stegobmp/pkg/envelope"
	"stegobmp/pkg/model"
	"stegobmp/pkg/payload"
	"stegobmp/test"
	"testing"
)

func generateCarrier(t testing.TB, width, height int) *bmp.Image {
	t.Helper()
	img, err := bmp.Parse(test.GenerateBMP(width, height))
	if err != nil {
		t.Fatalf("Error generating carrier: %s", err)
	}
	return img
}

func inputFile(name string, content []byte) model.InputFile {
	return model.InputFile{Name: name, Content: bytes.NewReader(content), Size: int64(len(content))}
}

func encodeDecode(t *testing.T, cfg config.StegoConfig, content []byte) {
	carrier := generateCarrier(t, 121, 80)
	encoder, err := NewEncoder(carrier, cfg)
	if err != nil {
		t.Fatalf("Error creating encoder: %s", err)
	}
	if err = encoder.EncodeFile(inputFile("secret.bin", content)); err != nil {
		t.Fatalf("Error encoding: %s", err)
	}

	var out bytes.Buffer
	if err = encoder.WriteBMP(&out); err != nil {
		t.Fatalf("Error writing BMP: %s", err)
	}
	stats := encoder.Stats()
	if stats.StreamSize == 0 || stats.StreamSize > stats.Capacity {
		t.Errorf("Unexpected stats %+v", stats)
	}

	written, err := bmp.Read(&out)
	if err != nil {
		t.Fatalf("Error reading BMP back: %s", err)
	}
	decoder, err := NewDecoder(written, cfg)
	if err != nil {
		t.Fatalf("Error creating decoder: %s", err)
	}
	file, err := decoder.DecodeFile("out")
	if err != nil {
		t.Fatalf("Error decoding: %s", err)
	}
	if file.Name != "out.bin" || file.Extension != ".bin" {
		t.Errorf("Expected out.bin, got %s", file.Name)
	}
	if !bytes.Equal(file.Content, content) {
		t.Errorf("Decoded content differs from the hidden file")
	}
}

func TestEncodeDecode(t *testing.T) {
	for _, method := range []string{"LSB1", "LSB4", "LSBI"} {
		for _, convention := range []string{"adaptive", "legacy"} {
			if method != "LSBI" && convention == "legacy" {
				continue
			}
			cfg := config.StegoConfig{Method: method, LSBIConvention: convention}
			t.Run(fmt.Sprintf("%s-%s", method, convention), func(t *testing.T) {
				t.Parallel()
				encodeDecode(t, cfg, test.GenerateRandomBytes(900))
			})
		}
	}
}

func TestEncodeDecodeEncrypted(t *testing.T) {
	for _, method := range []string{"LSB1", "LSB4", "LSBI"} {
		for _, cipher := range crypt.Methods() {
			for _, mode := range crypt.Modes() {
				cfg := config.StegoConfig{Method: method, Encryption: config.EncryptionConfig{
					Method: string(cipher), Mode: string(mode), Password: "margarita",
				}}
				t.Run(fmt.Sprintf("%s-%s-%s", method, cipher, mode), func(t *testing.T) {
					t.Parallel()
					encodeDecode(t, cfg, append(make([]byte, 64), test.GenerateRandomBytes(500)...))
				})
			}
		}
	}
}

func TestHelloExample(t *testing.T) {
	stream, err := payload.Build([]byte("hello"), ".txt")
	if err != nil {
		t.Fatalf("Error building payload: %s", err)
	}
	carrier := test.GenerateRandomBytes(10000)
	lsb1 := codec.NewLSB1()
	if err = lsb1.Hide(carrier, stream); err != nil {
		t.Fatalf("Error hiding: %s", err)
	}

	retrieved, err := lsb1.Retrieve(carrier, codec.Terminated)
	if err != nil {
		t.Fatalf("Error retrieving: %s", err)
	}
	p, err := payload.Parse(retrieved)
	if err != nil {
		t.Fatalf("Error parsing: %s", err)
	}
	if string(p.Data) != "hello" || p.DeclaredSize != 5 {
		t.Errorf("Expected hello with declared size 5, got %q (%d)", p.Data, p.DeclaredSize)
	}
	if name := payload.FileName("base", p.Extension); name != "base.txt" {
		t.Errorf("Expected base.txt, got %s", name)
	}
}

func TestEncodeTooLarge(t *testing.T) {
	carrier := generateCarrier(t, 10, 10)
	original := bytes.Clone(carrier.Pixels)
	encoder, err := NewEncoder(carrier, config.StegoConfig{Method: "LSB1"})
	if err != nil {
		t.Fatalf("Error creating encoder: %s", err)
	}

	err = encoder.EncodeFile(inputFile("big.txt", test.GenerateRandomBytes(300)))
	if !errors.Is(err, codec.ErrInsufficientCapacity) {
		t.Errorf("Expected ErrInsufficientCapacity, got %v", err)
	}
	if !bytes.Equal(carrier.Pixels, original) {
		t.Errorf("Carrier was modified by a failed encode")
	}
}

func TestEncodeInputErrors(t *testing.T) {
	encoder, err := NewEncoder(generateCarrier(t, 50, 50), config.StegoConfig{})
	if err != nil {
		t.Fatalf("Error creating encoder: %s", err)
	}
	if err = encoder.EncodeFile(inputFile("README", []byte("x"))); !errors.Is(err, payload.ErrMissingExtension) {
		t.Errorf("Expected ErrMissingExtension, got %v", err)
	}
	file := inputFile("a.txt", []byte("abc"))
	file.Size = 10
	if err = encoder.EncodeFile(file); !errors.Is(err, ErrFileSizeMismatch) {
		t.Errorf("Expected ErrFileSizeMismatch, got %v", err)
	}
	if err = encoder.EncodeFile(inputFile("empty.txt", nil)); !errors.Is(err, payload.ErrEmptyFile) {
		t.Errorf("Expected ErrEmptyFile, got %v", err)
	}

	if _, err = NewEncoder(generateCarrier(t, 5, 5), config.StegoConfig{Method: "LSB3"}); !errors.Is(err, codec.ErrUnknownMethod) {
		t.Errorf("Expected ErrUnknownMethod, got %v", err)
	}
	cfg := config.StegoConfig{Encryption: config.EncryptionConfig{Method: "aes512", Password: "pw"}}
	if _, err = NewDecoder(generateCarrier(t, 5, 5), cfg); !errors.Is(err, crypt.ErrUnsupportedCipher) {
		t.Errorf("Expected ErrUnsupportedCipher, got %v", err)
	}
}

func TestDecodeErrors(t *testing.T) {
	carrier := generateCarrier(t, 60, 60)
	cfg := config.StegoConfig{Method: "LSB4", Encryption: config.EncryptionConfig{Password: "pw"}}
	encoder, _ := NewEncoder(carrier, cfg)
	if err := encoder.EncodeFile(inputFile("a.txt", []byte("some text"))); err != nil {
		t.Fatalf("Error encoding: %s", err)
	}

	// plain extraction of an encrypted carrier sees the envelope, which is no payload
	decoder, _ := NewDecoder(carrier, config.StegoConfig{Method: "LSB4"})
	if _, err := decoder.DecodeFile("out"); !errors.Is(err, payload.ErrMalformedPayload) {
		t.Errorf("Expected ErrMalformedPayload, got %v", err)
	}

	cfg.Encryption.Method = "3des"
	decoder, _ = NewDecoder(carrier, cfg)
	if _, err := decoder.DecodeFile("out"); !errors.Is(err, envelope.ErrInconsistentLength) {
		t.Errorf("Expected ErrInconsistentLength for a different cipher, got %v", err)
	}
}

func TestMaxFileSize(t *testing.T) {
	paramSets := []crypt.Params{
		{},
		{Method: crypt.AES128, Mode: crypt.CBC, Password: "pw"},
		{Method: crypt.TripleDES, Mode: crypt.ECB, Password: "pw"},
		{Method: crypt.AES256, Mode: crypt.OFB, Password: "pw"},
	}
	for _, c := range codec.All() {
		for _, params := range paramSets {
			c, params := c, params
			t.Run(fmt.Sprintf("%s-%s", c.Method(), params), func(t *testing.T) {
				t.Parallel()
				carrier := generateCarrier(t, 40, 30)
				maxSize := MaxFileSize(c, carrier.Capacity(), len(".dat"), params)
				if maxSize <= 0 {
					t.Fatalf("Expected room for a file, got %d", maxSize)
				}

				stream, _ := payload.Build(test.GenerateRandomBytes(maxSize), ".dat")
				wrapped, err := envelope.Wrap(stream, params)
				if err != nil {
					t.Fatalf("Error wrapping: %s", err)
				}
				if err = c.Hide(bytes.Clone(carrier.Pixels), wrapped); err != nil {
					t.Errorf("A file of MaxFileSize bytes should fit: %s", err)
				}

				stream, _ = payload.Build(test.GenerateRandomBytes(maxSize+1), ".dat")
				wrapped, _ = envelope.Wrap(stream, params)
				if err = c.Hide(bytes.Clone(carrier.Pixels), wrapped); !errors.Is(err, codec.ErrInsufficientCapacity) {
					t.Errorf("A file one byte over MaxFileSize should not fit, got %v", err)
				}
			})
		}
	}

	if size := MaxFileSize(codec.NewLSB1(), 16, 4, crypt.Params{}); size != 0 {
		t.Errorf("A tiny carrier should hold nothing, got %d", size)
	}
}

func TestAnalyzeAndRecover(t *testing.T) {
	cfg := config.StegoConfig{Method: "LSBI", Encryption: config.EncryptionConfig{Method: "aes256", Mode: "ofb",
		Password: "pw", KDF: "pbkdf2"}}
	carrier := generateCarrier(t, 64, 64)
	encoder, _ := NewEncoder(carrier, cfg)
	if err := encoder.EncodeFile(inputFile("notes.md", []byte("# hidden notes"))); err != nil {
		t.Fatalf("Error encoding: %s", err)
	}

	result, stats, err := Analyze(carrier)
	if err != nil {
		t.Fatalf("Error analyzing: %s", err)
	}
	if result.Method != codec.LSBI || result.Format != analysis.FormatEncrypted || stats.Attempts != 3 {
		t.Errorf("Expected encrypted LSBI payload found on the third attempt, got %s %s after %d", result.Method,
			result.Format, stats.Attempts)
	}

	if _, err = RecoverFile(result, "out", crypt.Params{}); !errors.Is(err, analysis.ErrEncrypted) {
		t.Errorf("Expected ErrEncrypted without a password, got %v", err)
	}
	params, _ := cfg.Params()
	file, err := RecoverFile(result, "out", params)
	if err != nil {
		t.Fatalf("Error recovering: %s", err)
	}
	if file.Name != "out.md" || string(file.Content) != "# hidden notes" {
		t.Errorf("Unexpected recovered file %s: %q", file.Name, file.Content)
	}
}
