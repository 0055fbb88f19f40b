package cli

import (
	"bytes"
	"context"
	"errors"
	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"stegobmp/internal/logging"
	"stegobmp/pkg/analysis"
	"stegobmp/pkg/codec"
	"stegobmp/test"
	"strings"
	"testing"
)

type cliRun struct {
	stdin  string
	stdout bytes.Buffer
}

func (r *cliRun) execute(args ...string) error {
	rootCmd, opts := newRootCommand()
	rootCmd.SetArgs(args)
	rootCmd.SetIn(strings.NewReader(r.stdin))
	rootCmd.SetOut(&r.stdout)
	rootCmd.SetErr(&bytes.Buffer{})
	err := rootCmd.ExecuteContext(context.Background())
	return errors.Join(err, opts.profiler.Stop())
}

func setupWorkspace(t *testing.T) (dir string, carrier string) {
	color.NoColor = true
	logging.SetOutput(&bytes.Buffer{})
	t.Cleanup(func() { logging.SetOutput(os.Stderr) })

	dir = t.TempDir()
	carrier = filepath.Join(dir, "carrier.bmp")
	require.NoError(t, os.WriteFile(carrier, test.GenerateBMP(80, 60), 0o644))
	return dir, carrier
}

func TestEmbedExtract(t *testing.T) {
	dir, carrier := setupWorkspace(t)
	secret := filepath.Join(dir, "secret.txt")
	content := test.GenerateAlphanumeric(500)
	require.NoError(t, os.WriteFile(secret, content, 0o644))

	for _, tc := range []struct {
		name  string
		flags []string
		stdin string
	}{
		{name: "lsb1", flags: []string{"--steg", "LSB1"}},
		{name: "lsb4 3des", flags: []string{"--steg", "LSB4", "-a", "3des", "-m", "ofb", "--pass", "pw"}},
		{name: "lsbi legacy", flags: []string{"--steg", "LSBI", "--lsbi-convention", "legacy"}},
		{name: "lsbi prompted password", flags: []string{"--steg", "lsbi", "--pass", "-"}, stdin: "from stdin\n"},
	} {
		t.Run(tc.name, func(t *testing.T) {
			stegoImage := filepath.Join(dir, strings.ReplaceAll(tc.name, " ", "_")+".bmp")
			outBase := filepath.Join(dir, strings.ReplaceAll(tc.name, " ", "_")+"-out")

			run := &cliRun{stdin: tc.stdin}
			args := append([]string{"embed", "--in", secret, "-p", carrier, "--out", stegoImage}, tc.flags...)
			require.NoError(t, run.execute(args...))
			assert.Contains(t, run.stdout.String(), "Generated "+stegoImage)

			run = &cliRun{stdin: tc.stdin}
			args = append([]string{"extract", "-p", stegoImage, "--out", outBase}, tc.flags...)
			require.NoError(t, run.execute(args...))

			recovered, err := os.ReadFile(outBase + ".txt")
			require.NoError(t, err)
			assert.Equal(t, content, recovered)
		})
	}

	original, err := os.ReadFile(carrier)
	require.NoError(t, err)
	assert.Equal(t, test.GenerateBMP(80, 60)[:54], original[:54], "carrier header should be left untouched")
}

func TestEmbedTooLarge(t *testing.T) {
	dir, carrier := setupWorkspace(t)
	big := filepath.Join(dir, "big.bin")
	require.NoError(t, os.WriteFile(big, test.GenerateRandomBytes(5000), 0o644))

	err := (&cliRun{}).execute("embed", "--in", big, "-p", carrier, "--out", filepath.Join(dir, "out.bmp"))
	assert.ErrorIs(t, err, codec.ErrInsufficientCapacity)
	assert.NoFileExists(t, filepath.Join(dir, "out.bmp"))
}

func TestAnalyze(t *testing.T) {
	dir, carrier := setupWorkspace(t)
	secret := filepath.Join(dir, "doc.md")
	require.NoError(t, os.WriteFile(secret, []byte("# found me"), 0o644))
	stegoImage := filepath.Join(dir, "stego.bmp")
	require.NoError(t, (&cliRun{}).execute("embed", "--in", secret, "-p", carrier, "--out", stegoImage,
		"--steg", "LSB4", "--pass", "pw"))

	run := &cliRun{}
	require.NoError(t, run.execute("analyze", "-p", stegoImage, "--out", filepath.Join(dir, "found")))
	assert.Contains(t, run.stdout.String(), "[+] encrypted payload hidden with LSB4")
	assert.Contains(t, run.stdout.String(), "supply --pass")
	assert.NoFileExists(t, filepath.Join(dir, "found.md"))

	run = &cliRun{}
	require.NoError(t, run.execute("analyze", "-p", stegoImage, "--out", filepath.Join(dir, "found"), "--pass", "pw"))
	recovered, err := os.ReadFile(filepath.Join(dir, "found.md"))
	require.NoError(t, err)
	assert.Equal(t, "# found me", string(recovered))

	run = &cliRun{}
	err = run.execute("analyze", "-p", carrier)
	assert.ErrorIs(t, err, analysis.ErrNoPayloadDetected)
	assert.Contains(t, run.stdout.String(), "[!] No payload detected")
}

func TestCapacity(t *testing.T) {
	_, carrier := setupWorkspace(t)
	run := &cliRun{}
	require.NoError(t, run.execute("capacity", "-p", carrier))

	out := run.stdout.String()
	assert.Contains(t, out, "80x60")
	// 14400 pixel bytes: LSB1 holds 1800 stream bytes, 9 of which frame a .txt file
	assert.Regexp(t, `LSB1\s+1\.8 kB\s+1,791`, out)
	assert.Contains(t, out, "LSBI (legacy)")
}

func TestConvert(t *testing.T) {
	dir, _ := setupWorkspace(t)
	source := filepath.Join(dir, "photo.png")
	f, err := os.Create(source)
	require.NoError(t, err)
	require.NoError(t, png.Encode(f, image.NewRGBA(image.Rect(0, 0, 7, 3))))
	require.NoError(t, f.Close())

	output := filepath.Join(dir, "photo.bmp")
	run := &cliRun{}
	require.NoError(t, run.execute("convert", "--image", source, "--out", output))
	assert.Contains(t, run.stdout.String(), "7x3")

	data, err := os.ReadFile(output)
	require.NoError(t, err)
	assert.Equal(t, "BM", string(data[:2]))
}

func TestConfigFileDefaults(t *testing.T) {
	dir, carrier := setupWorkspace(t)
	configPath := filepath.Join(dir, "stegobmp.yaml")
	require.NoError(t, os.WriteFile(configPath, []byte("defaults:\n  method: LSB4\nlog:\n  level: debug\n"), 0o644))
	secret := filepath.Join(dir, "a.txt")
	require.NoError(t, os.WriteFile(secret, []byte("configured"), 0o644))
	stegoImage := filepath.Join(dir, "stego.bmp")

	require.NoError(t, (&cliRun{}).execute("--config", configPath, "embed", "--in", secret, "-p", carrier,
		"--out", stegoImage))

	run := &cliRun{}
	require.NoError(t, run.execute("analyze", "-p", stegoImage))
	assert.Contains(t, run.stdout.String(), "hidden with LSB4")

	err := (&cliRun{}).execute("--config", filepath.Join(dir, "missing.yaml"), "capacity", "-p", carrier)
	assert.Error(t, err)
	err = (&cliRun{}).execute("--log-level", "loud", "capacity", "-p", carrier)
	assert.Error(t, err)
}

func TestProfilers(t *testing.T) {
	dir, carrier := setupWorkspace(t)
	cpuProfile := filepath.Join(dir, "cpu.prof")
	memDir := filepath.Join(dir, "mem")

	require.NoError(t, (&cliRun{}).execute("--cpu-profile", cpuProfile, "--mem-profile-dir", memDir,
		"capacity", "-p", carrier))
	assert.FileExists(t, cpuProfile)
	assert.FileExists(t, filepath.Join(memDir, "mem-0.mprof"))
}
