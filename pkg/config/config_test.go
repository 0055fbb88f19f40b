package config

import (
	"errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"os"
	"path/filepath"
	"stegobmp/pkg/codec"
	"stegobmp/pkg/crypt"
	"testing"
)

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "stegobmp.yaml")
	content := `
defaults:
  method: LSBI
  lsbi_convention: legacy
  encryption:
    method: aes256
    mode: cfb
    kdf: argon2
server:
  port: 9000
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "LSBI", cfg.Defaults.Method)
	assert.Equal(t, "legacy", cfg.Defaults.LSBIConvention)
	assert.Equal(t, "aes256", cfg.Defaults.Encryption.Method)
	assert.Equal(t, "argon2", cfg.Defaults.Encryption.KDF)
	assert.Equal(t, 9000, cfg.Server.Port)
	assert.Equal(t, DefaultLogLevel, cfg.Log.Level)
}

func TestLoadMissing(t *testing.T) {
	if _, err := os.Stat(DefaultPath); err == nil {
		t.Skip("a config file exists in the working directory")
	}
	cfg, err := Load(DefaultPath)
	require.NoError(t, err)
	assert.Equal(t, string(DefaultMethod), cfg.Defaults.Method)
	assert.Equal(t, DefaultServerPort, cfg.Server.Port)

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestLoadInvalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("defaults: [not, a, map"), 0o600))
	_, err := Load(path)
	assert.Error(t, err)
}

func TestStegoConfig(t *testing.T) {
	cfg := StegoConfig{Method: "lsbi", LSBIConvention: "legacy"}
	c, err := cfg.Codec()
	require.NoError(t, err)
	lsbi, ok := c.(*codec.LSBICodec)
	require.True(t, ok)
	assert.Equal(t, codec.ConventionLegacy, lsbi.Convention())

	_, err = StegoConfig{Method: "LSB7"}.Codec()
	assert.True(t, errors.Is(err, codec.ErrUnknownMethod))

	params, err := StegoConfig{Encryption: EncryptionConfig{Password: "pw"}}.Params()
	require.NoError(t, err)
	assert.True(t, params.Enabled())
	assert.Equal(t, crypt.AES128, params.Method)

	_, err = StegoConfig{Encryption: EncryptionConfig{Method: "des", Password: "pw"}}.Params()
	assert.True(t, errors.Is(err, crypt.ErrUnsupportedCipher))
}

func TestMerge(t *testing.T) {
	defaults := StegoConfig{Method: "LSB4", Encryption: EncryptionConfig{Method: "3des", Mode: "ofb"}}
	merged := StegoConfig{Encryption: EncryptionConfig{Mode: "cbc", Password: "pw"}}.Merge(defaults)
	assert.Equal(t, "LSB4", merged.Method)
	assert.Equal(t, "3des", merged.Encryption.Method)
	assert.Equal(t, "cbc", merged.Encryption.Mode)
	assert.Equal(t, "pw", merged.Encryption.Password)
}
