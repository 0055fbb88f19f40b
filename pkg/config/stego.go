package config

import (
	"stegobmp/pkg/codec"
	"stegobmp/pkg/crypt"
)

const (
	DefaultMethod     = codec.LSB1
	DefaultConvention = "adaptive"
)

type EncryptionConfig struct {
	Method   string `yaml:"method" json:"method,omitempty"`
	Mode     string `yaml:"mode" json:"mode,omitempty"`
	Password string `yaml:"password" json:"password,omitempty"`
	KDF      string `yaml:"kdf" json:"kdf,omitempty"`
}

// StegoConfig selects how a payload is hidden and protected
type StegoConfig struct {
	Method         string           `yaml:"method" json:"method,omitempty"`
	LSBIConvention string           `yaml:"lsbi_convention" json:"lsbi_convention,omitempty"`
	Encryption     EncryptionConfig `yaml:"encryption" json:"encryption,omitempty"`
}

func (c *StegoConfig) PopulateUnsetConfigVars() {
	if c.Method == "" {
		c.Method = string(DefaultMethod)
	}
	if c.LSBIConvention == "" {
		c.LSBIConvention = DefaultConvention
	}
	if c.Encryption.KDF == "" {
		c.Encryption.KDF = string(crypt.DefaultKDF)
	}
}

// Merge fills the unset fields of c with the ones of defaults
func (c StegoConfig) Merge(defaults StegoConfig) StegoConfig {
	if c.Method == "" {
		c.Method = defaults.Method
	}
	if c.LSBIConvention == "" {
		c.LSBIConvention = defaults.LSBIConvention
	}
	e, d := &c.Encryption, defaults.Encryption
	if e.Method == "" {
		e.Method = d.Method
	}
	if e.Mode == "" {
		e.Mode = d.Mode
	}
	if e.Password == "" {
		e.Password = d.Password
	}
	if e.KDF == "" {
		e.KDF = d.KDF
	}
	return c
}

// Codec returns the codec hiding with the configured method and LSBI convention
func (c StegoConfig) Codec() (codec.Codec, error) {
	method, err := codec.ParseMethod(c.Method)
	if err != nil {
		return nil, err
	}
	if method != codec.LSBI {
		return codec.ByMethod(method)
	}
	convention, err := codec.ParseConvention(c.LSBIConvention)
	if err != nil {
		return nil, err
	}
	return codec.NewLSBI(convention), nil
}

// Params returns the validated encryption parameters, disabled when no password is configured
func (c StegoConfig) Params() (crypt.Params, error) {
	e := c.Encryption
	params, err := crypt.NewParams(e.Method, e.Mode, e.Password, e.KDF)
	if err != nil {
		return crypt.Params{}, err
	}
	return params, params.Validate()
}
