package crypt

// Params selects how a payload is protected. Zero Params mean no encryption
type Params struct {
	Method   Method
	Mode     Mode
	Password string
	KDF      KDF
}

// NewParams parses the textual options accepted on the command line and the API
func NewParams(method, mode, password, kdf string) (Params, error) {
	p := Params{Password: password}
	var err error
	if method != "" {
		if p.Method, err = ParseMethod(method); err != nil {
			return Params{}, err
		}
	}
	if mode != "" {
		if p.Mode, err = ParseMode(mode); err != nil {
			return Params{}, err
		}
	}
	if p.KDF, err = ParseKDF(kdf); err != nil {
		return Params{}, err
	}
	return p.Normalize(), nil
}

// Enabled reports whether a payload is encrypted with these params. Method, mode and password must all be present,
// anything less passes the payload through untouched
func (p Params) Enabled() bool {
	return p.Method != "" && p.Mode != "" && p.Password != ""
}

// Normalize fills defaults: a password on its own selects aes128 in cbc mode, and the KDF defaults to openssl
func (p Params) Normalize() Params {
	if p.Password != "" {
		if p.Method == "" {
			p.Method = AES128
		}
		if p.Mode == "" {
			p.Mode = CBC
		}
	}
	if p.KDF == "" {
		p.KDF = DefaultKDF
	}
	return p
}

// Validate checks an enabled Params against the supported ciphers and KDFs
func (p Params) Validate() error {
	if !p.Enabled() {
		return nil
	}
	if _, err := IVLength(p.Method, p.Mode); err != nil {
		return err
	}
	_, err := ParseKDF(string(p.KDF))
	return err
}

// Key derives the cipher key for salt
func (p Params) Key(salt []byte) ([]byte, error) {
	keyLen, err := KeyLength(p.Method)
	if err != nil {
		return nil, err
	}
	return DeriveKey(p.KDF, p.Password, salt, keyLen)
}

func (p Params) String() string {
	if !p.Enabled() {
		return "none"
	}
	return string(p.Method) + "-" + string(p.Mode) + "/" + string(p.KDF)
}
