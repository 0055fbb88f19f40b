// Package crypt wraps the block ciphers, chaining modes and key derivation functions that can protect a hidden
// payload. Methods and modes mirror the OpenSSL names used by the original command line: aes128, aes192, aes256
// and 3des in ecb, cbc, cfb or ofb.
package crypt

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/des"
	"errors"
	"fmt"
	"strings"
)

type Method string

type Mode string

const (
	AES128    Method = "aes128"
	AES192    Method = "aes192"
	AES256    Method = "aes256"
	TripleDES Method = "3des"

	ECB Mode = "ecb"
	CBC Mode = "cbc"
	CFB Mode = "cfb"
	OFB Mode = "ofb"

	// MaxIVLength bounds the IV stored next to the ciphertext
	MaxIVLength = aes.BlockSize
)

var (
	ErrUnsupportedCipher = errors.New("unsupported cipher method or mode")
	ErrBadPadding        = errors.New("invalid padding")
	ErrBlockAlignment    = errors.New("ciphertext is not a multiple of the block size")
	ErrInvalidIV         = errors.New("iv length does not match the cipher")
	ErrInvalidKey        = errors.New("key length does not match the cipher")

	methods = []Method{AES128, AES192, AES256, TripleDES}
	modes   = []Mode{ECB, CBC, CFB, OFB}
)

// Methods returns every supported cipher method
func Methods() []Method {
	return append([]Method(nil), methods...)
}

// Modes returns every supported chaining mode
func Modes() []Mode {
	return append([]Mode(nil), modes...)
}

// ParseMethod matches a method name case-insensitively
func ParseMethod(s string) (Method, error) {
	for _, m := range methods {
		if strings.EqualFold(s, string(m)) {
			return m, nil
		}
	}
	return "", fmt.Errorf("%w: method %q", ErrUnsupportedCipher, s)
}

// ParseMode matches a mode name case-insensitively
func ParseMode(s string) (Mode, error) {
	for _, m := range modes {
		if strings.EqualFold(s, string(m)) {
			return m, nil
		}
	}
	return "", fmt.Errorf("%w: mode %q", ErrUnsupportedCipher, s)
}

// KeyLength is the key size in bytes required by method
func KeyLength(method Method) (int, error) {
	switch method {
	case AES128:
		return 16, nil
	case AES192, TripleDES:
		return 24, nil
	case AES256:
		return 32, nil
	}
	return 0, fmt.Errorf("%w: method %q", ErrUnsupportedCipher, method)
}

func blockLength(method Method) (int, error) {
	switch method {
	case AES128, AES192, AES256:
		return aes.BlockSize, nil
	case TripleDES:
		return des.BlockSize, nil
	}
	return 0, fmt.Errorf("%w: method %q", ErrUnsupportedCipher, method)
}

// IVLength is the IV size the (method, mode) pair needs, 0 when the mode takes none
func IVLength(method Method, mode Mode) (int, error) {
	bl, err := blockLength(method)
	if err != nil {
		return 0, err
	}
	switch mode {
	case ECB:
		return 0, nil
	case CBC, CFB, OFB:
		return bl, nil
	}
	return 0, fmt.Errorf("%w: mode %q", ErrUnsupportedCipher, mode)
}

// BlockSize is the granularity of the ciphertext. The feedback modes behave as stream ciphers and report 1
func BlockSize(method Method, mode Mode) (int, error) {
	bl, err := blockLength(method)
	if err != nil {
		return 0, err
	}
	switch mode {
	case ECB, CBC:
		return bl, nil
	case CFB, OFB:
		return 1, nil
	}
	return 0, fmt.Errorf("%w: mode %q", ErrUnsupportedCipher, mode)
}

func newBlock(method Method, key []byte) (cipher.Block, error) {
	keyLen, err := KeyLength(method)
	if err != nil {
		return nil, err
	}
	if len(key) != keyLen {
		return nil, fmt.Errorf("%w: %s needs %d bytes, got %d", ErrInvalidKey, method, keyLen, len(key))
	}
	if method == TripleDES {
		return des.NewTripleDESCipher(key)
	}
	return aes.NewCipher(key)
}

func checkIV(method Method, mode Mode, iv []byte) error {
	ivLen, err := IVLength(method, mode)
	if err != nil {
		return err
	}
	if len(iv) != ivLen {
		return fmt.Errorf("%w: %s-%s needs %d bytes, got %d", ErrInvalidIV, method, mode, ivLen, len(iv))
	}
	return nil
}

// Encrypt encrypts plaintext. ECB and CBC pad with PKCS#7, so the ciphertext may be up to one block longer
func Encrypt(plaintext []byte, method Method, mode Mode, key, iv []byte) ([]byte, error) {
	block, err := newBlock(method, key)
	if err != nil {
		return nil, err
	}
	if err = checkIV(method, mode, iv); err != nil {
		return nil, err
	}

	switch mode {
	case ECB, CBC:
		padded := pad(plaintext, block.BlockSize())
		ciphertext := make([]byte, len(padded))
		var bm cipher.BlockMode
		if mode == ECB {
			bm = newECBEncrypter(block)
		} else {
			bm = cipher.NewCBCEncrypter(block, iv)
		}
		bm.CryptBlocks(ciphertext, padded)
		return ciphertext, nil
	case CFB, OFB:
		ciphertext := make([]byte, len(plaintext))
		var stream cipher.Stream
		if mode == CFB {
			stream = cipher.NewCFBEncrypter(block, iv)
		} else {
			stream = cipher.NewOFB(block, iv)
		}
		stream.XORKeyStream(ciphertext, plaintext)
		return ciphertext, nil
	}
	return nil, fmt.Errorf("%w: mode %q", ErrUnsupportedCipher, mode)
}

// Decrypt reverses Encrypt. Padding and alignment problems are reported as ErrBadPadding and ErrBlockAlignment
func Decrypt(ciphertext []byte, method Method, mode Mode, key, iv []byte) ([]byte, error) {
	block, err := newBlock(method, key)
	if err != nil {
		return nil, err
	}
	if err = checkIV(method, mode, iv); err != nil {
		return nil, err
	}

	switch mode {
	case ECB, CBC:
		if len(ciphertext) == 0 || len(ciphertext)%block.BlockSize() != 0 {
			return nil, fmt.Errorf("%w: %d bytes", ErrBlockAlignment, len(ciphertext))
		}
		plaintext := make([]byte, len(ciphertext))
		var bm cipher.BlockMode
		if mode == ECB {
			bm = newECBDecrypter(block)
		} else {
			bm = cipher.NewCBCDecrypter(block, iv)
		}
		bm.CryptBlocks(plaintext, ciphertext)
		return unpad(plaintext, block.BlockSize())
	case CFB, OFB:
		plaintext := make([]byte, len(ciphertext))
		var stream cipher.Stream
		if mode == CFB {
			stream = cipher.NewCFBDecrypter(block, iv)
		} else {
			stream = cipher.NewOFB(block, iv)
		}
		stream.XORKeyStream(plaintext, ciphertext)
		return plaintext, nil
	}
	return nil, fmt.Errorf("%w: mode %q", ErrUnsupportedCipher, mode)
}

func pad(data []byte, blockSize int) []byte {
	padLen := blockSize - len(data)%blockSize
	padded := make([]byte, len(data)+padLen)
	copy(padded, data)
	for i := len(data); i < len(padded); i++ {
		padded[i] = byte(padLen)
	}
	return padded
}

func unpad(data []byte, blockSize int) ([]byte, error) {
	padLen := int(data[len(data)-1])
	if padLen == 0 || padLen > blockSize || padLen > len(data) {
		return nil, ErrBadPadding
	}
	for _, b := range data[len(data)-padLen:] {
		if int(b) != padLen {
			return nil, ErrBadPadding
		}
	}
	return data[:len(data)-padLen], nil
}
