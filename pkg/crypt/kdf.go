package crypt

import (
	"crypto/sha256"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/argon2"
	"golang.org/x/crypto/pbkdf2"
)

type KDF string

const (
	// KDFOpenSSL is EVP_BytesToKey with SHA-256 and a single iteration, which is what images produced by the
	// OpenSSL based tool were keyed with
	KDFOpenSSL KDF = "openssl"
	KDFPBKDF2  KDF = "pbkdf2"
	KDFArgon2  KDF = "argon2"

	DefaultKDF = KDFOpenSSL

	// SaltLength is the size of the salt stored in every envelope
	SaltLength = 8

	pbkdf2Iterations = 10000
	argon2Time       = 1
	argon2MemoryKiB  = 64 * 1024
	argon2Threads    = 4
)

var (
	ErrUnsupportedKDF = errors.New("unsupported key derivation function")
	ErrEmptyPassword  = errors.New("password is empty")
)

// ParseKDF matches a KDF name case-insensitively, the empty string selecting DefaultKDF
func ParseKDF(s string) (KDF, error) {
	if s == "" {
		return DefaultKDF, nil
	}
	for _, k := range []KDF{KDFOpenSSL, KDFPBKDF2, KDFArgon2} {
		if strings.EqualFold(s, string(k)) {
			return k, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnsupportedKDF, s)
}

// DeriveKey stretches password and salt into a key of keyLen bytes
func DeriveKey(kdf KDF, password string, salt []byte, keyLen int) ([]byte, error) {
	if password == "" {
		return nil, ErrEmptyPassword
	}
	switch kdf {
	case KDFOpenSSL, "":
		return bytesToKey([]byte(password), salt, keyLen), nil
	case KDFPBKDF2:
		return pbkdf2.Key([]byte(password), salt, pbkdf2Iterations, keyLen, sha256.New), nil
	case KDFArgon2:
		return argon2.IDKey([]byte(password), salt, argon2Time, argon2MemoryKiB, argon2Threads, uint32(keyLen)), nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnsupportedKDF, kdf)
}

// bytesToKey follows OpenSSL's EVP_BytesToKey with one iteration: D_i = H(D_{i-1} || password || salt), concatenated
// until keyLen bytes are available. The IV half of the OpenSSL output is not used, IVs are random and stored
func bytesToKey(password, salt []byte, keyLen int) []byte {
	key := make([]byte, 0, keyLen+sha256.Size)
	var prev []byte
	for len(key) < keyLen {
		h := sha256.New()
		h.Write(prev)
		h.Write(password)
		h.Write(salt)
		prev = h.Sum(nil)
		key = append(key, prev...)
	}
	return key[:keyLen]
}
