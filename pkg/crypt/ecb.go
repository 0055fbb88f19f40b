package crypt

import "crypto/cipher"

// crypto/cipher deliberately ships no ECB mode. Images produced with -m ecb still have to be readable, so the
// mode is implemented here as a cipher.BlockMode that encrypts every block independently

type ecb struct {
	b       cipher.Block
	encrypt bool
}

func newECBEncrypter(b cipher.Block) cipher.BlockMode {
	return &ecb{b: b, encrypt: true}
}

func newECBDecrypter(b cipher.Block) cipher.BlockMode {
	return &ecb{b: b}
}

func (e *ecb) BlockSize() int {
	return e.b.BlockSize()
}

func (e *ecb) CryptBlocks(dst, src []byte) {
	bs := e.b.BlockSize()
	if len(src)%bs != 0 {
		panic("crypt: ecb input not full blocks")
	}
	if len(dst) < len(src) {
		panic("crypt: ecb output smaller than input")
	}
	for len(src) > 0 {
		if e.encrypt {
			e.b.Encrypt(dst[:bs], src[:bs])
		} else {
			e.b.Decrypt(dst[:bs], src[:bs])
		}
		src = src[bs:]
		dst = dst[bs:]
	}
}
