package tcplay

import (
	"crypto/sha512"
	"hash"
	"strings"

	"github.com/jzelinskie/whirlpool"
	"golang.org/x/crypto/pbkdf2"
	"golang.org/x/crypto/ripemd160"
)

// DeriveKey runs PBKDF2-HMAC with the named hash over password and
// salt for iterations rounds, producing keyLen bytes in a page-locked
// Buffer. The hash name is matched case-insensitively against
// "RIPEMD160", "SHA512", and "Whirlpool", mirroring the reference's
// pbkdf_prf_algos table; any other name is an UnsupportedError. The
// caller must Free (or mustFree) the returned Buffer.
func DeriveKey(hashName string, password, salt []byte, iterations, keyLen int) (*Buffer, error) {
	newHash, err := hashFuncByName(hashName)
	if err != nil {
		return nil, err
	}

	buf, err := Alloc(keyLen)
	if err != nil {
		return nil, err
	}

	derived := pbkdf2.Key(password, salt, iterations, keyLen, newHash)
	copy(buf.Bytes(), derived)
	for i := range derived {
		derived[i] = 0
	}

	return buf, nil
}

func hashFuncByName(name string) (func() hash.Hash, error) {
	switch strings.ToLower(name) {
	case "ripemd160":
		return ripemd160.New, nil
	case "sha512":
		return sha512.New, nil
	case "whirlpool":
		return whirlpool.New, nil
	default:
		return nil, NewUnsupportedError("hash", name, "no PBKDF2 PRF registered for this hash")
	}
}
