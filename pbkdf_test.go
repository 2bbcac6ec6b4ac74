package tcplay

import (
	"bytes"
	"testing"
)

func TestDeriveKey_LengthAndDeterminism(t *testing.T) {
	for _, prf := range PRFAlgos {
		buf1, err := DeriveKey(prf.Name, []byte("passphrase"), make([]byte, SaltSize), 1000, MaxKeySize)
		if err != nil {
			t.Fatalf("DeriveKey(%s): %v", prf.Name, err)
		}
		key1 := append([]byte(nil), buf1.Bytes()...)
		mustFree(buf1)

		if len(key1) != MaxKeySize {
			t.Fatalf("DeriveKey(%s) returned %d bytes, want %d", prf.Name, len(key1), MaxKeySize)
		}

		buf2, err := DeriveKey(prf.Name, []byte("passphrase"), make([]byte, SaltSize), 1000, MaxKeySize)
		if err != nil {
			t.Fatalf("DeriveKey(%s) second call: %v", prf.Name, err)
		}
		key2 := buf2.Bytes()
		if !bytes.Equal(key1, key2) {
			t.Errorf("DeriveKey(%s) is not deterministic", prf.Name)
		}
		mustFree(buf2)
	}
}

func TestDeriveKey_CaseInsensitiveName(t *testing.T) {
	salt := make([]byte, SaltSize)
	lowerBuf, err := DeriveKey("sha512", []byte("pw"), salt, 1000, 32)
	if err != nil {
		t.Fatalf("DeriveKey(lower): %v", err)
	}
	defer mustFree(lowerBuf)

	mixedBuf, err := DeriveKey("ShA512", []byte("pw"), salt, 1000, 32)
	if err != nil {
		t.Fatalf("DeriveKey(mixed case): %v", err)
	}
	defer mustFree(mixedBuf)

	if !bytes.Equal(lowerBuf.Bytes(), mixedBuf.Bytes()) {
		t.Error("DeriveKey is case-sensitive to the hash name")
	}
}

func TestDeriveKey_DifferentPasswordsDiffer(t *testing.T) {
	salt := make([]byte, SaltSize)
	aBuf, err := DeriveKey("sha512", []byte("pw1"), salt, 1000, 32)
	if err != nil {
		t.Fatalf("DeriveKey: %v", err)
	}
	defer mustFree(aBuf)

	bBuf, err := DeriveKey("sha512", []byte("pw2"), salt, 1000, 32)
	if err != nil {
		t.Fatalf("DeriveKey: %v", err)
	}
	defer mustFree(bBuf)

	if bytes.Equal(aBuf.Bytes(), bBuf.Bytes()) {
		t.Error("distinct passwords produced identical derived keys")
	}
}

func TestDeriveKey_UnknownHash(t *testing.T) {
	_, err := DeriveKey("md5", []byte("pw"), make([]byte, SaltSize), 1000, 32)
	if err == nil {
		t.Fatal("expected error for unsupported hash name")
	}
	if !IsUnsupportedError(err) {
		t.Errorf("DeriveKey returned %v, want an UnsupportedError", err)
	}
}
