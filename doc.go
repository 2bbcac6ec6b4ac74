// Package tcplay unlocks TrueCrypt-format encrypted volumes: it derives
// a candidate key from a passphrase (optionally mixed with keyfiles),
// discovers the PBKDF2 PRF and AES-XTS cipher that protects a given
// volume header by trial decryption, and hands the result to the kernel
// device-mapper to expose the decrypted volume as a new block device.
//
// # Overview
//
// The package does not create, resize, or modify volumes, and it does
// not support TrueCrypt header versions 1-2, cascaded ciphers, or LRW
// mode. Its job is strictly unlocking: recognize which of a small,
// fixed set of (PRF, cipher) combinations a header was encrypted under,
// and build a device-mapper crypt target from the result.
//
// # Recognition
//
// TrueCrypt volumes carry no metadata naming their key derivation or
// cipher. Recognize tries every (PRF, cipher) pair in a fixed order
// against the header ciphertext; the first pair whose decrypted header
// carries the "TRUE" signature and a matching keys CRC32 wins:
//
//	pass, _ := ReadPassphrase("Passphrase: ")
//	defer pass.MustFree()
//	desc, err := Recognize(TrimPassphrase(pass.Bytes()), rawHeader, "/dev/sdb1")
//	if err != nil {
//	    // Incorrect password or not a TrueCrypt volume.
//	}
//
// # Secret hygiene
//
// Every buffer that transiently holds a passphrase, keyfile content,
// derived key, or decrypted header is allocated through securemem: page
// locked, zeroed on allocation and on free, bracketed by a guard
// signature checked on every free.
//
// # On-disk format
//
// A volume carries up to two 512-byte encrypted header blocks: a
// primary header at a fixed offset and, optionally, a hidden-volume
// header at a second fixed offset. Each block is 64 bytes of plaintext
// salt followed by 448 bytes of AES-XTS ciphertext (IV all zero). See
// Header and DecryptHeader for the field layout.
package tcplay
