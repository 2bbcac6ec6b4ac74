package tcplay

import (
	"bytes"
	"crypto/aes"
	"encoding/binary"
	"hash/crc32"

	"golang.org/x/crypto/xts"
)

// Signature is the literal 4-byte ASCII signature required of every
// accepted TrueCrypt header.
var Signature = [4]byte{'T', 'R', 'U', 'E'}

// Header is the decrypted, host-endian form of a 512-byte on-disk
// TrueCrypt volume header. Only the fields this implementation
// consumes are modeled; everything else in the 512-byte block is
// reserved padding.
type Header struct {
	Signature  [4]byte
	TCVer      uint16 // header version, big-endian on disk
	TCMinVer   uint16 // minimum-reader version, little-endian on disk
	CRCKeys    uint32 // CRC32 over Keys.Bytes()[0:256]
	VolCtime   uint64
	HdrCtime   uint64
	SzHidvol   uint64
	SzVol      uint64
	OffMkScope uint64
	SzMkScope  uint64
	Flags      uint32
	SecSz      uint32
	CRCDhdr    uint32

	// Keys holds the 256 bytes of master-key material in a page-locked,
	// zero-on-free Buffer rather than a plain array. The caller must
	// Free (or mustFree) it once BuildDescriptor has copied out what it
	// needs.
	Keys *Buffer
}

// Free releases h's key-material Buffer. Safe to call on a nil Header
// or one whose Keys has already been freed.
func (h *Header) Free() error {
	if h == nil || h.Keys == nil {
		return nil
	}
	return h.Keys.Free()
}

// headerOnDisk mirrors the big-endian on-disk layout byte-for-byte so
// it can be read with a single encoding/binary.Read; TCMinVer is
// re-swapped from little-endian immediately after.
type headerOnDisk struct {
	Signature  [4]byte
	TCVer      uint16
	TCMinVer   uint16
	CRCKeys    uint32
	VolCtime   uint64
	HdrCtime   uint64
	SzHidvol   uint64
	SzVol      uint64
	OffMkScope uint64
	SzMkScope  uint64
	Flags      uint32
	SecSz      uint32
	_          [120]byte // reserved
	CRCDhdr    uint32
	Keys       [256]byte
}

// DecryptHeader decrypts a 512-byte raw encrypted header block
// (64 bytes of plaintext salt followed by 448 bytes of ciphertext)
// under the given cipher and key, using an all-zero IV, then
// byte-swaps the fixed-layout fields from their on-disk endianness
// (big-endian throughout except TCMinVer, which is little-endian) to
// host order. It does not validate the result; call VerifyHeader on
// the returned Header.
//
// Matching the reference, the full 512-byte block is decrypted rather
// than only the 448-byte ciphertext suffix; the leading salt bytes
// decrypt to noise that the Header layout never inspects, and both
// choices reach the same acceptance verdict.
func DecryptHeader(raw []byte, cipher CipherAlgo, key []byte) (*Header, error) {
	if err := ValidateRawHeader(raw); err != nil {
		return nil, err
	}
	if len(key) != cipher.KeyLen {
		return nil, NewUnsupportedError("cipher", cipher.Name, "key length mismatch")
	}

	xtsCipher, err := xts.NewCipher(aes.NewCipher, key)
	if err != nil {
		return nil, NewUnsupportedError("cipher", cipher.Name, err.Error())
	}

	plainBuf, err := Alloc(HeaderSize)
	if err != nil {
		return nil, err
	}
	defer mustFree(plainBuf)

	var sector uint64 // IV is all-zero: sector number 0 under xts.NewCipher's tweak
	xtsCipher.Decrypt(plainBuf.Bytes(), raw, sector)

	var disk headerOnDisk
	if err := binary.Read(bytes.NewReader(plainBuf.Bytes()[SaltSize:]), binary.BigEndian, &disk); err != nil {
		return nil, NewIOError("decode", "", err)
	}

	keysBuf, err := Alloc(len(disk.Keys))
	if err != nil {
		return nil, err
	}
	copy(keysBuf.Bytes(), disk.Keys[:])
	for i := range disk.Keys {
		disk.Keys[i] = 0
	}

	h := &Header{
		Signature:  disk.Signature,
		TCVer:      disk.TCVer,
		TCMinVer:   swapUint16(disk.TCMinVer), // disk field was big-endian-read but is actually little-endian
		CRCKeys:    disk.CRCKeys,
		VolCtime:   disk.VolCtime,
		HdrCtime:   disk.HdrCtime,
		SzHidvol:   disk.SzHidvol,
		SzVol:      disk.SzVol,
		OffMkScope: disk.OffMkScope,
		SzMkScope:  disk.SzMkScope,
		Flags:      disk.Flags,
		SecSz:      disk.SecSz,
		CRCDhdr:    disk.CRCDhdr,
		Keys:       keysBuf,
	}
	return h, nil
}

// swapUint16 reverses the byte order of a 16-bit value read as
// big-endian, recovering the little-endian value that was actually on
// disk for TCMinVer.
func swapUint16(v uint16) uint16 {
	return v<<8 | v>>8
}

// VerifyHeader reports whether h is a structurally valid, accepted
// TrueCrypt header: signature "TRUE", CRC32 over Keys[0:256] matching
// CRCKeys, and TCVer in {3, 4}. Versions 1 and 2 are explicitly
// rejected rather than merely falling through. On acceptance, SecSz is
// forced to 512 regardless of its on-disk value.
func VerifyHeader(h *Header) bool {
	if h.Signature != Signature {
		return false
	}

	if crc32Checksum(h.Keys.Bytes()) != h.CRCKeys {
		return false
	}

	switch h.TCVer {
	case 1, 2:
		return false
	case 3, 4:
		h.SecSz = 512
		return true
	default:
		return false
	}
}

// crc32Checksum computes the standard (finalized) IEEE CRC32 used for
// the header's embedded key-material check, distinct from the raw
// intermediate state foldKeyfile uses for keyfile mixing.
func crc32Checksum(data []byte) uint32 {
	return crc32.ChecksumIEEE(data)
}
