package tcplay

import (
	"encoding/hex"

	"github.com/google/uuid"
)

// Descriptor is the populated result of a successful Recognize call:
// everything the mapping driver needs to install a device-mapper crypt
// target, plus the header and algo entries the recognition loop
// accepted.
type Descriptor struct {
	Device string
	Cipher CipherAlgo
	PRF    PRFAlgo
	Header *Header

	Start  uint64  // mapping start sector, always 0
	Size   uint64  // sz_mk_scope / sec_sz
	Skip   uint64  // off_mk_scope / sec_sz (IV sector offset)
	Offset uint64  // off_mk_scope / sec_sz (data sector offset)
	Key    *Buffer // lowercase hex of the first cipher.KeyLen bytes of keys (2*cipher.KeyLen characters)

	UUID uuid.UUID
}

// BuildDescriptor derives the mapping parameters from an accepted
// header and allocates a fresh mapping UUID. It copies the hex-encoded
// key material it needs into its own Buffer and frees h.Keys, since
// nothing past this point needs the raw key bytes.
func BuildDescriptor(device string, cipher CipherAlgo, prf PRFAlgo, h *Header) (*Descriptor, error) {
	keyHex, err := Alloc(2 * cipher.KeyLen)
	if err != nil {
		return nil, err
	}
	hex.Encode(keyHex.Bytes(), h.Keys.Bytes()[:cipher.KeyLen])

	mustFree(h.Keys)
	h.Keys = nil

	d := &Descriptor{
		Device: device,
		Cipher: cipher,
		PRF:    prf,
		Header: h,
		Start:  0,
		Size:   h.SzMkScope / uint64(h.SecSz),
		Skip:   h.OffMkScope / uint64(h.SecSz),
		Offset: h.OffMkScope / uint64(h.SecSz),
		Key:    keyHex,
		UUID:   uuid.New(),
	}
	return d, nil
}

// Free releases the Buffers Descriptor holds: its own hex-encoded key
// and, if still present, the originating header's key material.
func (d *Descriptor) Free() error {
	if d == nil {
		return nil
	}
	if err := d.Header.Free(); err != nil {
		return err
	}
	if d.Key != nil {
		return d.Key.Free()
	}
	return nil
}
