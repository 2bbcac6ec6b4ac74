package tcplay

import (
	"bytes"

	"golang.org/x/sys/unix"
)

// safeMemSig is the guard signature bracketing every secure
// allocation, written both before and after the user-visible payload.
// Matches the reference's "SAFEMEM\0" literal exactly (8 bytes).
var safeMemSig = [8]byte{'S', 'A', 'F', 'E', 'M', 'E', 'M', 0}

// Buffer is a guarded, page-locked allocation. Every passphrase,
// keyfile, key-pool, derived-key, raw-header, decrypted-header,
// mapping-parameter, and descriptor buffer in this package is backed
// by one. The zero Buffer is not valid; obtain one via Alloc.
type Buffer struct {
	raw     []byte // header + payload + tail, as returned by mmap/alloc
	locked  bool
	payload []byte // raw[len(sig):len(raw)-len(sig)]
}

// Alloc returns a Buffer of at least n zeroed, page-locked bytes.
// Alloc never returns a partially initialized buffer: on any failure
// it releases what it acquired and returns an error.
func Alloc(n int) (*Buffer, error) {
	allocSize := n + len(safeMemSig)*2
	raw := make([]byte, allocSize)

	if err := unix.Mlock(raw); err != nil {
		return nil, NewOutOfMemoryError("mlock", n, err)
	}

	copy(raw[0:len(safeMemSig)], safeMemSig[:])
	copy(raw[allocSize-len(safeMemSig):], safeMemSig[:])

	b := &Buffer{
		raw:     raw,
		locked:  true,
		payload: raw[len(safeMemSig) : allocSize-len(safeMemSig)],
	}
	return b, nil
}

// Bytes returns the user-visible payload. The returned slice aliases
// the Buffer's backing array; it becomes invalid after Free.
func (b *Buffer) Bytes() []byte {
	return b.payload
}

// Free verifies the guard signatures, zeroes the entire allocation,
// unlocks it, and releases it. A guard mismatch is a fatal internal
// invariant violation (an underflow/overflow bug in some caller) and
// is reported as a CorruptionError rather than silently ignored; the
// caller of Free is expected to treat that as fatal.
func (b *Buffer) Free() error {
	if b == nil || b.raw == nil {
		return nil
	}

	allocSize := len(b.raw)
	head := b.raw[0:len(safeMemSig)]
	tail := b.raw[allocSize-len(safeMemSig):]

	headOK := bytes.Equal(head, safeMemSig[:])
	tailOK := bytes.Equal(tail, safeMemSig[:])

	for i := range b.raw {
		b.raw[i] = 0
	}

	if b.locked {
		_ = unix.Munlock(b.raw)
		b.locked = false
	}

	raw := b.raw
	b.raw = nil
	b.payload = nil

	if !headOK || !tailOK {
		detail := "header"
		switch {
		case !headOK && !tailOK:
			detail = "header and tail"
		case !tailOK:
			detail = "tail"
		}
		_ = raw // already zeroed and unlocked; nothing left to release
		return &CorruptionError{Detail: detail + " guard signature mismatch"}
	}

	return nil
}

// MustFree releases b and panics on a guard signature mismatch. A
// corrupted guard is a fatal internal invariant violation (§7); callers
// at a process's actual entry points use this instead of discarding
// Free's error.
func (b *Buffer) MustFree() {
	if err := b.Free(); err != nil {
		panic(err)
	}
}
