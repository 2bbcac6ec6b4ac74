package tcplay

import (
	"hash/crc32"
	"os"
)

// MixKeyfiles folds the content of each keyfile, in order, into a
// 64-byte key pool via a running CRC32 (Ethernet/IEEE polynomial, kept
// as the raw intermediate LFSR state rather than the finalized CRC32
// value), then adds the pool byte-wise into pass. pass must be at
// least MaxPassphraseSize bytes; bytes past the passphrase's current
// length are zeroed first, and the whole buffer participates in the
// fold regardless of where a NUL terminator would fall.
//
// An empty keyfilePaths list leaves pass untouched beyond that
// zero-padding. A read failure on any keyfile aborts and returns an
// IOError; nothing is mixed in from a keyfile that fails partway.
func MixKeyfiles(pass []byte, keyfilePaths []string) error {
	if err := ValidatePassphraseBuffer(pass); err != nil {
		return err
	}

	pl := clen(pass)
	for i := pl; i < MaxPassphraseSize; i++ {
		pass[i] = 0
	}

	if len(keyfilePaths) == 0 {
		return nil
	}

	kpool, err := Alloc(KeyPoolSize)
	if err != nil {
		return err
	}
	defer mustFree(kpool)
	pool := kpool.Bytes()

	for _, path := range keyfilePaths {
		data, err := readKeyfile(path)
		if err != nil {
			return err
		}
		foldKeyfile(pool, data.Bytes())
		mustFree(data)
	}

	for i := 0; i < KeyPoolSize; i++ {
		pass[i] += pool[i]
	}

	return nil
}

// foldKeyfile mixes one keyfile's content into pool using the
// reference's crc32_intermediate fold: the running CRC state (no final
// XOR, no output reflection) is split into its four big-endian bytes
// and added, modulo 256, into four consecutive pool slots, advancing
// and wrapping the pool index by 4 after every input byte.
func foldKeyfile(pool []byte, data []byte) {
	crc := uint32(0xFFFFFFFF)
	idx := 0

	for _, b := range data {
		crc = crc32Intermediate(crc, b)

		pool[idx] += byte(crc >> 24)
		pool[idx+1] += byte(crc >> 16)
		pool[idx+2] += byte(crc >> 8)
		pool[idx+3] += byte(crc)

		idx += 4
		if idx == KeyPoolSize {
			idx = 0
		}
	}
}

// crc32Intermediate advances the CRC32 (IEEE/Ethernet polynomial)
// state by one byte without applying the algorithm's final XOR or bit
// reflection of the output. Standard crc32.Update always returns the
// finalized value (state XOR 0xFFFFFFFF with reflected I/O already
// applied by the table), so the intermediate value is recovered by
// undoing that XOR around a single-byte update: this reproduces the
// reference's crc32_intermediate() helper, which exposes the raw LFSR
// register rather than a complete checksum.
func crc32Intermediate(crc uint32, b byte) uint32 {
	return crc32.Update(crc^0xFFFFFFFF, crc32.IEEETable, []byte{b}) ^ 0xFFFFFFFF
}

// clen returns the length of the NUL-terminated prefix of buf, or
// len(buf) if there is no NUL byte.
func clen(buf []byte) int {
	for i, b := range buf {
		if b == 0 {
			return i
		}
	}
	return len(buf)
}

// TrimPassphrase returns the effective passphrase within buf: its
// NUL-terminated prefix. This is the length the recognition loop and
// PBKDF2 must use whenever no keyfiles were mixed in, mirroring the
// reference main()'s `(nkeyfiles > 0) ? MAX_PASSSZ : strlen(pass)` —
// the full zero-padded buffer is only the effective passphrase once
// MixKeyfiles has folded keyfile material across every byte of it.
func TrimPassphrase(buf []byte) []byte {
	return buf[:clen(buf)]
}

// readKeyfile reads up to MaxKeyfileSize bytes of a keyfile's content
// into a secure buffer.
func readKeyfile(path string) (*Buffer, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, NewIOError("open", path, err)
	}
	defer f.Close()

	buf, err := Alloc(MaxKeyfileSize)
	if err != nil {
		return nil, err
	}

	n, err := f.Read(buf.Bytes())
	if err != nil && n == 0 {
		mustFree(buf)
		return nil, NewIOError("read", path, err)
	}

	return &Buffer{raw: buf.raw, locked: buf.locked, payload: buf.payload[:n]}, nil
}

// mustFree releases a secure buffer and panics on guard corruption,
// matching the reference's fatal abort on a SAFEMEM signature
// mismatch.
func mustFree(b *Buffer) {
	b.MustFree()
}
