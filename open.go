package tcplay

import (
	"os"
)

// Open runs the full header-slot policy of §4.6: it reads the primary
// header (from cfg's system-encryption disk and offset when
// applicable, otherwise from cfg.Device at offset 0) and attempts
// Recognize against it; if that fails and cfg is not a
// system-encryption config, it falls back to the hidden-volume header
// at HeaderOffsetHidden on cfg.Device. The first slot that recognizes
// wins; if neither does, Open returns an AuthOrFormatError.
func Open(cfg *Config, passphrase []byte) (*Descriptor, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	primaryDevice, primaryOffset := cfg.PrimaryHeaderLocation()
	primaryRaw, err := readHeaderBlock(primaryDevice, primaryOffset)
	if err != nil {
		return nil, err
	}
	defer mustFree(primaryRaw)

	if desc, err := Recognize(passphrase, primaryRaw.Bytes(), cfg.Device); err == nil {
		return desc, nil
	}

	if cfg.IsSystemEncryption() {
		return nil, &AuthOrFormatError{}
	}

	hiddenRaw, err := readHeaderBlock(cfg.Device, HeaderOffsetHidden)
	if err != nil {
		return nil, err
	}
	defer mustFree(hiddenRaw)

	return Recognize(passphrase, hiddenRaw.Bytes(), cfg.Device)
}

// readHeaderBlock reads exactly HeaderSize bytes from device at offset
// into a page-locked Buffer. The caller must Free (or mustFree) it.
func readHeaderBlock(device string, offset int64) (*Buffer, error) {
	f, err := os.Open(device)
	if err != nil {
		return nil, NewIOError("open", device, err)
	}
	defer f.Close()

	buf, err := Alloc(HeaderSize)
	if err != nil {
		return nil, err
	}

	n, err := f.ReadAt(buf.Bytes(), offset)
	if err != nil && n != HeaderSize {
		mustFree(buf)
		return nil, NewIOError("read", device, err)
	}

	return buf, nil
}
