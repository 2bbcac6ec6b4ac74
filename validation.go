package tcplay

import (
	"fmt"
	"os"
)

// Input validation helpers for the CLI and core entry points.

// ValidateDevicePath checks that a device/container path is non-empty
// and, when it exists on disk, is either a regular file (a volume
// container) or a block device.
func ValidateDevicePath(path string) error {
	if path == "" {
		return &ValidationError{Field: "device", Message: "device path cannot be empty"}
	}

	info, err := os.Stat(path)
	if err != nil {
		// The device may not exist yet in a test harness (e.g. a named
		// pipe or loop device set up by the caller); only reject paths
		// that exist and are clearly wrong.
		return nil
	}

	mode := info.Mode()
	if mode.IsRegular() || (mode&os.ModeDevice != 0 && mode&os.ModeCharDevice == 0) {
		return nil
	}

	return &ValidationError{
		Field:   "device",
		Value:   path,
		Message: fmt.Sprintf("%s is neither a regular file nor a block device", path),
	}
}

// ValidateKeyfilePaths checks that every keyfile path is non-empty and
// can be stat'ed; read permission is not checked.
func ValidateKeyfilePaths(paths []string) error {
	for i, p := range paths {
		if p == "" {
			return &ValidationError{
				Field:   "keyfile",
				Value:   i,
				Message: "keyfile path cannot be empty",
			}
		}
		if _, err := os.Stat(p); err != nil {
			return &ValidationError{
				Field:   "keyfile",
				Value:   p,
				Message: fmt.Sprintf("cannot stat keyfile: %v", err),
			}
		}
	}
	return nil
}

// ValidatePassphraseBuffer checks that a passphrase buffer is non-nil
// and at least MaxPassphraseSize bytes, as required by MixKeyfiles.
func ValidatePassphraseBuffer(pass []byte) error {
	if pass == nil {
		return ErrNilBuffer
	}
	if len(pass) < MaxPassphraseSize {
		return &ValidationError{
			Field:   "passphrase",
			Value:   len(pass),
			Message: fmt.Sprintf("buffer too small: got %d bytes, need at least %d bytes", len(pass), MaxPassphraseSize),
		}
	}
	return nil
}

// ValidateRawHeader checks that a raw encrypted header buffer is
// exactly HeaderSize bytes.
func ValidateRawHeader(raw []byte) error {
	if len(raw) != HeaderSize {
		return &ValidationError{
			Field:   "header",
			Value:   len(raw),
			Message: fmt.Sprintf("encrypted header must be %d bytes, got %d", HeaderSize, len(raw)),
		}
	}
	return nil
}
