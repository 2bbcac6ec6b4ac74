package tcplay

import (
	"os"
	"path/filepath"
	"testing"
)

// writeContainer builds a sparse file large enough to hold a header at
// the hidden-volume offset and writes raw at the given byte offset.
func writeContainer(t *testing.T, path string, offset int64, raw []byte) {
	t.Helper()

	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("os.Create: %v", err)
	}
	defer f.Close()

	if err := f.Truncate(HeaderOffsetHidden + HeaderSize); err != nil {
		t.Fatalf("Truncate: %v", err)
	}
	if _, err := f.WriteAt(raw, offset); err != nil {
		t.Fatalf("WriteAt: %v", err)
	}
}

func TestOpen_PrimaryHeaderAccepted(t *testing.T) {
	passphrase := []byte("open-primary-test")
	prf := PRFAlgos[0]
	cipher := CipherAlgos[0]
	raw := buildAcceptedHeader(t, passphrase, prf, cipher)

	dir := t.TempDir()
	dev := filepath.Join(dir, "volume.img")
	writeContainer(t, dev, HeaderOffsetPrimary, raw)

	cfg := &Config{Action: ActionInfo, Device: dev}
	desc, err := Open(cfg, passphrase)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer mustFree(desc.Key)

	if desc.Device != dev {
		t.Errorf("Device = %q, want %q", desc.Device, dev)
	}
}

func TestOpen_FallsBackToHiddenHeader(t *testing.T) {
	passphrase := []byte("open-hidden-test")
	prf := PRFAlgos[0]
	cipher := CipherAlgos[0]
	raw := buildAcceptedHeader(t, passphrase, prf, cipher)

	dir := t.TempDir()
	dev := filepath.Join(dir, "volume.img")
	writeContainer(t, dev, HeaderOffsetHidden, raw)

	cfg := &Config{Action: ActionInfo, Device: dev}
	desc, err := Open(cfg, passphrase)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer mustFree(desc.Key)

	if desc.Cipher.Name != cipher.Name {
		t.Errorf("Cipher = %s, want %s", desc.Cipher.Name, cipher.Name)
	}
}

func TestOpen_SystemEncryptionSkipsHiddenFallback(t *testing.T) {
	passphrase := []byte("open-system-test")
	raw := buildAcceptedHeader(t, passphrase, PRFAlgos[0], CipherAlgos[0])

	dir := t.TempDir()
	systemDev := filepath.Join(dir, "system.img")
	// Valid header sits where a hidden volume would be, but system
	// encryption configs never consult that slot.
	writeContainer(t, systemDev, HeaderOffsetHidden, raw)

	device := filepath.Join(dir, "whatever.img")
	if err := os.WriteFile(device, make([]byte, HeaderSize), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	cfg := &Config{Action: ActionInfo, Device: device, SystemDevice: systemDev}
	_, err := Open(cfg, passphrase)
	if err == nil {
		t.Fatal("expected Open to fail: system-encryption config must not fall back to the hidden slot")
	}
	if !IsAuthOrFormatError(err) {
		t.Errorf("Open returned %v, want AuthOrFormatError", err)
	}
}

func TestOpen_WrongPassphraseExhaustsBothSlots(t *testing.T) {
	raw := buildAcceptedHeader(t, []byte("the real one"), PRFAlgos[0], CipherAlgos[0])

	dir := t.TempDir()
	dev := filepath.Join(dir, "volume.img")
	writeContainer(t, dev, HeaderOffsetPrimary, raw)

	cfg := &Config{Action: ActionInfo, Device: dev}
	_, err := Open(cfg, []byte("a wrong guess"))
	if !IsAuthOrFormatError(err) {
		t.Errorf("Open returned %v, want AuthOrFormatError", err)
	}
}
