package tcplay

import (
	"errors"
	"testing"
)

func TestValidationError(t *testing.T) {
	tests := []struct {
		name    string
		err     *ValidationError
		wantMsg string
	}{
		{
			name:    "with field",
			err:     &ValidationError{Field: "device", Message: "cannot be empty"},
			wantMsg: "validation error: device: cannot be empty",
		},
		{
			name:    "without field",
			err:     &ValidationError{Message: "invalid configuration"},
			wantMsg: "validation error: invalid configuration",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.wantMsg {
				t.Errorf("ValidationError.Error() = %q, want %q", got, tt.wantMsg)
			}
		})
	}
}

func TestIOError(t *testing.T) {
	underlying := errors.New("no such file")
	err := NewIOError("open", "/dev/sdb1", underlying)

	var ioErr *IOError
	if !errors.As(err, &ioErr) {
		t.Fatalf("NewIOError did not produce an *IOError")
	}
	if !IsIOError(err) {
		t.Errorf("IsIOError(err) = false, want true")
	}
	if !errors.Is(errors.Unwrap(err), underlying) {
		t.Errorf("Unwrap() did not return the underlying error")
	}
}

func TestAuthOrFormatError(t *testing.T) {
	var err error = &AuthOrFormatError{}
	if err.Error() != "Incorrect password or not a TrueCrypt volume" {
		t.Errorf("unexpected message: %q", err.Error())
	}
	if !IsAuthOrFormatError(err) {
		t.Errorf("IsAuthOrFormatError(err) = false, want true")
	}
}

func TestCorruptionError(t *testing.T) {
	err := &CorruptionError{Detail: "tail guard signature mismatch"}
	if !IsCorruptionError(err) {
		t.Errorf("IsCorruptionError(err) = false, want true")
	}
}

func TestUnsupportedError(t *testing.T) {
	err := NewUnsupportedError("hash", "md5", "no PBKDF2 PRF registered for this hash")
	if !IsUnsupportedError(err) {
		t.Errorf("IsUnsupportedError(err) = false, want true")
	}
}

func TestDriverError(t *testing.T) {
	underlying := errors.New("ioctl failed")
	err := NewDriverError("create-and-load", underlying)
	if !IsDriverError(err) {
		t.Errorf("IsDriverError(err) = false, want true")
	}
	if !errors.Is(errors.Unwrap(err), underlying) {
		t.Errorf("Unwrap() did not return the underlying error")
	}
}
