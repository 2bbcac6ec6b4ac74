package tcplay

import (
	"bufio"
	"fmt"
	"os"

	"golang.org/x/term"
)

// ReadPassphrase prompts for and reads a passphrase with local echo
// disabled, from /dev/tty when available, falling back to stdin. The
// trailing newline is stripped. The returned buffer is a secure
// Buffer of MaxPassphraseSize bytes; the caller must Free it.
//
// Matching the reference's read_passphrase, terminal echo is restored
// on every exit path, including a read failure, and a zero-byte read
// is reported as ErrZeroRead.
func ReadPassphrase(prompt string) (*Buffer, error) {
	f, usingStdin, err := openPassphraseTTY()
	if err != nil {
		return nil, err
	}
	if !usingStdin {
		defer f.Close()
	}

	fmt.Fprint(os.Stdout, prompt)

	fd := int(f.Fd())
	if !term.IsTerminal(fd) {
		return readPassphraseLine(f)
	}

	oldState, err := term.GetState(fd)
	if err != nil {
		return nil, NewIOError("tcgetattr", "", err)
	}
	defer func() { _ = term.Restore(fd, oldState) }()

	line, err := term.ReadPassword(fd)
	fmt.Fprintln(os.Stdout)
	if err != nil {
		return nil, NewIOError("read", "", err)
	}
	if len(line) == 0 {
		return nil, ErrZeroRead
	}

	return passphraseBuffer(line)
}

// openPassphraseTTY opens /dev/tty for the passphrase prompt, falling
// back to stdin when no controlling terminal is available.
func openPassphraseTTY() (*os.File, bool, error) {
	f, err := os.OpenFile("/dev/tty", os.O_RDONLY, 0)
	if err != nil {
		return os.Stdin, true, nil
	}
	return f, false, nil
}

// readPassphraseLine handles the non-terminal fallback (e.g. piped
// stdin in tests), reading one line without echo suppression.
func readPassphraseLine(f *os.File) (*Buffer, error) {
	scanner := bufio.NewScanner(f)
	if !scanner.Scan() {
		if err := scanner.Err(); err != nil {
			return nil, NewIOError("read", "", err)
		}
		return nil, ErrZeroRead
	}
	line := scanner.Bytes()
	if len(line) == 0 {
		return nil, ErrZeroRead
	}
	return passphraseBuffer(line)
}

// passphraseBuffer copies a raw passphrase into a secure
// MaxPassphraseSize buffer, truncating if the input is longer.
func passphraseBuffer(line []byte) (*Buffer, error) {
	buf, err := Alloc(MaxPassphraseSize)
	if err != nil {
		return nil, err
	}
	n := copy(buf.Bytes(), line)
	_ = n
	return buf, nil
}
