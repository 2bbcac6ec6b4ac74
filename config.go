package tcplay

import "fmt"

// Action names one of the two mutually exclusive top-level commands.
type Action uint8

const (
	// ActionInfo prints recognition results without creating a mapping.
	ActionInfo Action = iota
	// ActionMap creates a device-mapper mapping for the volume.
	ActionMap
)

// Config gathers everything the CLI layer parses before the core is
// invoked: the requested action, the target device, an optional
// separate system-encryption disk, any keyfiles, the mapping name for
// ActionMap, and the reserved hidden-volume-protection flag.
type Config struct {
	Action Action

	// Device is the path to the volume to operate on.
	Device string

	// SystemDevice, when non-empty, names a separate disk using
	// whole-disk system encryption; the primary header is then read
	// from HeaderOffsetSystem on SystemDevice instead of
	// HeaderOffsetPrimary on Device, and the hidden-volume slot is not
	// attempted.
	SystemDevice string

	// Keyfiles is an ordered list of keyfile paths to mix into the
	// passphrase.
	Keyfiles []string

	// MapName is the device-mapper target name; required for ActionMap.
	MapName string

	// ProtectHidden is accepted but neither validated nor consulted by
	// the core, matching the reference's -e flag.
	ProtectHidden bool
}

// Validate checks the configuration for the preconditions the core
// requires before it will attempt recognition.
func (c *Config) Validate() error {
	if c == nil {
		return NewValidationError("config", nil, "config cannot be nil")
	}
	if err := ValidateDevicePath(c.Device); err != nil {
		return err
	}
	if c.SystemDevice != "" {
		if err := ValidateDevicePath(c.SystemDevice); err != nil {
			return err
		}
	}
	if err := ValidateKeyfilePaths(c.Keyfiles); err != nil {
		return err
	}
	if c.Action == ActionMap && c.MapName == "" {
		return NewValidationError("map-name", nil, "mapping name is required for the map action")
	}
	return nil
}

// IsSystemEncryption reports whether this config targets a
// whole-disk system-encrypted volume.
func (c *Config) IsSystemEncryption() bool {
	return c.SystemDevice != ""
}

// PrimaryHeaderLocation returns the device path and byte offset the
// primary header should be read from for this config.
func (c *Config) PrimaryHeaderLocation() (device string, offset int64) {
	if c.IsSystemEncryption() {
		return c.SystemDevice, HeaderOffsetSystem
	}
	return c.Device, HeaderOffsetPrimary
}

func (a Action) String() string {
	switch a {
	case ActionInfo:
		return "info"
	case ActionMap:
		return "map"
	default:
		return fmt.Sprintf("Action(%d)", uint8(a))
	}
}
