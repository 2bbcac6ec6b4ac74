package tcplay

import (
	"encoding/hex"
	"fmt"

	"github.com/anatol/devmapper.go"
)

// ParamString builds the single-line dm-crypt target parameter string
// for d: "«dm-mode» «hex-key» «iv-sector-offset» «device-path»
// «data-sector-offset»".
func (d *Descriptor) ParamString() string {
	return fmt.Sprintf("%s %s %d %s %d",
		d.Cipher.DMCryptMode, string(d.Key.Bytes()), d.Skip, d.Device, d.Offset)
}

// CreateMapping installs a kernel device-mapper crypt target named
// mapName for d. Mapping start is always 0 and mapping length is
// d.Size, matching the reference's dm_setup. The raw key handed to the
// driver is decoded into its own Buffer and freed as soon as the ioctl
// call returns.
func CreateMapping(mapName string, d *Descriptor) error {
	keyBuf, err := Alloc(len(d.Key.Bytes()) / 2)
	if err != nil {
		return err
	}
	defer mustFree(keyBuf)

	if _, err := hex.Decode(keyBuf.Bytes(), d.Key.Bytes()); err != nil {
		return NewDriverError("create-and-load", err)
	}

	table := devmapper.CryptTable{
		Start:         d.Start,
		Length:        d.Size,
		BackendDevice: d.Device,
		BackendOffset: d.Offset * uint64(d.Header.SecSz),
		Encryption:    d.Cipher.DMCryptMode,
		Key:           keyBuf.Bytes(),
		IVTweak:       d.Skip,
		SectorSize:    uint64(d.Header.SecSz),
	}

	if err := devmapper.CreateAndLoad(mapName, d.UUID.String(), 0, table); err != nil {
		return NewDriverError("create-and-load", err)
	}
	return nil
}

// RemoveMapping tears down a previously created mapping.
func RemoveMapping(mapName string) error {
	if err := devmapper.Remove(mapName); err != nil {
		return NewDriverError("remove", err)
	}
	return nil
}
