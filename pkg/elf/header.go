package elf

import (
	"fmt"

	"github.com/vietanhduong/readbin/pkg/overlay"
)

// ParseHeader64 overlays an ELF64 header onto the first HeaderSize bytes
// of data. Trailing bytes are ignored; they belong to the rest of the
// image. The only way this fails is a buffer shorter than the header.
func ParseHeader64(data []byte) (*overlay.View[Header64], error) {
	v := overlay.New[Header64](data)
	if v == nil {
		return nil, fmt.Errorf("elf header: need %d bytes, got %d", HeaderSize, len(data))
	}
	return v, nil
}

// Identification is the classified form of the 16-byte identification
// block. Every field tolerates out-of-range values: unknowns render as a
// warning carrying the raw value, they never fail.
type Identification struct {
	Magic      [4]byte
	Class      Class
	Data       Data
	Version    Version
	OSABI      OSABI
	ABIVersion ABIVersion
}

// Identification projects the identification block. Pure, total over all
// byte values. Bytes EI_PAD and up are unused and stay undecoded.
func (h *Header64) Identification() Identification {
	return Identification{
		Magic:      [4]byte(h.Ident[EI_MAG0:EI_CLASS]),
		Class:      Class(h.Ident[EI_CLASS]),
		Data:       Data(h.Ident[EI_DATA]),
		Version:    Version(h.Ident[EI_VERSION]),
		OSABI:      OSABI(h.Ident[EI_OSABI]),
		ABIVersion: ABIVersion(h.Ident[EI_ABIVERSION]),
	}
}
