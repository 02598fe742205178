package elf

import (
	"fmt"
	"strings"

	"github.com/samber/lo"
)

// String renders the header as a line-oriented report. The order is
// fixed: magic, class, data encoding, identification version, OS/ABI, ABI
// version, object type, raw e_version in hex. Unrecognized values keep
// their line and render the warning marker instead.
//
// Multi-byte integers are printed as stored, in host byte order; the
// decoded data encoding is not consulted.
func (h *Header64) String() string {
	ident := h.Identification()

	pairs := lo.Map(h.Ident[:], func(b byte, _ int) string {
		return fmt.Sprintf("%02x", b)
	})

	var b strings.Builder
	b.WriteString("ELF Header:\n")
	fmt.Fprintf(&b, "  Magic:   %s\n", strings.Join(pairs, " "))
	fmt.Fprintf(&b, "  %-36s%s\n", "Class:", ident.Class)
	fmt.Fprintf(&b, "  %-36s%s\n", "Data:", ident.Data)
	fmt.Fprintf(&b, "  %-36s%s\n", "Version:", ident.Version)
	fmt.Fprintf(&b, "  %-36s%s\n", "OS/ABI:", ident.OSABI)
	fmt.Fprintf(&b, "  %-36s%s\n", "ABI Version:", ident.ABIVersion)
	fmt.Fprintf(&b, "  %-36s%s\n", "Type:", h.Type)
	// TODO: decode e_machine into a readable machine name.
	fmt.Fprintf(&b, "  %-36s%#x\n", "Version:", h.Version)
	return b.String()
}
