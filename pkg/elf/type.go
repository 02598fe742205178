package elf

import (
	"fmt"
	"unsafe"
)

// Indices into the identification block, per <elf.h>.
const (
	EI_MAG0       = 0
	EI_MAG1       = 1
	EI_MAG2       = 2
	EI_MAG3       = 3
	EI_CLASS      = 4
	EI_DATA       = 5
	EI_VERSION    = 6
	EI_OSABI      = 7
	EI_ABIVERSION = 8
	EI_PAD        = 9
)

// HeaderSize is the fixed on-disk size of an ELF64 file header.
const HeaderSize = 64

// Header64 is the ELF64 file header exactly as it sits on disk: 64 bytes,
// field order and widths fixed by the format, no implicit padding. It is
// the overlay target for pkg/overlay, so every byte must be meaningful.
//
// Sources:
// * https://www.man7.org/linux/man-pages/man5/elf.5.html
// * https://uclibc.org/docs/elf-64-gen.pdf
type Header64 struct {
	Ident     [16]byte // identification block
	Type      Type     // object file type
	Machine   uint16   // machine type
	Version   uint32   // object file version
	Entry     uint64   // entry point address
	Phoff     uint64   // program header offset
	Shoff     uint64   // section header offset
	Flags     uint32   // processor specific flags
	Ehsize    uint16   // elf header size
	Phentsize uint16   // size of program header entry
	Phnum     uint16   // number of program header entries
	Shentsize uint16   // size of section header entry
	Shnum     uint16   // number of section header entries
	Shstrndx  uint16   // section name string table index
}

// Header64 must stay exactly HeaderSize bytes with no implicit padding.
var (
	_ [HeaderSize - unsafe.Sizeof(Header64{})]byte
	_ [unsafe.Sizeof(Header64{}) - HeaderSize]byte
)

// Class is the file class from Ident[EI_CLASS].
type Class uint8

const (
	ELFCLASSNONE Class = 0
	ELFCLASS32   Class = 1
	ELFCLASS64   Class = 2
)

func (c Class) String() string {
	switch c {
	case ELFCLASSNONE:
		return "Invalid class"
	case ELFCLASS32:
		return "ELF32"
	case ELFCLASS64:
		return "ELF64"
	}
	return fmt.Sprintf("Warning: unknown class (%#x)", uint8(c))
}

// Data is the data encoding from Ident[EI_DATA].
type Data uint8

const (
	ELFDATANONE Data = 0
	ELFDATA2LSB Data = 1
	ELFDATA2MSB Data = 2
)

func (d Data) String() string {
	switch d {
	case ELFDATANONE:
		return "Unknown data encoding"
	case ELFDATA2LSB:
		return "2's complement, little endian"
	case ELFDATA2MSB:
		return "2's complement, big endian"
	}
	return fmt.Sprintf("Warning: unknown data encoding (%#x)", uint8(d))
}

// Version is the specification version from Ident[EI_VERSION].
type Version uint8

const (
	EV_NONE    Version = 0
	EV_CURRENT Version = 1
)

func (v Version) String() string {
	switch v {
	case EV_NONE:
		return "Invalid version"
	case EV_CURRENT:
		return fmt.Sprintf("%d (current)", uint8(v))
	}
	return fmt.Sprintf("Warning: unknown version (%#x)", uint8(v))
}

// OSABI is the target operating system ABI from Ident[EI_OSABI].
type OSABI uint8

const (
	ELFOSABI_SYSV       OSABI = 0
	ELFOSABI_HPUX       OSABI = 1
	ELFOSABI_NETBSD     OSABI = 2
	ELFOSABI_GNU        OSABI = 3
	ELFOSABI_SOLARIS    OSABI = 6
	ELFOSABI_AIX        OSABI = 7
	ELFOSABI_IRIX       OSABI = 8
	ELFOSABI_FREEBSD    OSABI = 9
	ELFOSABI_TRU64      OSABI = 10
	ELFOSABI_MODESTO    OSABI = 11
	ELFOSABI_OPENBSD    OSABI = 12
	ELFOSABI_ARM_AEABI  OSABI = 64
	ELFOSABI_ARM        OSABI = 97
	ELFOSABI_STANDALONE OSABI = 255
)

func (o OSABI) String() string {
	switch o {
	case ELFOSABI_SYSV:
		return "UNIX System V ABI"
	case ELFOSABI_HPUX:
		return "HP-UX"
	case ELFOSABI_NETBSD:
		return "NetBSD"
	case ELFOSABI_GNU:
		return "Object use GNU ELF extensions"
	case ELFOSABI_SOLARIS:
		return "Sun Solaris"
	case ELFOSABI_AIX:
		return "IBM AIX"
	case ELFOSABI_IRIX:
		return "SGI Irix"
	case ELFOSABI_FREEBSD:
		return "FreeBSD"
	case ELFOSABI_TRU64:
		return "Compaq tru64 unix"
	case ELFOSABI_MODESTO:
		return "Novell Modesto"
	case ELFOSABI_OPENBSD:
		return "OpenBSD"
	case ELFOSABI_ARM_AEABI:
		return "ARM AEABI"
	case ELFOSABI_ARM:
		return "ARM"
	case ELFOSABI_STANDALONE:
		return "Standalone embedded application"
	}
	return fmt.Sprintf("Warning: unknown operating system target (%#x)", uint8(o))
}

// ABIVersion is Ident[EI_ABIVERSION]. Zero is the only value the
// specification defines.
type ABIVersion uint8

func (v ABIVersion) String() string {
	if v == 0 {
		return "0"
	}
	return fmt.Sprintf("Warning: not compatible with the specification (%d)", uint8(v))
}

// Type is the 2-byte object file type field.
type Type uint16

const (
	ET_NONE Type = 0
	ET_REL  Type = 1
	ET_EXEC Type = 2
	ET_DYN  Type = 3
	ET_CORE Type = 4
)

func (t Type) String() string {
	switch t {
	case ET_NONE:
		return "NONE (No file type)"
	case ET_REL:
		return "REL (Relocatable file)"
	case ET_EXEC:
		return "EXEC (Executable file)"
	case ET_DYN:
		return "DYN (Shared object file)"
	case ET_CORE:
		return "CORE (Core file)"
	}
	return fmt.Sprintf("Warning: unknown object file type (%#x)", uint16(t))
}
