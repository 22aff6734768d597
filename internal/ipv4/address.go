// Package ipv4 implements IPv4 address arithmetic: parsing and validation,
// conversions between dotted-decimal, integer and binary forms, subnet
// derivation and address sequencing. Every function is pure; addresses are
// netip.Addr values guaranteed to be 4-byte by construction.
package ipv4

import (
	"encoding/binary"
	"fmt"
	"math"
	"net/netip"
	"strconv"
	"strings"
	"unicode"
)

// ParseAddress parses a dotted-decimal IPv4 address: exactly four octets,
// each a plain base-10 integer in [0,255]. IPv6 forms, leading zeros,
// whitespace and anything else are rejected.
func ParseAddress(s string) (netip.Addr, error) {
	addr, err := netip.ParseAddr(s)
	if err != nil || !addr.Is4() {
		return netip.Addr{}, fmt.Errorf("%w: %q", ErrInvalidAddress, s)
	}
	return addr, nil
}

// ToUint32 returns the big-endian 32-bit value of addr.
func ToUint32(addr netip.Addr) uint32 {
	b := addr.As4()
	return binary.BigEndian.Uint32(b[:])
}

// FromUint32 returns the address with the given 32-bit value.
func FromUint32(v uint32) netip.Addr {
	var b [4]byte
	binary.BigEndian.PutUint32(b[:], v)
	return netip.AddrFrom4(b)
}

// FromInteger converts an integer address value, failing with ErrOutOfRange
// above 4294967295.
func FromInteger(v uint64) (netip.Addr, error) {
	if v > math.MaxUint32 {
		return netip.Addr{}, fmt.Errorf("%w: %d exceeds 32 bits", ErrOutOfRange, v)
	}
	return FromUint32(uint32(v)), nil
}

// ParseInteger converts the decimal text form of an integer address value.
// Negative values and values above 4294967295 fail with ErrOutOfRange.
func ParseInteger(s string) (netip.Addr, error) {
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil || v < 0 || v > math.MaxUint32 {
		return netip.Addr{}, fmt.Errorf("%w: integer %q is not a 32-bit address value", ErrOutOfRange, s)
	}
	return FromUint32(uint32(v)), nil
}

// ToBinary formats addr as four 8-bit binary groups joined by dots,
// e.g. "11000000.10101000.00000001.00000001".
func ToBinary(addr netip.Addr) string {
	b := addr.As4()
	return fmt.Sprintf("%08b.%08b.%08b.%08b", b[0], b[1], b[2], b[3])
}

// ParseBinary parses four dot- or whitespace-separated groups of exactly
// eight binary digits.
func ParseBinary(s string) (netip.Addr, error) {
	groups := strings.FieldsFunc(s, func(r rune) bool {
		return r == '.' || unicode.IsSpace(r)
	})
	if len(groups) != 4 {
		return netip.Addr{}, fmt.Errorf("%w: %q does not have 4 octet groups", ErrInvalidBinary, s)
	}

	var b [4]byte
	for i, g := range groups {
		if len(g) != 8 {
			return netip.Addr{}, fmt.Errorf("%w: group %q is not 8 bits", ErrInvalidBinary, g)
		}
		v, err := strconv.ParseUint(g, 2, 8)
		if err != nil {
			return netip.Addr{}, fmt.Errorf("%w: group %q", ErrInvalidBinary, g)
		}
		b[i] = byte(v)
	}
	return netip.AddrFrom4(b), nil
}
