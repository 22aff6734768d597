package ipv4

import (
	"fmt"
	"math/bits"
	"net/netip"
)

// ParseMask parses a dotted-decimal subnet mask. Beyond address syntax it
// requires the bit pattern to be a contiguous run of ones followed by
// zeros; 255.255.255.255 and 0.0.0.0 are both valid.
func ParseMask(s string) (netip.Addr, error) {
	mask, err := netip.ParseAddr(s)
	if err != nil || !mask.Is4() {
		return netip.Addr{}, fmt.Errorf("%w: %q", ErrInvalidMask, s)
	}
	if _, err := MaskBits(mask); err != nil {
		return netip.Addr{}, err
	}
	return mask, nil
}

// MaskBits returns the CIDR prefix length of mask, failing with
// ErrInvalidMask when the mask bits are not contiguous from the most
// significant bit down.
func MaskBits(mask netip.Addr) (int, error) {
	v := ToUint32(mask)
	ones := bits.OnesCount32(v)
	if v != prefixMask(ones) {
		return 0, fmt.Errorf("%w: %s bits are not contiguous", ErrInvalidMask, mask)
	}
	return ones, nil
}

// MaskFromBits returns the dotted-decimal mask for a prefix length,
// failing with ErrOutOfRange outside [0,32].
func MaskFromBits(n int) (netip.Addr, error) {
	if n < 0 || n > 32 {
		return netip.Addr{}, fmt.Errorf("%w: prefix length %d", ErrOutOfRange, n)
	}
	return FromUint32(prefixMask(n)), nil
}

// ParseCIDR parses "address/prefix" notation. The returned prefix keeps
// the host bits of the supplied address; call Masked for the block itself.
func ParseCIDR(s string) (netip.Prefix, error) {
	p, err := netip.ParsePrefix(s)
	if err != nil || !p.Addr().Is4() {
		return netip.Prefix{}, fmt.Errorf("%w: %q", ErrInvalidCIDR, s)
	}
	return p, nil
}

func prefixMask(n int) uint32 {
	if n <= 0 {
		return 0
	}
	return ^uint32(0) << (32 - n)
}
