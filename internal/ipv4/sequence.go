package ipv4

import (
	"fmt"
	"iter"
	"net/netip"

	"go4.org/netipx"
)

// Compare orders two addresses by their 32-bit numeric value, returning
// -1, 0 or 1.
func Compare(a, b netip.Addr) int {
	return a.Compare(b)
}

// Next returns the address one above addr. Stepping past 255.255.255.255
// fails with ErrOutOfRange rather than wrapping.
func Next(addr netip.Addr) (netip.Addr, error) {
	next := addr.Next()
	if !next.IsValid() {
		return netip.Addr{}, fmt.Errorf("%w: no address after %s", ErrOutOfRange, addr)
	}
	return next, nil
}

// Previous returns the address one below addr. Stepping below 0.0.0.0
// fails with ErrOutOfRange rather than wrapping.
func Previous(addr netip.Addr) (netip.Addr, error) {
	prev := addr.Prev()
	if !prev.IsValid() {
		return netip.Addr{}, fmt.Errorf("%w: no address before %s", ErrOutOfRange, addr)
	}
	return prev, nil
}

// Range is an inclusive span of addresses that can be enumerated lazily.
type Range struct {
	r netipx.IPRange
}

// NewRange returns the inclusive range [start, end], failing with
// ErrInvalidRange when start orders after end.
func NewRange(start, end netip.Addr) (Range, error) {
	r := netipx.IPRangeFrom(start, end)
	if !r.IsValid() {
		return Range{}, fmt.Errorf("%w: %s is after %s", ErrInvalidRange, start, end)
	}
	return Range{r: r}, nil
}

// From returns the first address of the range.
func (r Range) From() netip.Addr { return r.r.From() }

// To returns the last address of the range.
func (r Range) To() netip.Addr { return r.r.To() }

// Len returns the number of addresses in the range.
func (r Range) Len() uint64 {
	return uint64(ToUint32(r.r.To())-ToUint32(r.r.From())) + 1
}

// Addresses yields every address from first to last in increasing order.
// The walk is lazy, so callers can stop early without paying for the rest
// of the range, and restartable: each call starts over from the first
// address.
func (r Range) Addresses() iter.Seq[netip.Addr] {
	return func(yield func(netip.Addr) bool) {
		for a := r.r.From(); ; a = a.Next() {
			if !yield(a) {
				return
			}
			if a == r.r.To() {
				return
			}
		}
	}
}

// IsPrivate reports whether addr falls in one of the RFC 1918 blocks
// 10.0.0.0/8, 172.16.0.0/12 or 192.168.0.0/16.
func IsPrivate(addr netip.Addr) bool {
	return addr.IsPrivate()
}

// IsPublic is the complement of IsPrivate. Loopback, link-local and
// multicast addresses count as public.
func IsPublic(addr netip.Addr) bool {
	return !addr.IsPrivate()
}
