package ipv4

import (
	"net/netip"

	"go4.org/netipx"
)

// SubnetInfo is a derived, read-only snapshot of the block containing a
// prefix. It is a pure function of (address, prefix length) and carries no
// identity of its own.
type SubnetInfo struct {
	Network     netip.Addr
	Broadcast   netip.Addr
	FirstUsable netip.Addr
	LastUsable  netip.Addr
	TotalHosts  uint64
	UsableHosts uint64
}

// Network returns the network address of the block containing p's address:
// the address with all host bits cleared.
func Network(p netip.Prefix) netip.Addr {
	return p.Masked().Addr()
}

// Broadcast returns the highest address of the block containing p's
// address: the network address with all host bits set.
func Broadcast(p netip.Prefix) netip.Addr {
	return netipx.RangeOfPrefix(p).To()
}

// Info derives the subnet metadata for p. /31 blocks follow the
// point-to-point convention where both addresses are usable; a /32 block
// is its own single usable host. Everything wider reserves the network and
// broadcast addresses.
func Info(p netip.Prefix) SubnetInfo {
	r := netipx.RangeOfPrefix(p)
	info := SubnetInfo{
		Network:    r.From(),
		Broadcast:  r.To(),
		TotalHosts: uint64(1) << (32 - p.Bits()),
	}

	if p.Bits() >= 31 {
		info.UsableHosts = info.TotalHosts
		info.FirstUsable = info.Network
		info.LastUsable = info.Broadcast
		return info
	}

	info.UsableHosts = info.TotalHosts - 2
	info.FirstUsable = info.Network.Next()
	info.LastUsable = info.Broadcast.Prev()
	return info
}

// Contains reports whether addr and network fall in the same block under a
// prefix length. network need not be the canonical network address; both
// sides are normalized by masking before the comparison.
func Contains(addr, network netip.Addr, maskBits int) bool {
	return netip.PrefixFrom(network, maskBits).Masked().Contains(addr)
}
