package cmd

import (
	"fmt"
	"net/netip"
	"strconv"
	"strings"

	"github.com/clebertmarctyson/ip-navigator-cli/internal/ipv4"
)

// parsePrefixLen accepts a dotted-decimal mask ("255.255.255.0"), a slash
// prefix ("/24") or a bare prefix length ("24") and returns the length.
func parsePrefixLen(s string) (int, error) {
	if strings.Contains(s, ".") {
		mask, err := ipv4.ParseMask(s)
		if err != nil {
			return 0, err
		}
		return ipv4.MaskBits(mask)
	}

	n, err := strconv.Atoi(strings.TrimPrefix(s, "/"))
	if err != nil {
		return 0, fmt.Errorf("%w: prefix %q", ipv4.ErrInvalidCIDR, s)
	}
	if n < 0 || n > 32 {
		return 0, fmt.Errorf("%w: prefix length %d", ipv4.ErrOutOfRange, n)
	}
	return n, nil
}

// parsePrefixArgs builds a prefix from either a single "address/prefix"
// argument or an address plus a mask/prefix-length argument.
func parsePrefixArgs(args []string) (netip.Prefix, error) {
	if len(args) == 1 {
		return ipv4.ParseCIDR(args[0])
	}

	addr, err := ipv4.ParseAddress(args[0])
	if err != nil {
		return netip.Prefix{}, err
	}
	bits, err := parsePrefixLen(args[1])
	if err != nil {
		return netip.Prefix{}, err
	}
	return netip.PrefixFrom(addr, bits), nil
}
