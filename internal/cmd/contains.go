package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/clebertmarctyson/ip-navigator-cli/internal/ipv4"
)

func newContainsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "contains <address> <network>/<prefix> | <address> <network> <mask|prefix>",
		Short: "Test whether an address belongs to a subnet",
		Long:  "The exit code is the result: 0 when the address is in the subnet, 1 when it is not.",
		Example: `  ip-navigator contains 192.168.1.50 192.168.1.0/24
  ip-navigator contains 192.168.1.50 192.168.1.0 255.255.255.0`,
		Args: cobra.RangeArgs(2, 3),
		RunE: func(_ *cobra.Command, args []string) error {
			addr, err := ipv4.ParseAddress(args[0])
			if err != nil {
				return err
			}
			p, err := parsePrefixArgs(args[1:])
			if err != nil {
				return err
			}

			ok := ipv4.Contains(addr, p.Addr(), p.Bits())
			a.log.Debug("membership test", "addr", addr.String(), "network", p.String(), "member", ok)

			fmt.Fprintln(a.out, a.result(ok, fmt.Sprintf("%t", ok)))
			if !ok {
				return ErrFalse
			}
			return nil
		},
	}
}
