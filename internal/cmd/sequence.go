package cmd

import (
	"fmt"
	"net/netip"

	"github.com/spf13/cobra"

	"github.com/clebertmarctyson/ip-navigator-cli/internal/ipv4"
)

func newCompareCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "compare <a> <b>",
		Short: "Compare two addresses numerically, printing -1, 0 or 1",
		Args:  cobra.ExactArgs(2),
		RunE: func(_ *cobra.Command, args []string) error {
			x, err := ipv4.ParseAddress(args[0])
			if err != nil {
				return err
			}
			y, err := ipv4.ParseAddress(args[1])
			if err != nil {
				return err
			}
			fmt.Fprintln(a.out, ipv4.Compare(x, y))
			return nil
		},
	}
}

func newNextCmd(a *app) *cobra.Command {
	return newStepCmd(a, "next", "Print the address one above the argument", ipv4.Next)
}

func newPreviousCmd(a *app) *cobra.Command {
	return newStepCmd(a, "previous", "Print the address one below the argument", ipv4.Previous)
}

func newStepCmd(a *app, name, short string, step func(netip.Addr) (netip.Addr, error)) *cobra.Command {
	return &cobra.Command{
		Use:   name + " <address>",
		Short: short,
		Long:  short + ". Stepping past 255.255.255.255 or below 0.0.0.0 fails instead of wrapping.",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			addr, err := ipv4.ParseAddress(args[0])
			if err != nil {
				return err
			}
			stepped, err := step(addr)
			if err != nil {
				return err
			}
			fmt.Fprintln(a.out, stepped)
			return nil
		},
	}
}
