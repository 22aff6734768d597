package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/clebertmarctyson/ip-navigator-cli/internal/ipv4"
)

func newClassifyCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "classify <address>",
		Short: "Classify an address as private (RFC 1918) or public",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			addr, err := ipv4.ParseAddress(args[0])
			if err != nil {
				return err
			}

			if ipv4.IsPrivate(addr) {
				fmt.Fprintln(a.out, "private")
			} else {
				fmt.Fprintln(a.out, "public")
			}
			return nil
		},
	}
}
