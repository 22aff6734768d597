package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/clebertmarctyson/ip-navigator-cli/internal/ipv4"
)

func newValidateCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Validate addresses, masks, binary forms and CIDR notation",
		Long:  "The exit code is the result: 0 when the value is valid, 1 when it is not.",
	}

	cmd.AddCommand(
		newValidateKindCmd(a, "address", "Validate a dotted-decimal IPv4 address", func(s string) error {
			_, err := ipv4.ParseAddress(s)
			return err
		}),
		newValidateKindCmd(a, "mask", "Validate a dotted-decimal subnet mask", func(s string) error {
			_, err := ipv4.ParseMask(s)
			return err
		}),
		newValidateKindCmd(a, "binary", "Validate a dotted binary address form", func(s string) error {
			_, err := ipv4.ParseBinary(s)
			return err
		}),
		newValidateKindCmd(a, "cidr", "Validate address/prefix notation", func(s string) error {
			_, err := ipv4.ParseCIDR(s)
			return err
		}),
	)
	return cmd
}

func newValidateKindCmd(a *app, kind, short string, parse func(string) error) *cobra.Command {
	return &cobra.Command{
		Use:   kind + " <value>",
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			if err := parse(args[0]); err != nil {
				a.log.Debug("validation failed", "kind", kind, "value", args[0], "err", err.Error())
				fmt.Fprintln(a.out, a.result(false, "invalid"))
				fmt.Fprintln(a.errOut, err)
				return ErrFalse
			}
			fmt.Fprintln(a.out, a.result(true, "valid"))
			return nil
		},
	}
}
