package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/clebertmarctyson/ip-navigator-cli/internal/ipv4"
)

func newConvertCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "convert",
		Short: "Convert between decimal, integer, binary and mask forms",
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "to-int <address>",
			Short: "Print the 32-bit integer value of an address",
			Args:  cobra.ExactArgs(1),
			RunE: func(_ *cobra.Command, args []string) error {
				addr, err := ipv4.ParseAddress(args[0])
				if err != nil {
					return err
				}
				fmt.Fprintln(a.out, ipv4.ToUint32(addr))
				return nil
			},
		},
		&cobra.Command{
			Use:   "from-int <integer>",
			Short: "Print the dotted-decimal form of a 32-bit integer",
			Args:  cobra.ExactArgs(1),
			RunE: func(_ *cobra.Command, args []string) error {
				addr, err := ipv4.ParseInteger(args[0])
				if err != nil {
					return err
				}
				fmt.Fprintln(a.out, addr)
				return nil
			},
		},
		&cobra.Command{
			Use:   "to-binary <address>",
			Short: "Print an address as four 8-bit binary groups",
			Args:  cobra.ExactArgs(1),
			RunE: func(_ *cobra.Command, args []string) error {
				addr, err := ipv4.ParseAddress(args[0])
				if err != nil {
					return err
				}
				fmt.Fprintln(a.out, ipv4.ToBinary(addr))
				return nil
			},
		},
		&cobra.Command{
			Use:   "from-binary <groups>",
			Short: "Print the dotted-decimal form of four binary groups",
			// The groups may be dot-separated in one argument or
			// whitespace-separated across several.
			Args: cobra.MinimumNArgs(1),
			RunE: func(_ *cobra.Command, args []string) error {
				addr, err := ipv4.ParseBinary(strings.Join(args, " "))
				if err != nil {
					return err
				}
				fmt.Fprintln(a.out, addr)
				return nil
			},
		},
		&cobra.Command{
			Use:   "to-mask <prefixlen>",
			Short: "Print the dotted-decimal mask for a prefix length",
			Args:  cobra.ExactArgs(1),
			RunE: func(_ *cobra.Command, args []string) error {
				bits, err := parsePrefixLen(args[0])
				if err != nil {
					return err
				}
				mask, err := ipv4.MaskFromBits(bits)
				if err != nil {
					return err
				}
				fmt.Fprintln(a.out, mask)
				return nil
			},
		},
		&cobra.Command{
			Use:   "to-prefix <mask>",
			Short: "Print the prefix length of a dotted-decimal mask",
			Args:  cobra.ExactArgs(1),
			RunE: func(_ *cobra.Command, args []string) error {
				mask, err := ipv4.ParseMask(args[0])
				if err != nil {
					return err
				}
				bits, err := ipv4.MaskBits(mask)
				if err != nil {
					return err
				}
				fmt.Fprintln(a.out, bits)
				return nil
			},
		},
	)
	return cmd
}
