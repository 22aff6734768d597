package cmd

import (
	"bufio"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/clebertmarctyson/ip-navigator-cli/internal/ipv4"
)

func newRangeCmd(a *app) *cobra.Command {
	var limit uint64

	cmd := &cobra.Command{
		Use:   "range <start> <end>",
		Short: "Print every address from start to end inclusive",
		Long:  "Addresses stream one per line in increasing order; --limit caps the output without walking the rest of the range.",
		Args:  cobra.ExactArgs(2),
		RunE: func(_ *cobra.Command, args []string) error {
			start, err := ipv4.ParseAddress(args[0])
			if err != nil {
				return err
			}
			end, err := ipv4.ParseAddress(args[1])
			if err != nil {
				return err
			}
			r, err := ipv4.NewRange(start, end)
			if err != nil {
				return err
			}

			a.log.Debug("enumerating range", "start", start.String(), "end", end.String(), "len", r.Len(), "limit", limit)

			w := bufio.NewWriter(a.out)
			var printed uint64
			for addr := range r.Addresses() {
				if limit > 0 && printed == limit {
					break
				}
				fmt.Fprintln(w, addr)
				printed++
			}
			return w.Flush()
		},
	}

	cmd.Flags().Uint64VarP(&limit, "limit", "n", 0, "stop after this many addresses (0 means no limit)")
	return cmd
}
