package cmd

import (
	"fmt"
	"net/netip"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/clebertmarctyson/ip-navigator-cli/internal/ipv4"
)

func newInfoCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "info <address>/<prefix> | <address> <mask|prefix>",
		Short: "Show subnet metadata for an address and mask",
		Example: `  ip-navigator info 192.168.1.100/24
  ip-navigator info 192.168.1.100 255.255.255.0
  ip-navigator info 10.0.0.1 /31`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(_ *cobra.Command, args []string) error {
			p, err := parsePrefixArgs(args)
			if err != nil {
				return err
			}

			info := ipv4.Info(p)
			a.log.Debug("derived subnet info",
				"prefix", p.String(),
				"network", info.Network.String(),
				"broadcast", info.Broadcast.String(),
				"usable", info.UsableHosts)

			return a.printInfo(p, info)
		},
	}
}

func (a *app) printInfo(p netip.Prefix, info ipv4.SubnetInfo) error {
	mask, err := ipv4.MaskFromBits(p.Bits())
	if err != nil {
		return err
	}

	if a.cfg.Plain {
		rows := [][2]string{
			{"address", p.Addr().String()},
			{"prefix", fmt.Sprintf("%d", p.Bits())},
			{"netmask", mask.String()},
			{"network", info.Network.String()},
			{"broadcast", info.Broadcast.String()},
			{"first_usable", info.FirstUsable.String()},
			{"last_usable", info.LastUsable.String()},
			{"total_hosts", fmt.Sprintf("%d", info.TotalHosts)},
			{"usable_hosts", fmt.Sprintf("%d", info.UsableHosts)},
		}
		for _, row := range rows {
			fmt.Fprintf(a.out, "%s\t%s\n", row[0], row[1])
		}
		return nil
	}

	w := tabwriter.NewWriter(a.out, 2, 0, 3, ' ', 0)
	fmt.Fprintf(w, "%s\t%s\n", a.pal.label("Address:"), p.Addr())
	fmt.Fprintf(w, "%s\t%s\n", a.pal.label("Netmask:"), mask)
	fmt.Fprintf(w, "%s\t/%d\n", a.pal.label("Prefix:"), p.Bits())
	fmt.Fprintf(w, "%s\t%s\n", a.pal.label("Network:"), info.Network)
	fmt.Fprintf(w, "%s\t%s\n", a.pal.label("Broadcast:"), info.Broadcast)
	fmt.Fprintf(w, "%s\t%s\n", a.pal.label("HostMin:"), info.FirstUsable)
	fmt.Fprintf(w, "%s\t%s\n", a.pal.label("HostMax:"), info.LastUsable)
	fmt.Fprintf(w, "%s\t%d (%d usable)\n", a.pal.label("Hosts/Net:"), info.TotalHosts, info.UsableHosts)
	return w.Flush()
}
