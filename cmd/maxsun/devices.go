package main

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/pdf/gomaxsun/common"
)

var cmdScan = &cobra.Command{
	Use:     `scan`,
	Short:   `list the devices known to the service`,
	PreRunE: setupClient,
	PostRun: closeClient,
	RunE: func(c *cobra.Command, args []string) error {
		devices, err := client.ScanDevices()
		if err != nil {
			return err
		}
		return render(c.OutOrStdout(), flagOutput, devices, func(w io.Writer) error {
			return writeDevices(w, devices)
		})
	},
}

func writeDevices(w io.Writer, devices []common.DeviceInfo) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "INDEX\tNAME\tTYPE\tSYNC")
	for _, dev := range devices {
		fmt.Fprintf(tw, "%d\t%s\t%v\t%v\n", dev.Index, dev.Name, dev.Type, dev.SyncStatus)
	}
	return tw.Flush()
}
