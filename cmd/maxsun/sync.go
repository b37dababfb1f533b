package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

var (
	cmdSync = &cobra.Command{
		Use:   `sync`,
		Short: `read or change which devices take part in synchronized effects`,
	}

	cmdSyncGet = &cobra.Command{
		Use:     `get`,
		Short:   `print the sync flag of each device`,
		PreRunE: setupClient,
		PostRun: closeClient,
		RunE: func(c *cobra.Command, args []string) error {
			status, err := client.GetSyncStatusList()
			if err != nil {
				return err
			}
			return render(c.OutOrStdout(), flagOutput, status, func(w io.Writer) error {
				return writeSyncStatus(w, status)
			})
		},
	}

	cmdSyncSet = &cobra.Command{
		Use:   `set <flags>...`,
		Short: `set the sync flag of each device, in scan order`,
		Long: `set the sync flag of each device, in scan order.

Flags are given either as a single string of 0 and 1 characters, or as one
boolean argument per device:

  maxsun sync set 1101
  maxsun sync set true true false true`,
		Args:    cobra.MinimumNArgs(1),
		PreRunE: setupClient,
		PostRun: closeClient,
		RunE: func(c *cobra.Command, args []string) error {
			status, err := parseSyncArgs(args)
			if err != nil {
				return err
			}
			if _, err := client.SetSyncStatus(status); err != nil {
				return err
			}
			logger.WithField(`devices`, len(status)).Infoln(`Sync status sent`)
			return nil
		},
	}
)

func init() {
	cmdSync.AddCommand(cmdSyncGet)
	cmdSync.AddCommand(cmdSyncSet)
}

func parseSyncArgs(args []string) ([]bool, error) {
	if len(args) == 1 && strings.Trim(args[0], `01`) == `` {
		status := make([]bool, len(args[0]))
		for i, ch := range args[0] {
			status[i] = ch == '1'
		}
		return status, nil
	}

	status := make([]bool, len(args))
	for i, arg := range args {
		b, err := strconv.ParseBool(arg)
		if err != nil {
			return nil, errors.Wrapf(err, `argument %d: %q is not a boolean`, i+1, arg)
		}
		status[i] = b
	}
	return status, nil
}

func writeSyncStatus(w io.Writer, status []bool) error {
	for i, s := range status {
		if _, err := fmt.Fprintf(w, "%d\t%v\n", i, s); err != nil {
			return err
		}
	}
	return nil
}
