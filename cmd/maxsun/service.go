package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdf/gomaxsun"
	"github.com/pdf/gomaxsun/service"
)

var (
	cmdService = &cobra.Command{
		Use:   `service`,
		Short: `inspect or start the MaxsunSync service`,
	}

	cmdServiceStatus = &cobra.Command{
		Use:   `status`,
		Short: `print the state of the service`,
		RunE: func(c *cobra.Command, args []string) error {
			name := viper.GetString(`service.name`)
			ctl, err := service.Open(name)
			if err != nil {
				return err
			}
			defer ctl.Close()

			state, err := ctl.Status()
			if err != nil {
				return err
			}
			fmt.Fprintf(c.OutOrStdout(), "%s: %v\n", name, state)
			return nil
		},
	}

	cmdServiceCheck = &cobra.Command{
		Use:   `check`,
		Short: `start the service if needed, and wait until it is running`,
		RunE: func(c *cobra.Command, args []string) error {
			client = gomaxsun.NewClient(nil)
			client.SetServiceTimeout(viper.GetDuration(`service.timeout`))
			defer closeClient(c, args)

			if err := checkService(); err != nil {
				return err
			}
			logger.WithField(`service`, viper.GetString(`service.name`)).Infoln(`Service running`)
			return nil
		},
	}
)

func init() {
	cmdService.AddCommand(cmdServiceStatus)
	cmdService.AddCommand(cmdServiceCheck)
}
