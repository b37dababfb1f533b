// Command maxsun controls the MaxsunSync lighting service from the command line
package main

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	homedir "github.com/mitchellh/go-homedir"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/cobra/doc"
	"github.com/spf13/viper"

	"github.com/pdf/gomaxsun"
	"github.com/pdf/gomaxsun/common"
	"github.com/pdf/gomaxsun/protocol"
	"github.com/pdf/gomaxsun/service"
)

var (
	client *gomaxsun.Client

	flagConfig string
	flagOutput string

	logger = logrus.New()
	app    = &cobra.Command{
		Use:   `maxsun`,
		Short: `maxsun controls RGB lighting through the MaxsunSync service`,
		Long: `maxsun controls RGB lighting through the MaxsunSync service.

The service must be installed, and maxsun must be run with administrator
privileges.`,
		SilenceUsage: true,
		PersistentPreRunE: func(c *cobra.Command, args []string) error {
			if err := initConfig(); err != nil {
				return err
			}
			setLogger()
			return nil
		},
	}

	cmdVersion = &cobra.Command{
		Use:   `version`,
		Short: `print the version number`,
		Run: func(c *cobra.Command, args []string) {
			fmt.Fprintf(c.OutOrStdout(), "maxsun %s\n", gomaxsun.VERSION)
		},
	}

	cmdGenerateBashComp = &cobra.Command{
		Use:   `bashcomp <filename>`,
		Short: `generate bash completion at <file>`,
		Args:  cobra.ExactArgs(1),
		RunE:  generateBashComp,
	}

	cmdGenerateDocs = &cobra.Command{
		Use:   `docs <path>`,
		Short: `generate markdown documentation at <path>`,
		Args:  cobra.ExactArgs(1),
		RunE:  generateDocs,
	}
)

func init() {
	gomaxsun.SetLogger(logger)

	flags := app.PersistentFlags()
	flags.StringVar(&flagConfig, `config`, ``, `config file (default is maxsun.yaml in ., ~/.maxsun or %ProgramData%\maxsun)`)
	flags.DurationP(`timeout`, `t`, common.DefaultTimeout, `timeout for each operation, 0 waits forever`)
	flags.StringP(`log-level`, `L`, `info`, `log level, one of: [debug,info,warn,error]`)
	flags.Bool(`check-service`, true, `start the service if it is not running`)
	flags.Duration(`service-timeout`, common.DefaultServiceTimeout, `how long to wait for the service to start`)
	flags.StringVarP(&flagOutput, `output`, `o`, `text`, `output format, one of: [text,json,yaml]`)

	_ = viper.BindPFlag(`timeout`, flags.Lookup(`timeout`))
	_ = viper.BindPFlag(`log.level`, flags.Lookup(`log-level`))
	_ = viper.BindPFlag(`service.check`, flags.Lookup(`check-service`))
	_ = viper.BindPFlag(`service.timeout`, flags.Lookup(`service-timeout`))
	viper.SetDefault(`service.name`, service.DefaultName)

	viper.SetEnvPrefix(`MAXSUN`)
	viper.SetEnvKeyReplacer(strings.NewReplacer(`.`, `_`, `-`, `_`))
	viper.AutomaticEnv()

	app.AddCommand(cmdScan)
	app.AddCommand(cmdApply)
	app.AddCommand(cmdSleep)
	app.AddCommand(cmdSync)
	app.AddCommand(cmdService)
	app.AddCommand(cmdWatch)
	app.AddCommand(cmdVersion)
	app.AddCommand(cmdGenerateBashComp)
	app.AddCommand(cmdGenerateDocs)
}

func main() {
	if err := app.Execute(); err != nil {
		os.Exit(1)
	}
}

func initConfig() error {
	if flagConfig != `` {
		viper.SetConfigFile(flagConfig)
	} else {
		viper.AddConfigPath(`.`)
		if home, err := homedir.Dir(); err == nil {
			viper.AddConfigPath(filepath.Join(home, `.maxsun`))
		}
		if programData := os.Getenv(`ProgramData`); programData != `` {
			viper.AddConfigPath(filepath.Join(programData, `maxsun`))
		}
		viper.SetConfigName(`maxsun`)
	}

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok && flagConfig == `` {
			return nil
		}
		return errors.Wrap(err, `reading config`)
	}
	logger.WithField(`file`, viper.ConfigFileUsed()).Debugln(`Loaded config`)
	return nil
}

// setupClient creates the client, and unless disabled makes sure the service
// is running
func setupClient(c *cobra.Command, args []string) error {
	client = gomaxsun.NewClient(&protocol.V1{})
	client.SetTimeout(viper.GetDuration(`timeout`))
	client.SetServiceTimeout(viper.GetDuration(`service.timeout`))

	if logger.IsLevelEnabled(logrus.DebugLevel) {
		if err := logEvents(client); err != nil {
			return err
		}
	}

	if !viper.GetBool(`service.check`) {
		return nil
	}
	return checkService()
}

func checkService() error {
	name := viper.GetString(`service.name`)
	ctl, err := service.Open(name)
	if err != nil {
		return err
	}
	defer ctl.Close()

	logger.WithField(`service`, name).Debugln(`Checking service`)
	return client.CheckService(ctl)
}

func closeClient(c *cobra.Command, args []string) {
	if client == nil {
		return
	}
	if err := client.Close(); err != nil {
		logger.WithError(err).Warnln(`Failed closing client`)
	}
}

// logEvents logs every event published by cl until it is closed
func logEvents(cl common.SubscriptionTarget) error {
	sub, err := cl.NewSubscription()
	if err != nil {
		return err
	}
	go func() {
		for evt := range sub.Events() {
			logger.WithFields(logrus.Fields{
				`event`: fmt.Sprintf(`%T`, evt),
				`data`:  fmt.Sprintf(`%+v`, evt),
			}).Debugln(`Client event`)
		}
	}()
	return nil
}

func generateBashComp(c *cobra.Command, args []string) error {
	buf := new(bytes.Buffer)
	if err := app.GenBashCompletion(buf); err != nil {
		return err
	}
	return os.WriteFile(args[0], buf.Bytes(), 0644)
}

func generateDocs(c *cobra.Command, args []string) error {
	path := args[0]
	if path[len(path)-1] != os.PathSeparator {
		path += string(os.PathSeparator)
	}
	return doc.GenMarkdownTree(app, path)
}

func setLogger() {
	switch viper.GetString(`log.level`) {
	case `debug`:
		logger.SetLevel(logrus.DebugLevel)
	case `info`:
		logger.SetLevel(logrus.InfoLevel)
	case `warn`:
		logger.SetLevel(logrus.WarnLevel)
	case `error`:
		logger.SetLevel(logrus.ErrorLevel)
	default:
		logger.SetLevel(logrus.InfoLevel)
	}
}
