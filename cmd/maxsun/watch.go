package main

import (
	"os"
	"os/signal"
	"reflect"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	tomb "gopkg.in/tomb.v2"

	"github.com/pdf/gomaxsun/common"
)

const defaultWatchInterval = 2 * time.Second

var (
	flagWatchInterval time.Duration

	cmdWatch = &cobra.Command{
		Use:     `watch`,
		Short:   `log device changes until interrupted`,
		PreRunE: setupClient,
		PostRun: closeClient,
		RunE: func(c *cobra.Command, args []string) error {
			w := newWatcher(client.ScanDevices, flagWatchInterval, logDevices)
			w.Start()

			sig := make(chan os.Signal, 1)
			signal.Notify(sig, os.Interrupt)
			defer signal.Stop(sig)
			select {
			case <-sig:
				logger.Infoln(`Stopping watch`)
			case <-w.t.Dying():
			}
			return w.Stop()
		},
	}
)

func init() {
	cmdWatch.Flags().DurationVarP(&flagWatchInterval, `interval`, `i`, defaultWatchInterval, `time between scans`)
}

type scanFunc func() ([]common.DeviceInfo, error)

// watcher scans the devices on an interval and reports when the result
// differs from the previous scan
type watcher struct {
	scan     scanFunc
	interval time.Duration
	onChange func([]common.DeviceInfo)
	last     []common.DeviceInfo
	seen     bool
	t        tomb.Tomb
}

// newWatcher returns a watcher polling scan every interval.  A non-positive
// interval selects defaultWatchInterval.
func newWatcher(scan scanFunc, interval time.Duration, onChange func([]common.DeviceInfo)) *watcher {
	if interval <= 0 {
		interval = defaultWatchInterval
	}
	return &watcher{
		scan:     scan,
		interval: interval,
		onChange: onChange,
	}
}

func (w *watcher) Start() {
	w.t.Go(w.loop)
}

func (w *watcher) Stop() error {
	w.t.Kill(nil)
	return w.t.Wait()
}

func (w *watcher) loop() error {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()
	w.poll()
	for {
		select {
		case <-ticker.C:
			w.poll()
		case <-w.t.Dying():
			return nil
		}
	}
}

func (w *watcher) poll() {
	devices, err := w.scan()
	if err != nil {
		logger.WithError(err).Warnln(`Scan failed`)
		return
	}
	if w.seen && reflect.DeepEqual(devices, w.last) {
		return
	}
	w.seen = true
	w.last = devices
	w.onChange(devices)
}

func logDevices(devices []common.DeviceInfo) {
	for _, dev := range devices {
		logger.WithFields(logrus.Fields{
			`index`: dev.Index,
			`name`:  dev.Name,
			`type`:  dev.Type,
			`sync`:  dev.SyncStatus,
		}).Infoln(`Device`)
	}
	logger.WithField(`count`, len(devices)).Infoln(`Devices changed`)
}
