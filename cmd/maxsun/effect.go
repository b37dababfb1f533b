package main

import (
	"fmt"

	colorful "github.com/lucasb-eyer/go-colorful"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdf/gomaxsun/common"
)

var (
	cmdApply = &cobra.Command{
		Use:   `apply`,
		Short: `apply a lighting effect to all synchronized devices`,
		Long: `apply a lighting effect to all synchronized devices.

Parameters not given as flags are read from the effect section of the config
file, and default to a static blue.`,
		PreRunE: setupClient,
		PostRun: closeClient,
		RunE: func(c *cobra.Command, args []string) error {
			effect, err := effectFromConfig(viper.GetViper())
			if err != nil {
				return err
			}
			logger.WithField(`effect`, fmt.Sprintf(`%+v`, effect)).Infoln(`Applying effect`)
			return client.ApplyEffect(effect)
		},
	}

	cmdSleep = &cobra.Command{
		Use:     `sleep`,
		Short:   `turn synchronized lighting off`,
		PreRunE: setupClient,
		PostRun: closeClient,
		RunE: func(c *cobra.Command, args []string) error {
			logger.Infoln(`Applying sleep effect`)
			return client.ApplyEffectForSleep()
		},
	}
)

func init() {
	def := common.DefaultEffect()
	flags := cmdApply.Flags()
	flags.IntP(`speed`, `s`, def.Speed, `effect speed`)
	flags.StringP(`mode`, `m`, def.Mode.String(), `effect mode, one of: [Single,Breathing,ColorCycle,Rainbow,CPU,Music,Close]`)
	flags.Int(`cpu-low`, def.CPULow, `low CPU threshold for the CPU mode`)
	flags.Int(`cpu-high`, def.CPUHigh, `high CPU threshold for the CPU mode`)
	flags.Int(`music-mode`, def.MusicMode, `music mode variant`)
	flags.Float64(`hue`, def.Hue, `hue in degrees, 0-360`)
	flags.Float64(`saturation`, def.Saturation, `saturation, 0-1`)
	flags.Float64(`value`, def.Value, `value (brightness), 0-1`)
	flags.StringP(`color`, `c`, ``, `hex color, e.g. #3a6bff, overrides hue, saturation and value`)

	for key, flag := range map[string]string{
		`effect.speed`:      `speed`,
		`effect.mode`:       `mode`,
		`effect.cpu_low`:    `cpu-low`,
		`effect.cpu_high`:   `cpu-high`,
		`effect.music_mode`: `music-mode`,
		`effect.hue`:        `hue`,
		`effect.saturation`: `saturation`,
		`effect.value`:      `value`,
		`effect.color`:      `color`,
	} {
		_ = viper.BindPFlag(key, flags.Lookup(flag))
	}
}

// effectFromConfig builds an effect from the effect.* settings in v
func effectFromConfig(v *viper.Viper) (common.Effect, error) {
	mode, err := common.ParseEffectMode(v.GetString(`effect.mode`))
	if err != nil {
		return common.Effect{}, err
	}
	effect := common.Effect{
		Speed:      v.GetInt(`effect.speed`),
		Mode:       mode,
		CPULow:     v.GetInt(`effect.cpu_low`),
		CPUHigh:    v.GetInt(`effect.cpu_high`),
		MusicMode:  v.GetInt(`effect.music_mode`),
		Hue:        v.GetFloat64(`effect.hue`),
		Saturation: v.GetFloat64(`effect.saturation`),
		Value:      v.GetFloat64(`effect.value`),
	}
	if hex := v.GetString(`effect.color`); hex != `` {
		color, err := colorful.Hex(hex)
		if err != nil {
			return common.Effect{}, errors.Wrapf(err, `invalid color %q`, hex)
		}
		effect = effect.WithColor(color)
	}
	return effect, nil
}
