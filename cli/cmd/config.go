package cmd

import (
	"errors"
	"io/fs"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/malusev998/currency-rates"
	"github.com/malusev998/currency-rates/fetchers"
)

const (
	envPrefix         = "CURRENCY_RATES"
	defaultConfigFile = "./config.yml"
)

type settings struct {
	URL   string
	Debug bool
	Order currency.Order
}

func newViper(flags *pflag.FlagSet) (*viper.Viper, error) {
	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.AutomaticEnv()
	v.SetDefault("url", fetchers.PrivatBankURL)
	v.SetDefault("order", string(currency.LexicalOrder))

	for _, key := range []string{"url", "debug", "order"} {
		if err := v.BindPFlag(key, flags.Lookup(key)); err != nil {
			return nil, err
		}
	}

	return v, nil
}

// readConfigFile loads the yaml file when present. The default file is optional,
// a file given explicitly must exist.
func readConfigFile(v *viper.Viper, path string, explicit bool) error {
	if path == "" {
		return nil
	}

	v.SetConfigFile(path)

	err := v.ReadInConfig()

	if err != nil && !explicit && errors.Is(err, fs.ErrNotExist) {
		return nil
	}

	return err
}

func getSettings(v *viper.Viper) (settings, error) {
	order, err := currency.ConvertToOrderFromString(v.GetString("order"))

	if err != nil {
		return settings{}, err
	}

	return settings{
		URL:   v.GetString("url"),
		Debug: v.GetBool("debug"),
		Order: order,
	}, nil
}
