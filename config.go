package catalog

import (
	"errors"
	"fmt"
	"reflect"
	"slices"
	"strings"

	"github.com/mitchellh/mapstructure"
	"github.com/spf13/viper"
)

// Config is a structure used for service configuration.
// It is intended to be mapped by viper.
type Config struct {
	ApplicationName string `mapstructure:"application_name"`
	InstanceName    string `mapstructure:"instance_name"`

	Environment Environment `mapstructure:"environment"`

	HTTP       HTTP       `mapstructure:"http"`
	OTEL       OTEL       `mapstructure:"otel"`
	Repository Repository `mapstructure:"repository"`
	Pokedex    Pokedex    `mapstructure:"pokedex"`
}

const (
	LocalEnv       Environment = "local"
	TestEnv        Environment = "test"
	DevelopmentEnv Environment = "dev"
	ProductionEnv  Environment = "prod"
)

// Environments is the list of all supported environments.
func Environments() []Environment {
	return []Environment{LocalEnv, TestEnv, DevelopmentEnv, ProductionEnv}
}

type Environment string

type (
	HTTP struct {
		Port                  int  `mapstructure:"port"                    json:"port"`
		StatusEndpointEnabled bool `mapstructure:"status_endpoint_enabled" json:"-"`
		StatusEndpointPort    int  `mapstructure:"status_endpoint_port"    json:"-"`
	}

	OTEL struct {
		Host     string `mapstructure:"host"     json:"host"`
		Port     int    `mapstructure:"port"     json:"port"`
		Hostname string `mapstructure:"hostname" json:"hostname"`
	}

	// Repository configures the in memory repositories.
	// If DataDir is empty, no data survives a restart.
	Repository struct {
		DataDir string `mapstructure:"data_dir" json:"dataDir"`
	}

	Pokedex struct {
		SeedURL string `mapstructure:"seed_url" json:"seedUrl"`
	}
)

const envPrefix = "CATALOG"

// DefaultViper returns a new viper instance with all default values
// from Config set.
// Every value can be overwritten by an environment variable, e.g.
// CATALOG_HTTP_PORT for http.port.
func DefaultViper() *Viper {
	vip := viper.New()

	vip.SetEnvPrefix(envPrefix)
	vip.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	vip.AutomaticEnv()

	vip.SetDefault("application_name", "catalog")
	vip.SetDefault("instance_name", "")

	vip.SetDefault("environment", "local")

	vip.SetDefault("http.port", 8080)
	vip.SetDefault("http.status_endpoint_enabled", true)
	vip.SetDefault("http.status_endpoint_port", 2223)

	vip.SetDefault("otel.host", "localhost")
	vip.SetDefault("otel.port", 4317)
	vip.SetDefault("otel.hostname", "")

	vip.SetDefault("repository.data_dir", "")

	vip.SetDefault("pokedex.seed_url", "https://pokeapi.co/api/v2/pokemon?offset=0&limit=650")

	return &Viper{Viper: vip}
}

var errConfigLoadFailed = errors.New("loading configuration failed")

// Viper is a wrapper around viper.Viper for configuration loading.
// The only purpose is to overwrite the Unmarshal method,
// so that only allowed values for an Environment are accepted.
type Viper struct {
	*viper.Viper
}

func (vip *Viper) Unmarshal(rawVal any, opts ...viper.DecoderConfigOption) error {
	opts = append(opts, viper.DecodeHook(allowedEnvironmentHookFunc()))

	err := vip.Viper.Unmarshal(rawVal, opts...)
	if err != nil {
		return fmt.Errorf("%w: could not decode configuration into struct: %v", errConfigLoadFailed, err) //nolint:errorlint,lll // prevent err in api
	}

	return nil
}

// Load reads the optional config file and returns the resulting Config.
// An empty file uses only the defaults and environment variables.
func (vip *Viper) Load(file string) (*Config, error) {
	if file != "" {
		vip.SetConfigFile(file)

		if err := vip.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("%w: %w", errConfigLoadFailed, err)
		}
	}

	conf := &Config{}
	if err := vip.Unmarshal(conf); err != nil {
		return nil, err
	}

	return conf, nil
}

func allowedEnvironmentHookFunc() mapstructure.DecodeHookFuncType {
	return func(_ reflect.Type, t reflect.Type, data any) (any, error) {
		if t != reflect.TypeOf(Environment("")) {
			return data, nil
		}

		env := Environments()

		if s, ok := data.(string); ok && slices.Contains(env, Environment(s)) {
			return data, nil
		}

		e := make([]string, 0, len(env))
		for _, env := range env {
			e = append(e, string(env))
		}

		return data, fmt.Errorf("value is not allowed, use one of: %s", strings.Join(e, ", ")) //nolint:err113,lll // accept dynamic error
	}
}
