package config

import (
	"strings"

	"github.com/btcsuite/btcd/chaincfg"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/spf13/viper"
)

const (
	// EnvPrefix 环境变量前缀，例如 IDENTITY_NETWORK
	EnvPrefix = "IDENTITY"

	NetworkKey           = "network"
	CurveKey             = "curve"
	LoggerLevelKey       = "logger.level"
	LoggerPrettyPrintKey = "logger.pretty_print_console"

	DefaultNetwork      = "mainnet"
	DefaultCurve        = "secp256k1"
	DefaultLoggerLevel  = "info"
	DefaultLoggerPretty = false
)

type Logger struct {
	Level              zerolog.Level
	PrettyPrintConsole bool
}

type Wallet struct {
	Network string
	Curve   string
}

type Server struct {
	Logger Logger
	Wallet Wallet
}

var networks = map[string]*chaincfg.Params{
	"mainnet":  &chaincfg.MainNetParams,
	"testnet":  &chaincfg.TestNet3Params,
	"testnet3": &chaincfg.TestNet3Params,
	"regtest":  &chaincfg.RegressionNetParams,
	"simnet":   &chaincfg.SimNetParams,
	"signet":   &chaincfg.SigNetParams,
}

// ChainParams maps the configured network name to its btcd parameters.
func (w Wallet) ChainParams() (*chaincfg.Params, error) {
	params, ok := networks[strings.ToLower(w.Network)]
	if !ok {
		return nil, errors.Errorf("unknown network %q", w.Network)
	}
	return params, nil
}

// NewViper returns a viper instance reading IDENTITY_* environment variables
// with all defaults set.
func NewViper() *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault(NetworkKey, DefaultNetwork)
	v.SetDefault(CurveKey, DefaultCurve)
	v.SetDefault(LoggerLevelKey, DefaultLoggerLevel)
	v.SetDefault(LoggerPrettyPrintKey, DefaultLoggerPretty)

	return v
}

// FromViper builds and validates a Server config.
func FromViper(v *viper.Viper) (Server, error) {
	level, err := zerolog.ParseLevel(v.GetString(LoggerLevelKey))
	if err != nil {
		return Server{}, errors.Wrapf(err, "invalid %s", LoggerLevelKey)
	}

	cfg := Server{
		Logger: Logger{
			Level:              level,
			PrettyPrintConsole: v.GetBool(LoggerPrettyPrintKey),
		},
		Wallet: Wallet{
			Network: v.GetString(NetworkKey),
			Curve:   v.GetString(CurveKey),
		},
	}

	if _, err := cfg.Wallet.ChainParams(); err != nil {
		return Server{}, err
	}

	return cfg, nil
}

// DefaultServiceConfigFromEnv returns the server config as parsed from environment variables
// and their respective defaults defined above.
func DefaultServiceConfigFromEnv() (Server, error) {
	return FromViper(NewViper())
}
