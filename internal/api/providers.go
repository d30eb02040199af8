package api

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/kashguard/go-btc-identity/internal/address"
	"github.com/kashguard/go-btc-identity/internal/config"
	"github.com/kashguard/go-btc-identity/internal/crypto/curve"
	"github.com/kashguard/go-btc-identity/internal/crypto/keypair"
)

// PROVIDERS - define here only providers that for various reasons can't live in their corresponding packages
// or for wrapping providers that only accept sub-configs.
// https://github.com/google/wire/blob/main/docs/guide.md#defining-providers

// NewCurveDomain checks the configured curve and performs the once-per-process curve initialization.
func NewCurveDomain(cfg config.Server) (*curve.Domain, error) {
	if _, err := curve.Resolve(cfg.Wallet.Curve); err != nil {
		return nil, err
	}
	return curve.Init()
}

func NewGenerator(domain *curve.Domain) *keypair.Generator {
	return keypair.NewGenerator(domain)
}

func NewDeriver(cfg config.Server) (*address.Deriver, error) {
	params, err := cfg.Wallet.ChainParams()
	if err != nil {
		return nil, err
	}
	return address.NewDeriver(params), nil
}

func NewRegistry() *prometheus.Registry {
	return prometheus.NewRegistry()
}
