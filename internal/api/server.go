package api

import (
	"encoding/hex"

	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog/log"

	"github.com/kashguard/go-btc-identity/internal/address"
	"github.com/kashguard/go-btc-identity/internal/config"
	"github.com/kashguard/go-btc-identity/internal/crypto"
	"github.com/kashguard/go-btc-identity/internal/crypto/curve"
	"github.com/kashguard/go-btc-identity/internal/crypto/keypair"
	"github.com/kashguard/go-btc-identity/internal/metrics"
	"github.com/kashguard/go-btc-identity/internal/wallet"
)

// Server 组合根：持有曲线域、密钥生成器、地址派生器和指标
type Server struct {
	Config    config.Server
	Domain    *curve.Domain
	Generator *keypair.Generator
	Deriver   *address.Deriver
	Registry  *prometheus.Registry
	Metrics   *metrics.Metrics
}

func newServerWithComponents(
	cfg config.Server,
	domain *curve.Domain,
	generator *keypair.Generator,
	deriver *address.Deriver,
	registry *prometheus.Registry,
	m *metrics.Metrics,
) *Server {
	return &Server{
		Config:    cfg,
		Domain:    domain,
		Generator: generator,
		Deriver:   deriver,
		Registry:  registry,
		Metrics:   m,
	}
}

// CreateWallet 生成新的钱包；失败时记录日志并返回错误，不会返回半初始化的钱包
func (s *Server) CreateWallet() (*wallet.Wallet, error) {
	w, err := wallet.Create(s.Generator, s.Deriver)
	if err != nil {
		s.Metrics.WalletCreateFailed(failureReason(err))
		log.Error().Err(err).Str("curve", s.Domain.Name).Msg("Failed to create wallet")
		return nil, err
	}

	s.Metrics.WalletCreated()
	log.Debug().
		Str("public_key", hex.EncodeToString(w.PublicKeyBytes())).
		Msg("Wallet created")

	return w, nil
}

// DeriveAddress derives the address of a SEC1 encoded public key on the configured network.
func (s *Server) DeriveAddress(pubKey []byte) (string, error) {
	addr, err := s.Deriver.DeriveAddress(pubKey)
	if err != nil {
		s.Metrics.AddressDerivationFailed(failureReason(err))
		log.Warn().Err(err).Int("public_key_len", len(pubKey)).Msg("Failed to derive address")
		return "", err
	}

	s.Metrics.AddressDerived()
	log.Debug().
		Str("address", addr).
		Str("network", s.Deriver.Network()).
		Msg("Address derived")

	return addr, nil
}

// WalletAddress derives the address of w through the server so it is counted.
func (s *Server) WalletAddress(w *wallet.Wallet) (string, error) {
	return s.DeriveAddress(w.PublicKeyBytes())
}

func failureReason(err error) string {
	switch {
	case errors.Is(err, crypto.ErrCryptoUnavailable):
		return metrics.ReasonCryptoUnavailable
	case errors.Is(err, crypto.ErrRandomness):
		return metrics.ReasonRandomness
	case errors.Is(err, crypto.ErrEncoding):
		return metrics.ReasonEncoding
	default:
		return metrics.ReasonOther
	}
}
