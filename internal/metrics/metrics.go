package metrics

import (
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "identity"

// Failure reasons used as label values.
const (
	ReasonCryptoUnavailable = "crypto_unavailable"
	ReasonRandomness        = "randomness"
	ReasonEncoding          = "encoding"
	ReasonOther             = "other"
)

// Metrics wallet 与地址派生相关的计数器
type Metrics struct {
	walletsCreated     prometheus.Counter
	walletFailures     *prometheus.CounterVec
	addressesDerived   prometheus.Counter
	derivationFailures *prometheus.CounterVec
}

func New(reg prometheus.Registerer) (*Metrics, error) {
	m := &Metrics{
		walletsCreated: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "wallets_created_total",
			Help:      "Number of wallets created successfully.",
		}),
		walletFailures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "wallet_create_failures_total",
			Help:      "Number of failed wallet creations by reason.",
		}, []string{"reason"}),
		addressesDerived: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "addresses_derived_total",
			Help:      "Number of addresses derived successfully.",
		}),
		derivationFailures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "address_derivation_failures_total",
			Help:      "Number of failed address derivations by reason.",
		}, []string{"reason"}),
	}

	for _, c := range []prometheus.Collector{
		m.walletsCreated,
		m.walletFailures,
		m.addressesDerived,
		m.derivationFailures,
	} {
		if err := reg.Register(c); err != nil {
			return nil, errors.Wrap(err, "failed to register identity metrics")
		}
	}

	return m, nil
}

func (m *Metrics) WalletCreated() {
	m.walletsCreated.Inc()
}

func (m *Metrics) WalletCreateFailed(reason string) {
	m.walletFailures.WithLabelValues(reason).Inc()
}

func (m *Metrics) AddressDerived() {
	m.addressesDerived.Inc()
}

func (m *Metrics) AddressDerivationFailed(reason string) {
	m.derivationFailures.WithLabelValues(reason).Inc()
}
