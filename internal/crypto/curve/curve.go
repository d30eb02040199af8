package curve

import (
	"math/big"
	"sync"

	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/pkg/errors"

	"github.com/kashguard/go-btc-identity/internal/crypto"
)

// Secp256k1 is the only curve domain keys are generated on.
const Secp256k1 = "secp256k1"

// Domain 椭圆曲线域参数
type Domain struct {
	Name  string
	Curve *btcec.KoblitzCurve
}

// N returns the order of the base point.
func (d *Domain) N() *big.Int {
	return d.Curve.Params().N
}

var (
	initOnce   sync.Once
	initDomain *Domain
	initErr    error
)

// Init resolves the secp256k1 domain once per process. Later calls return the
// same result without resolving again.
func Init() (*Domain, error) {
	initOnce.Do(func() {
		initDomain, initErr = Resolve(Secp256k1)
	})
	return initDomain, initErr
}

// Resolve looks up the domain parameters for name. Only secp256k1 is known.
func Resolve(name string) (*Domain, error) {
	if name != Secp256k1 {
		return nil, errors.Wrapf(crypto.ErrCryptoUnavailable, "unknown curve %q", name)
	}

	c := btcec.S256()
	if c == nil || c.Params() == nil || c.Params().N == nil || c.Params().N.Sign() <= 0 {
		return nil, errors.Wrap(crypto.ErrCryptoUnavailable, "secp256k1 parameters not resolvable")
	}

	return &Domain{Name: name, Curve: c}, nil
}
