package keypair

import (
	"crypto/rand"
	"io"

	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/decred/dcrd/dcrec/secp256k1/v4"
	"github.com/pkg/errors"

	"github.com/kashguard/go-btc-identity/internal/crypto"
	"github.com/kashguard/go-btc-identity/internal/crypto/curve"
)

const (
	// PrivKeySize 私钥标量长度（字节）
	PrivKeySize = 32

	// a uniformly random 32 byte string lands outside [1, N-1] with
	// probability ~2^-128, so only a broken source needs more than one attempt
	maxAttempts = 8
)

// KeyPair secp256k1 私钥及其对应公钥
type KeyPair struct {
	privateKey *btcec.PrivateKey
	publicKey  *btcec.PublicKey
}

// PrivateKey returns the private scalar. Callers outside the wallet must not hold on to it.
func (k *KeyPair) PrivateKey() *btcec.PrivateKey {
	return k.privateKey
}

// PublicKey returns P = d·G.
func (k *KeyPair) PublicKey() *btcec.PublicKey {
	return k.publicKey
}

// Option configures a Generator.
type Option func(*Generator)

// WithRandSource overrides the entropy source. Only meant for tests.
func WithRandSource(r io.Reader) Option {
	return func(g *Generator) {
		g.rand = r
	}
}

// Generator 在固定的 secp256k1 曲线域上生成密钥对
type Generator struct {
	domain *curve.Domain
	rand   io.Reader
}

// NewGenerator 创建密钥对生成器，domain 由 curve.Init 提供
func NewGenerator(domain *curve.Domain, opts ...Option) *Generator {
	g := &Generator{domain: domain}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Generate draws fresh entropy and returns a new keypair. Failures are never retried.
func (g *Generator) Generate() (*KeyPair, error) {
	if g.domain == nil || g.domain.Curve == nil {
		return nil, errors.Wrap(crypto.ErrCryptoUnavailable, "curve domain not initialized")
	}
	if g.domain.Name != curve.Secp256k1 {
		return nil, errors.Wrapf(crypto.ErrCryptoUnavailable, "unsupported curve %q", g.domain.Name)
	}

	src := g.rand
	if src == nil {
		src = rand.Reader
	}

	var buf [PrivKeySize]byte
	defer func() {
		for i := range buf {
			buf[i] = 0
		}
	}()

	for i := 0; i < maxAttempts; i++ {
		if _, err := io.ReadFull(src, buf[:]); err != nil {
			return nil, errors.Wrapf(crypto.ErrRandomness, "failed to read entropy: %v", err)
		}

		var scalar secp256k1.ModNScalar
		overflow := scalar.SetByteSlice(buf[:])
		if overflow || scalar.IsZero() {
			scalar.Zero()
			continue
		}

		privKey := secp256k1.NewPrivateKey(&scalar)
		scalar.Zero()

		return &KeyPair{
			privateKey: privKey,
			publicKey:  privKey.PubKey(),
		}, nil
	}

	return nil, errors.Wrapf(crypto.ErrRandomness, "no valid scalar after %d attempts", maxAttempts)
}
