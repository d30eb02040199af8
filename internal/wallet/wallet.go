package wallet

import (
	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/btcsuite/btcd/btcec/v2/ecdsa"
	"github.com/pkg/errors"

	"github.com/kashguard/go-btc-identity/internal/address"
	"github.com/kashguard/go-btc-identity/internal/crypto/keypair"
)

// DigestSize 待签名摘要长度
const DigestSize = 32

var (
	// ErrNilDeriver 未提供地址派生器
	ErrNilDeriver = errors.New("address deriver must not be nil")
	// ErrNilGenerator 未提供密钥生成器
	ErrNilGenerator = errors.New("key generator must not be nil")
	// ErrInvalidDigest 待签名摘要不是 32 字节
	ErrInvalidDigest = errors.New("digest must be 32 bytes")
)

// KeyGenerator produces a fresh keypair on every call.
type KeyGenerator interface {
	Generate() (*keypair.KeyPair, error)
}

// Wallet 持有一对 secp256k1 密钥，创建后不可变，可被并发读取
type Wallet struct {
	privateKey *btcec.PrivateKey
	publicKey  *btcec.PublicKey
	deriver    *address.Deriver
}

// Create either returns a wallet holding a complete keypair or an error; never both, never neither.
func Create(gen KeyGenerator, deriver *address.Deriver) (*Wallet, error) {
	if gen == nil {
		return nil, ErrNilGenerator
	}
	if deriver == nil {
		return nil, ErrNilDeriver
	}

	kp, err := gen.Generate()
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate keypair")
	}
	if kp == nil || kp.PrivateKey() == nil || kp.PublicKey() == nil {
		return nil, errors.New("generator returned incomplete keypair")
	}

	return &Wallet{
		privateKey: kp.PrivateKey(),
		publicKey:  kp.PublicKey(),
		deriver:    deriver,
	}, nil
}

// PublicKey returns the wallet's public key.
func (w *Wallet) PublicKey() *btcec.PublicKey {
	return w.publicKey
}

// PublicKeyBytes returns the 33 byte SEC1 compressed public key, the form addresses are derived from.
func (w *Wallet) PublicKeyBytes() []byte {
	return w.publicKey.SerializeCompressed()
}

// Address 计算钱包地址
func (w *Wallet) Address() (string, error) {
	return w.deriver.DeriveAddress(w.PublicKeyBytes())
}

// Sign returns a DER encoded ECDSA signature over a 32 byte digest.
func (w *Wallet) Sign(digest []byte) ([]byte, error) {
	if len(digest) != DigestSize {
		return nil, errors.Wrapf(ErrInvalidDigest, "got %d bytes", len(digest))
	}
	return ecdsa.Sign(w.privateKey, digest).Serialize(), nil
}

// Verify reports whether sig is a valid DER signature of digest by this wallet's key.
func (w *Wallet) Verify(digest, sig []byte) bool {
	if len(digest) != DigestSize {
		return false
	}
	parsed, err := ecdsa.ParseDERSignature(sig)
	if err != nil {
		return false
	}
	return parsed.Verify(digest, w.publicKey)
}
