package address

import (
	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/btcsuite/btcd/chaincfg"
	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/pkg/errors"
	"golang.org/x/crypto/ripemd160"

	"github.com/kashguard/go-btc-identity/internal/crypto"
	"github.com/kashguard/go-btc-identity/internal/crypto/base58check"
	"github.com/kashguard/go-btc-identity/internal/crypto/checksum"
)

const (
	// HashSize RIPEMD-160 输出长度
	HashSize = ripemd160.Size
	// PayloadSize 版本字节 + hash160
	PayloadSize = 1 + HashSize
	// BinarySize 版本字节 + hash160 + 校验码
	BinarySize = PayloadSize + checksum.Size
)

// Deriver 根据公钥生成 Bitcoin P2PKH 风格地址
type Deriver struct {
	params *chaincfg.Params
}

// NewDeriver 创建地址派生器，params 为空时使用主网
func NewDeriver(params *chaincfg.Params) *Deriver {
	if params == nil {
		params = &chaincfg.MainNetParams
	}
	return &Deriver{params: params}
}

// Version returns the version byte prefixed to every address (0x00 on mainnet).
func (d *Deriver) Version() byte {
	return d.params.PubKeyHashAddrID
}

// Network returns the name of the configured network.
func (d *Deriver) Network() string {
	return d.params.Name
}

// PubKeySize 压缩公钥长度，地址只接受这一种编码
const PubKeySize = btcec.PubKeyBytesLenCompressed

// ValidatePublicKey checks that pubKey is a 33 byte SEC1 compressed secp256k1
// point. Uncompressed and hybrid encodings are rejected, never converted.
func ValidatePublicKey(pubKey []byte) error {
	if len(pubKey) != PubKeySize {
		return errors.Wrapf(crypto.ErrEncoding, "public key must be %d bytes compressed, got %d", PubKeySize, len(pubKey))
	}
	if pubKey[0] != 0x02 && pubKey[0] != 0x03 {
		return errors.Wrapf(crypto.ErrEncoding, "invalid compressed public key prefix 0x%02x", pubKey[0])
	}
	if _, err := btcec.ParsePubKey(pubKey); err != nil {
		return errors.Wrapf(crypto.ErrEncoding, "failed to parse secp256k1 public key: %v", err)
	}
	return nil
}

// Hash160 returns RIPEMD-160(SHA-256(b)).
func Hash160(b []byte) []byte {
	sha := chainhash.HashB(b)
	h := ripemd160.New()
	_, _ = h.Write(sha)
	return h.Sum(nil)
}

// DeriveAddress 根据公钥生成地址（Base58 编码）
// 输入必须是 33 字节压缩公钥，哈希的就是传入的字节本身
func (d *Deriver) DeriveAddress(pubKey []byte) (string, error) {
	if err := ValidatePublicKey(pubKey); err != nil {
		return "", err
	}

	// 1. 计算公钥哈希：SHA256 -> RIPEMD160
	hash160 := Hash160(pubKey)
	if len(hash160) != HashSize {
		return "", errors.Wrapf(crypto.ErrEncoding, "unexpected hash160 length %d", len(hash160))
	}

	// 2. 添加版本字节
	versionedPayload := make([]byte, 0, BinarySize)
	versionedPayload = append(versionedPayload, d.Version())
	versionedPayload = append(versionedPayload, hash160...)

	// 3. 计算校验和：SHA256(SHA256(version + hash160)) 的前4字节
	sum := checksum.Sum(versionedPayload)

	// 4. 拼接：版本字节 + hash160 + 校验和
	binaryAddress := append(versionedPayload, sum...)
	if len(binaryAddress) != BinarySize {
		return "", errors.Wrapf(crypto.ErrEncoding, "unexpected binary address length %d", len(binaryAddress))
	}

	// 5. Base58 编码生成最终地址
	return base58check.Encode(binaryAddress), nil
}

// Decoded 解码后的地址
type Decoded struct {
	Version byte
	Hash160 []byte
}

// Decode verifies the checksum of addr and splits it into version and hash160.
func (d *Deriver) Decode(addr string) (*Decoded, error) {
	payload, version, err := base58check.CheckDecode(addr)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to decode address %q", addr)
	}
	if len(payload) != HashSize {
		return nil, errors.Wrapf(crypto.ErrEncoding, "invalid hash160 length %d", len(payload))
	}

	return &Decoded{Version: version, Hash160: payload}, nil
}

// Validate decodes addr and checks that it carries this network's version byte.
func (d *Deriver) Validate(addr string) error {
	decoded, err := d.Decode(addr)
	if err != nil {
		return err
	}
	if decoded.Version != d.Version() {
		return errors.Wrapf(crypto.ErrEncoding, "address version 0x%02x does not match %s (0x%02x)",
			decoded.Version, d.Network(), d.Version())
	}
	return nil
}
