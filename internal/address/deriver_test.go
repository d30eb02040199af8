package address_test

import (
	"crypto/sha256"
	"encoding/hex"
	"testing"

	"github.com/btcsuite/btcd/chaincfg"
	"github.com/btcsuite/btcutil/base58"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/ripemd160"

	"github.com/kashguard/go-btc-identity/internal/address"
	"github.com/kashguard/go-btc-identity/internal/crypto"
)

const (
	generatorCompressed   = "0279be667ef9dcbbac55a06295ce870b07029bfcdb2dce28d959f2815b16f81798"
	generatorUncompressed = "0479be667ef9dcbbac55a06295ce870b07029bfcdb2dce28d959f2815b16f81798" +
		"483ada7726a3c4655da4fbfc0e1108a8fd17b448a68554199c47d08ffb10d4b8"
)

func mustHex(t *testing.T, s string) []byte {
	t.Helper()
	b, err := hex.DecodeString(s)
	require.NoError(t, err)
	return b
}

// referenceAddress recomputes the pipeline step by step without the deriver.
func referenceAddress(version byte, pubKey []byte) string {
	hash1 := sha256.Sum256(pubKey)
	r := ripemd160.New()
	r.Write(hash1[:])
	hash2 := r.Sum(nil)

	versionedPayload := append([]byte{version}, hash2...)
	first := sha256.Sum256(versionedPayload)
	second := sha256.Sum256(first[:])

	return base58.Encode(append(versionedPayload, second[:4]...))
}

func TestDeriveAddressKnownVectors(t *testing.T) {
	tests := []struct {
		pubKey  string
		hash160 string
		address string
	}{
		{
			pubKey:  generatorCompressed,
			hash160: "751e76e8199196d454941c45d1b3a323f1433bd6",
			address: "1BgGZ9tcN4rm9KBzDn7KprQz87SZ26SAMH",
		},
		{
			pubKey:  "0250863ad64a87ae8a2fe83c1af1a8403cb53f53e486d8511dad8a04887e5b2352",
			hash160: "f54a5851e9372b87810a8e60cdd2e7cfd80b6e31",
			address: "1PMycacnJaSqwwJqjawXBErnLsZ7RkXUAs",
		},
	}

	d := address.NewDeriver(nil)
	for _, tt := range tests {
		pk := mustHex(t, tt.pubKey)

		assert.Equal(t, tt.hash160, hex.EncodeToString(address.Hash160(pk)))

		addr, err := d.DeriveAddress(pk)
		require.NoError(t, err)
		assert.Equal(t, tt.address, addr)
		assert.Equal(t, referenceAddress(0x00, pk), addr)
	}
}

func TestDeriveAddressIsDeterministic(t *testing.T) {
	d := address.NewDeriver(&chaincfg.MainNetParams)
	pk := mustHex(t, generatorCompressed)

	first, err := d.DeriveAddress(pk)
	require.NoError(t, err)
	second, err := d.DeriveAddress(pk)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, mustHex(t, generatorCompressed), pk, "input must not be mutated")
}

func TestDeriveAddressRejectsNonCompressedEncodings(t *testing.T) {
	d := address.NewDeriver(nil)

	hybrid := mustHex(t, generatorUncompressed)
	hybrid[0] = 0x06

	for _, pk := range [][]byte{mustHex(t, generatorUncompressed), hybrid} {
		addr, err := d.DeriveAddress(pk)
		assert.Empty(t, addr)
		assert.ErrorIs(t, err, crypto.ErrEncoding)
		assert.ErrorIs(t, address.ValidatePublicKey(pk), crypto.ErrEncoding)
	}
}

func TestDeriveAddressHashesInputBytes(t *testing.T) {
	accepted := []string{
		generatorCompressed,
		"0250863ad64a87ae8a2fe83c1af1a8403cb53f53e486d8511dad8a04887e5b2352",
		// odd y
		"03c6047f9441ed7d6d3045406e95c07cd85c778e4b8cef3ca7abac09b95c709ee5",
	}

	d := address.NewDeriver(nil)
	for _, in := range accepted {
		pk := mustHex(t, in)
		require.NoError(t, address.ValidatePublicKey(pk))

		addr, err := d.DeriveAddress(pk)
		require.NoError(t, err)
		assert.Equal(t, referenceAddress(0x00, pk), addr, in)
	}
}

func TestDeriveAddressNetworkVersion(t *testing.T) {
	pk := mustHex(t, generatorCompressed)

	d := address.NewDeriver(&chaincfg.TestNet3Params)
	assert.Equal(t, byte(0x6f), d.Version())

	addr, err := d.DeriveAddress(pk)
	require.NoError(t, err)
	assert.Equal(t, referenceAddress(0x6f, pk), addr)
	assert.Contains(t, []byte{'m', 'n'}, addr[0])
}

func TestDeriveAddressMalformedKey(t *testing.T) {
	inputs := []string{
		"",
		"02",
		generatorUncompressed,
		"0579be667ef9dcbbac55a06295ce870b07029bfcdb2dce28d959f2815b16f81798",
		// x coordinate outside the field
		"02fffffffffffffffffffffffffffffffffffffffffffffffffffffffefffffc2f",
		generatorUncompressed[:64],
	}

	d := address.NewDeriver(nil)
	for _, in := range inputs {
		addr, err := d.DeriveAddress(mustHex(t, in))
		assert.Empty(t, addr)
		assert.ErrorIs(t, err, crypto.ErrEncoding, in)
	}
}

func TestDecode(t *testing.T) {
	d := address.NewDeriver(nil)

	decoded, err := d.Decode("1BgGZ9tcN4rm9KBzDn7KprQz87SZ26SAMH")
	require.NoError(t, err)
	assert.Equal(t, byte(0x00), decoded.Version)
	assert.Equal(t, "751e76e8199196d454941c45d1b3a323f1433bd6", hex.EncodeToString(decoded.Hash160))

	_, err = d.Decode("1BgGZ9tcN4rm9KBzDn7KprQz87SZ26SAMJ")
	assert.ErrorIs(t, err, crypto.ErrChecksum)

	_, err = d.Decode("1")
	assert.ErrorIs(t, err, crypto.ErrInvalidFormat)
}

func TestValidate(t *testing.T) {
	mainnet := address.NewDeriver(nil)
	testnet := address.NewDeriver(&chaincfg.TestNet3Params)

	addr, err := mainnet.DeriveAddress(mustHex(t, generatorCompressed))
	require.NoError(t, err)

	assert.NoError(t, mainnet.Validate(addr))
	assert.ErrorIs(t, testnet.Validate(addr), crypto.ErrEncoding)
}
