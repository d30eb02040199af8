package base58check

import (
	"bytes"

	"github.com/btcsuite/btcutil/base58"
	"github.com/pkg/errors"

	"github.com/kashguard/go-btc-identity/internal/crypto"
	"github.com/kashguard/go-btc-identity/internal/crypto/checksum"
)

// Encode returns the Base58 form of b. b is expected to already end with its checksum.
func Encode(b []byte) string {
	return base58.Encode(b)
}

// Decode reverses Encode and verifies that the trailing checksum.Size bytes are
// the checksum of the leading bytes. The returned slice still carries the checksum.
func Decode(s string) ([]byte, error) {
	raw := base58.Decode(s)
	if len(raw) < checksum.Size+1 {
		return nil, errors.Wrapf(crypto.ErrInvalidFormat, "decoded %d bytes", len(raw))
	}

	n := len(raw) - checksum.Size
	if !bytes.Equal(checksum.Sum(raw[:n]), raw[n:]) {
		return nil, errors.WithStack(crypto.ErrChecksum)
	}

	return raw, nil
}

// CheckEncode prefixes payload with version and appends the checksum before encoding.
func CheckEncode(version byte, payload []byte) string {
	return base58.CheckEncode(payload, version)
}

// CheckDecode returns the payload and version byte of a Base58Check string.
func CheckDecode(s string) ([]byte, byte, error) {
	payload, version, err := base58.CheckDecode(s)
	switch {
	case err == nil:
		return payload, version, nil
	case errors.Is(err, base58.ErrChecksum):
		return nil, 0, errors.WithStack(crypto.ErrChecksum)
	case errors.Is(err, base58.ErrInvalidFormat):
		return nil, 0, errors.WithStack(crypto.ErrInvalidFormat)
	default:
		return nil, 0, errors.Wrap(crypto.ErrInvalidFormat, err.Error())
	}
}
