package checksum

import "github.com/btcsuite/btcd/chaincfg/chainhash"

// Size 校验码长度
const Size = 4

// Sum returns the first 4 bytes of SHA-256(SHA-256(payload)).
func Sum(payload []byte) []byte {
	return chainhash.DoubleHashB(payload)[:Size]
}
