// Package crypto holds the error taxonomy shared by key generation and address derivation.
package crypto

import "github.com/pkg/errors"

var (
	// ErrCryptoUnavailable 曲线域参数无法解析
	ErrCryptoUnavailable = errors.New("curve domain parameters unavailable")
	// ErrRandomness 安全随机源不可用或已耗尽
	ErrRandomness = errors.New("secure random source unavailable")
	// ErrEncoding 哈希或编码流程无法处理输入
	ErrEncoding = errors.New("malformed input for address encoding")
	// ErrChecksum Base58Check 校验和不匹配
	ErrChecksum = errors.New("checksum mismatch")
	// ErrInvalidFormat Base58Check 字符串格式无效
	ErrInvalidFormat = errors.New("invalid base58check format")
)
