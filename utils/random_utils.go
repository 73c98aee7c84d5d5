package utils

import (
	"crypto/rand"
	"encoding/hex"
)

// GenerateResetToken 生成一个256位的安全随机令牌，十六进制编码
func GenerateResetToken() (string, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}
