package utils

import (
	"crypto/md5"
	"crypto/subtle"
	"encoding/hex"

	"golang.org/x/crypto/bcrypt"
)

// PasswordKind 表示数据库中存储的密码编码方式
type PasswordKind int

const (
	// PasswordSalted bcrypt加盐哈希，所有新密码均为此类型
	PasswordSalted PasswordKind = iota
	// PasswordLegacy 无盐MD5哈希，仅存在于数据库种子数据中
	PasswordLegacy
)

// ClassifyPassword 根据存储形态判断密码编码方式：
// 恰好32个十六进制字符视为遗留MD5，其余视为bcrypt
func ClassifyPassword(stored string) PasswordKind {
	if len(stored) != 32 {
		return PasswordSalted
	}
	for _, c := range stored {
		if (c < '0' || c > '9') && (c < 'a' || c > 'f') && (c < 'A' || c > 'F') {
			return PasswordSalted
		}
	}
	return PasswordLegacy
}

// HashPassword 使用 bcrypt 对密码进行哈希处理，新建和重置的密码只走这里
func HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(bytes), nil
}

// VerifyPassword 校验明文密码与存储哈希是否匹配。
// 遗留MD5路径只允许在此处比较，验证成功后也不会重新哈希入库
func VerifyPassword(password, stored string) bool {
	switch ClassifyPassword(stored) {
	case PasswordLegacy:
		digest := md5.Sum([]byte(password))
		computed := hex.EncodeToString(digest[:])
		return subtle.ConstantTimeCompare([]byte(computed), []byte(stored)) == 1
	default:
		err := bcrypt.CompareHashAndPassword([]byte(stored), []byte(password))
		return err == nil
	}
}
