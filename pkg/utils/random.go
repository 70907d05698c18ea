package utils

import (
	"crypto/rand"
	"encoding/hex"
	"math/big"
)

// GenerateID создает простой уникальный ID (16 hex-символов).
// Достаточно для идентификации сессии, UUID не нужен.
func GenerateID() string {
	b := make([]byte, 8)
	if _, err := rand.Read(b); err != nil {
		panic("failed to generate random ID: " + err.Error())
	}
	return hex.EncodeToString(b)
}

// RandomIndex возвращает равномерно распределенный индекс [0, n).
// Используется для выбора спрайта новому игроку.
func RandomIndex(n int) int {
	if n <= 1 {
		return 0
	}
	v, err := rand.Int(rand.Reader, big.NewInt(int64(n)))
	if err != nil {
		return 0
	}
	return int(v.Int64())
}
