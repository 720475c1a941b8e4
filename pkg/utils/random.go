package utils

import (
	cryptorand "crypto/rand"
	"encoding/hex"
	"math/rand"
)

// RoomCodeLength - длина кода комнаты.
const RoomCodeLength = 4

const roomCodeAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"

// RoomCode генерирует 4-буквенный код комнаты (A-Z, равномерно).
// 26^4 ~ 457k вариантов; уникальность среди активных комнат
// обеспечивает вызывающий (Store повторяет генерацию при коллизии).
func RoomCode(rng *rand.Rand) string {
	b := make([]byte, RoomCodeLength)
	for i := range b {
		b[i] = roomCodeAlphabet[rng.Intn(len(roomCodeAlphabet))]
	}
	return string(b)
}

// GenerateID создает простой уникальный ID для токенов (16 символов hex).
func GenerateID() string {
	b := make([]byte, 8)
	if _, err := cryptorand.Read(b); err != nil {
		panic("failed to generate random ID: " + err.Error())
	}
	return hex.EncodeToString(b)
}
