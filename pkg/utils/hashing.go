package utils

import (
	"crypto/rand"
	"fmt"
	"math/big"

	"golang.org/x/crypto/bcrypt"
)

func HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	return string(bytes), err
}

func ComparePasswords(hashedPassword string, plainPassword string) error {
	return bcrypt.CompareHashAndPassword([]byte(hashedPassword), []byte(plainPassword))
}

var roomBlocks = []string{"A", "B", "C"}

// GenerateRoom picks a room of the form <block>-<floor><room>, e.g. A-101:
// block A|B|C, floor 1-3, room 01-20.
func GenerateRoom() string {
	block := roomBlocks[randIntn(len(roomBlocks))]
	floor := randIntn(3) + 1
	room := randIntn(20) + 1
	return fmt.Sprintf("%s-%d%02d", block, floor, room)
}

func randIntn(n int) int {
	v, err := rand.Int(rand.Reader, big.NewInt(int64(n)))
	if err != nil {
		return 0
	}
	return int(v.Int64())
}
