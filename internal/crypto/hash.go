package crypto

import "golang.org/x/crypto/bcrypt"

// bcryptCost matches the work factor existing account digests were
// created with.
const bcryptCost = 10

// HashPassword derives a one-way bcrypt digest of the password. The
// plaintext is never persisted.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// VerifyPassword reports whether a password matches its stored bcrypt
// digest.
func VerifyPassword(password, encodedHash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(encodedHash), []byte(password)) == nil
}
