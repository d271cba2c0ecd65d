package helpers

import "golang.org/x/crypto/bcrypt"

// hashCost is the bcrypt work factor. 10 matches bcrypt.DefaultCost and is the
// documented cost of every stored hash; changing it only affects new hashes.
const hashCost = 10

// HashPassword hashes the plain text password using bcrypt
func HashPassword(plain string) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(plain), hashCost)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// CompareHashAndPassword compares a bcrypt hash with a plain password
func CompareHashAndPassword(hash string, plain string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain)) == nil
}
