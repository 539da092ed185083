package auth

import "golang.org/x/crypto/bcrypt"

// HashPassword hashes a registration password. The hash stays on the
// in-memory session record and is never written to storage.
func HashPassword(p string) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(p), bcrypt.DefaultCost)
	return string(b), err
}

func VerifyPassword(plain, hash string) error {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain))
}
