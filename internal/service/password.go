package service

import "golang.org/x/crypto/bcrypt"

// HashPassword derives a salted bcrypt hash (cost 10) from the plaintext.
// Each call salts independently, so equal inputs produce distinct hashes.
func HashPassword(plaintext string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(plaintext), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

// CheckPassword reports whether plaintext matches the stored hash.
// Malformed hashes compare as a mismatch.
func CheckPassword(plaintext, hashed string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hashed), []byte(plaintext)) == nil
}
