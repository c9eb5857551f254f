package user

import "golang.org/x/crypto/bcrypt"

// HashPassword produces a salted one-way digest. bcrypt generates a fresh
// salt per call, so hashing the same plaintext twice yields different
// strings that both verify.
func HashPassword(plain string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

func CheckPassword(plain, hashed string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hashed), []byte(plain)) == nil
}
