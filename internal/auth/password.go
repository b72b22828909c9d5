package auth

import "golang.org/x/crypto/bcrypt"

// VerifyPassword compares the submitted credential against the server-held
// bcrypt hash. bcrypt's compare is constant-time over the digest.
func VerifyPassword(hash, plain string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain)) == nil
}

// HashPassword exists for operators minting ADMIN_PASSWORD_HASH.
func HashPassword(plain string) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(b), nil
}
