package auth

import "golang.org/x/crypto/bcrypt"

// HashPassword derives a salted one-way digest of the secret. Two calls
// with the same secret yield different digests, so digests must only be
// checked through VerifyPassword.
func HashPassword(secret string) (string, error) {
	digest, err := bcrypt.GenerateFromPassword([]byte(secret), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(digest), nil
}

// VerifyPassword reports whether secret hashes to digest. A malformed
// digest is a verification failure, not an error.
func VerifyPassword(secret, digest string) bool {
	return bcrypt.CompareHashAndPassword([]byte(digest), []byte(secret)) == nil
}
