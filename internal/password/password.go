// Package password wraps the one-way credential hashing used at signup and
// login. Hashes are salted bcrypt; comparison is constant time.
package password

import "golang.org/x/crypto/bcrypt"

// bcrypt keys from at most 72 bytes of input. Longer passwords are truncated
// on both hash and verify, so any non-empty string hashes successfully and
// verifies against its own hash.
const maxPasswordBytes = 72

// Hash derives a salted bcrypt hash from a plaintext password. The output
// embeds the salt and cost, so two hashes of the same password differ.
func Hash(plain string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword(truncate(plain), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// Verify reports whether plain matches the stored hash. Malformed hashes
// verify as false rather than returning an error, so callers cannot tell a
// missing user apart from a wrong password.
func Verify(plain, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), truncate(plain)) == nil
}

func truncate(plain string) []byte {
	b := []byte(plain)
	if len(b) > maxPasswordBytes {
		b = b[:maxPasswordBytes]
	}
	return b
}
