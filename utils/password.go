package utils

import "github.com/matthewhartstonge/argon2"

// HashPassword encodes the plaintext with argon2id under a fresh random
// salt. The encoded form embeds its own parameters, so verification needs
// no shared config.
func HashPassword(password string) (string, error) {
	cfg := argon2.DefaultConfig()
	encoded, err := cfg.HashEncoded([]byte(password))
	return string(encoded), err
}

// VerifyPassword reports whether the plaintext matches the encoded hash.
func VerifyPassword(encodedHash, password string) (bool, error) {
	return argon2.VerifyEncoded([]byte(password), []byte(encodedHash))
}
