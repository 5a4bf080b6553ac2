package auth

// PasswordHasher hace hash one-way de credenciales.
type PasswordHasher interface {
	Hash(plaintext string) (string, error)
	Verify(plaintext, digest string) bool
}
