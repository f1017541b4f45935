package domain

// PasswordHasher abstracts the credential hashing scheme so the
// register-or-login flow does not depend on argon2id directly.
type PasswordHasher interface {
	HashPassword(password string) (string, error)
	VerifyPassword(password, hashedPassword string) (bool, error)
}
