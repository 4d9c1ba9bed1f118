package crypto

//go:generate mockgen -source=interfaces.go -destination=../mock/password_hasher_mock.go -package=mock

// PasswordHasher turns account passwords into storable digests and checks
// login attempts against them. Implementations must be safe for concurrent use.
type PasswordHasher interface {
	// Hash returns a salted digest of password suitable for the users table.
	Hash(password string) (string, error)

	// Compare returns nil when password matches digest, ErrMismatchedPassword
	// when it does not, and any other error when digest is malformed.
	Compare(digest, password string) error
}
