package usecases

// PasswordHasher hashes and verifies user passwords.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Verify(password, hash string) error
}

// TokenIssuer issues authentication tokens for a verified user.
type TokenIssuer interface {
	Generate(userID uint, isAdmin bool) (*TokenPair, error)
}

// TokenPair mirrors the issuer's token output without binding the
// application layer to a JWT library.
type TokenPair struct {
	AccessToken  string
	RefreshToken string
	ExpiresIn    int64
}
