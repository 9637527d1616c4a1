package security

import "golang.org/x/crypto/bcrypt"

type PasswordHasher struct {
	cost int
}

// NewPasswordHasher hashes with the given bcrypt cost. Out-of-range
// values fall back to the library default; tests pass bcrypt.MinCost to
// keep hashing cheap.
func NewPasswordHasher(cost int) *PasswordHasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	return &PasswordHasher{cost: cost}
}

func (h *PasswordHasher) Hash(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	return string(bytes), err
}

func (h *PasswordHasher) Compare(hash, password string) error {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
}
