package security

import (
	"strings"
	"testing"

	"golang.org/x/crypto/bcrypt"
)

func TestPasswordHashAndCompare(t *testing.T) {
	hasher := NewPasswordHasher(bcrypt.MinCost)

	hash, err := hasher.Hash("correct horse battery staple")
	if err != nil {
		t.Fatalf("Hash failed: %v", err)
	}
	if hash == "correct horse battery staple" {
		t.Fatal("hash must not equal the plaintext password")
	}

	if err := hasher.Compare(hash, "correct horse battery staple"); err != nil {
		t.Fatalf("Compare rejected the right password: %v", err)
	}
	if err := hasher.Compare(hash, "wrong password"); err == nil {
		t.Fatal("Compare accepted the wrong password")
	}
}

func TestPasswordHasherCost(t *testing.T) {
	hasher := NewPasswordHasher(bcrypt.MinCost)
	hash, err := hasher.Hash("secret-password")
	if err != nil {
		t.Fatalf("Hash failed: %v", err)
	}
	if cost, err := bcrypt.Cost([]byte(hash)); err != nil || cost != bcrypt.MinCost {
		t.Fatalf("hash cost = %d (err %v), want %d", cost, err, bcrypt.MinCost)
	}

	// Out-of-range costs fall back to the default instead of failing.
	hasher = NewPasswordHasher(99)
	hash, err = hasher.Hash("secret-password")
	if err != nil {
		t.Fatalf("Hash with clamped cost failed: %v", err)
	}
	if !strings.HasPrefix(hash, "$2a$") {
		t.Fatalf("unexpected hash format: %s", hash)
	}
	if cost, err := bcrypt.Cost([]byte(hash)); err != nil || cost != bcrypt.DefaultCost {
		t.Fatalf("clamped cost = %d (err %v), want %d", cost, err, bcrypt.DefaultCost)
	}
}
