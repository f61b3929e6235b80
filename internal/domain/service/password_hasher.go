// Package service declares the ports usecases depend on for work that lives
// outside the database: hashing, tokens, image storage, QR codes and events.
package service

// PasswordHasher turns account passwords into stored hashes. Register and
// admin user creation hash; login checks.
type PasswordHasher interface {
	Hash(password string) (string, error)

	// Check is false for any mismatch or malformed hash.
	Check(password, hash string) bool
}
