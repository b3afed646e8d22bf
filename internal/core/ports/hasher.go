package ports

// PasswordHasher hashes and verifies plaintext credentials. Hash output is
// self-describing: a later Verify with the original plaintext needs no state
// beyond the hash itself. Verify returns (false, nil) on a plain mismatch;
// an error means the stored hash is malformed or hashing itself failed.
type PasswordHasher interface {
	Hash(plaintext string) (string, error)
	Verify(plaintext, hash string) (bool, error)
}
