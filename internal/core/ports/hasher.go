package ports

// Hasher defines the interface for computing content fingerprints.
//
//go:generate mockgen -destination=mocks/hasher_mock.go -package=mocks -source=hasher.go
type Hasher interface {
	// HashBytes returns a stable fingerprint of data.
	HashBytes(data []byte) uint64
	// Combine folds several fingerprints into one, in order.
	Combine(parts ...uint64) string
}
