package ports

// Normalizer defines the interface for typed-input normalization.
type Normalizer interface {
	Normalize(text string) string
}
