package normalizer

import "github.com/baditaflorin/go_ajemi/internal/ports"

// NormalizerType selects a normalizer implementation.
type NormalizerType int

const (
	// DefaultNormalizerType lowercases ASCII only and preserves offsets.
	DefaultNormalizerType NormalizerType = iota
	// UnicodeNormalizerType folds width, strips marks and lowercases.
	UnicodeNormalizerType
)

// NormalizerFactory creates normalizers by type.
type NormalizerFactory struct{}

// NewNormalizerFactory creates a new normalizer factory.
func NewNormalizerFactory() *NormalizerFactory {
	return &NormalizerFactory{}
}

// CreateNormalizer creates a normalizer of the specified type.
func (f *NormalizerFactory) CreateNormalizer(normalizerType NormalizerType) ports.Normalizer {
	switch normalizerType {
	case UnicodeNormalizerType:
		return NewUnicodeNormalizer()
	default:
		return NewDefaultNormalizer()
	}
}
