package interfaces

// IPhoneNormalizer formats customer phone numbers. Numbers it cannot parse
// are returned unchanged.
type IPhoneNormalizer interface {
	Normalize(phone string) string
}
