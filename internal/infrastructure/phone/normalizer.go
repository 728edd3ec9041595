// Package phone formats customer phone numbers with libphonenumber.
package phone

import (
	"strings"

	"bengkel_pos/internal/usecase/interfaces"

	"github.com/ttacon/libphonenumber"
)

// Normalizer renders valid numbers in international format, e.g.
// "0812 3456 7890" becomes "+62 812-3456-7890" for region ID.
type Normalizer struct {
	region string
}

var _ interfaces.IPhoneNormalizer = (*Normalizer)(nil)

func NewNormalizer(region string) *Normalizer {
	region = strings.ToUpper(strings.TrimSpace(region))
	if region == "" {
		region = "ID"
	}
	return &Normalizer{region: region}
}

func (n *Normalizer) Normalize(raw string) string {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return raw
	}
	num, err := libphonenumber.Parse(trimmed, n.region)
	if err != nil || !libphonenumber.IsValidNumber(num) {
		return trimmed
	}
	return libphonenumber.Format(num, libphonenumber.INTERNATIONAL)
}
