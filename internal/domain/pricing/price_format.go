package pricing

import (
	"strconv"
	"strings"

	"bengkel_pos/internal/domain/domainerr"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var (
	ErrNegativePrice = domainerr.Validation("price cannot be negative")
	ErrInvalidPrice  = domainerr.Validation("price must contain digits only")
)

var idPrinter = message.NewPrinter(language.Indonesian)

// ParsePrice reads a user-typed Rupiah amount such as "1.234.567",
// "Rp 75,000" or "50000". Group separators are dropped before the digits are
// read. Blank input is zero.
func ParsePrice(s string) (int64, error) {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "Rp")
	s = strings.TrimPrefix(s, "rp")
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, nil
	}
	if strings.HasPrefix(s, "-") {
		return 0, ErrNegativePrice
	}

	var b strings.Builder
	for _, r := range s {
		switch {
		case r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == '.', r == ',', r == ' ', r == '\u00a0':
		default:
			return 0, ErrInvalidPrice
		}
	}
	if b.Len() == 0 {
		return 0, ErrInvalidPrice
	}

	n, err := strconv.ParseInt(b.String(), 10, 64)
	if err != nil {
		return 0, ErrInvalidPrice
	}
	return n, nil
}

// FormatPrice renders n with id-ID digit grouping, e.g. 1234567 -> "1.234.567".
func FormatPrice(n int64) string {
	return idPrinter.Sprintf("%d", n)
}

// FormatRupiah prefixes FormatPrice with the currency symbol used on prints.
func FormatRupiah(n int64) string {
	return "Rp " + FormatPrice(n)
}
