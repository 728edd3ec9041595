package request

import (
	"bytes"
	"encoding/json"
	"math"
	"strconv"

	"bengkel_pos/internal/domain/pricing"
)

// Price is a Rupiah amount sent either as a JSON number or as typed text
// such as "1.234.567". Fractions are rounded.
type Price int64

func (p *Price) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) == 0 || bytes.Equal(b, []byte("null")) {
		*p = 0
		return nil
	}
	if b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		n, err := pricing.ParsePrice(s)
		if err != nil {
			return err
		}
		*p = Price(n)
		return nil
	}
	f, err := strconv.ParseFloat(string(b), 64)
	if err != nil {
		return pricing.ErrInvalidPrice
	}
	if f < 0 {
		return pricing.ErrNegativePrice
	}
	*p = Price(math.Round(f))
	return nil
}

// DocumentID is a document id sent as a JSON number or numeric string.
type DocumentID int64

func (id *DocumentID) UnmarshalJSON(b []byte) error {
	b = bytes.Trim(bytes.TrimSpace(b), `"`)
	n, err := strconv.ParseInt(string(b), 10, 64)
	if err != nil {
		return err
	}
	*id = DocumentID(n)
	return nil
}
