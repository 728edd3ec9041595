package request

import (
	"bytes"
	"encoding/json"

	"bengkel_pos/internal/domain/entities"
)

// RPC actions understood by the envelope endpoint.
const (
	ActionGetPrices      = "getPrices"
	ActionSavePrices     = "savePrices"
	ActionAddPrice       = "addPrice"
	ActionDeletePrice    = "deletePrice"
	ActionSaveEstimate   = "saveEstimate"
	ActionSaveInvoice    = "saveInvoice"
	ActionGetHistory     = "getHistory"
	ActionDeleteEstimate = "deleteEstimate"
	ActionDeleteInvoice  = "deleteInvoice"
	ActionLogin          = "login"
)

// RPCRequest is the single-endpoint envelope used by the shop's browser
// client.
type RPCRequest struct {
	Action string          `json:"action" binding:"required"`
	Data   json.RawMessage `json:"data"`
	Secret string          `json:"secret"`
}

// Decode unmarshals Data into v. Missing data leaves v untouched.
func (r RPCRequest) Decode(v any) error {
	data := bytes.TrimSpace(r.Data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		return nil
	}
	return json.Unmarshal(data, v)
}

type RPCSavePrices struct {
	Prices map[string]CatalogEntryRequest `json:"prices"`
}

func (r RPCSavePrices) ToCatalog() entities.Catalog {
	return toCatalog(r.Prices)
}

type RPCAddPrice struct {
	Price CatalogEntryRequest `json:"price"`
}

type RPCDeletePrice struct {
	PanelID string `json:"panelId"`
}

type RPCSaveEstimate struct {
	Estimate StoredDocumentRequest `json:"estimate"`
}

type RPCSaveInvoice struct {
	Invoice StoredDocumentRequest `json:"invoice"`
}

type RPCDeleteDocument struct {
	ID DocumentID `json:"id"`
}
