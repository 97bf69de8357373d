package model

// Symbol identifies a tradable instrument.
// All fields except ManualPrice are immutable after creation; ManualPrice is
// changed only through the explicit set-manual-price operation.
type Symbol struct {
	ID            string   `json:"id"`
	Ticker        string   `json:"ticker"`
	Name          string   `json:"name"`
	DisplayName   string   `json:"display_name"`
	Currency      string   `json:"currency"`
	Source        string   `json:"source,omitempty"` // empty for user-created symbols
	SecurityType  string   `json:"security_type"`
	Isin          string   `json:"isin,omitempty"`
	Picture       string   `json:"picture,omitempty"`
	IsUserCreated bool     `json:"is_user_created"`
	ManualPrice   *float64 `json:"manual_price,omitempty"`
}

// HasManualPrice reports whether a manual price override is set.
func (s Symbol) HasManualPrice() bool {
	return s.ManualPrice != nil
}

// Quotable reports whether a live quote can be fetched for this symbol.
// User-created symbols and symbols without a price source never hit the network.
func (s Symbol) Quotable() bool {
	return s.Source != "" && !s.IsUserCreated
}
