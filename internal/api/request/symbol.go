package request

type CreateSymbolRequest struct {
	Ticker       string `json:"ticker"`
	Name         string `json:"name"`
	DisplayName  string `json:"displayName,omitempty"`
	Currency     string `json:"currency"`
	Source       string `json:"source,omitempty"`
	SecurityType string `json:"securityType,omitempty"`
	Isin         string `json:"isin,omitempty"`
	Picture      string `json:"picture,omitempty"`
}

type UpdateSymbolRequest struct {
	Ticker       *string `json:"ticker,omitempty"`
	Name         *string `json:"name,omitempty"`
	DisplayName  *string `json:"displayName,omitempty"`
	Currency     *string `json:"currency,omitempty"`
	SecurityType *string `json:"securityType,omitempty"`
	Isin         *string `json:"isin,omitempty"`
	Picture      *string `json:"picture,omitempty"`
}

type ManualPriceRequest struct {
	Price *float64 `json:"price"`
}
