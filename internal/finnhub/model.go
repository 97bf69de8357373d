package finnhub

// QuoteResponse is the wire format of the quote endpoint. Zeroed fields on a
// successful response mean the provider has no data for the symbol.
type QuoteResponse struct {
	Current       float64 `json:"c"`
	Change        float64 `json:"d"`
	PercentChange float64 `json:"dp"`
	High          float64 `json:"h"`
	Low           float64 `json:"l"`
	Open          float64 `json:"o"`
	PreviousClose float64 `json:"pc"`
	Timestamp     int64   `json:"t"`
}

// ErrorResponse is returned with a non-200 status, e.g. on rate limiting.
type ErrorResponse struct {
	Error string `json:"error"`
}
