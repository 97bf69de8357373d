package model

// Quote is a market quote for a ticker in its native currency.
type Quote struct {
	Current       float64 `json:"current"`
	PreviousClose float64 `json:"previous_close"`
	Currency      string  `json:"currency"`
}
