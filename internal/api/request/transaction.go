package request

type CreateTransactionRequest struct {
	SymbolID   string  `json:"symbolId"`
	AccountID  string  `json:"accountId,omitempty"`
	Date       string  `json:"date"`
	Type       string  `json:"type"`
	Quantity   float64 `json:"quantity"`
	Price      float64 `json:"price"`
	Commission float64 `json:"commission"`
	Currency   string  `json:"currency"`
}

type UpdateTransactionRequest struct {
	SymbolID   *string  `json:"symbolId,omitempty"`
	AccountID  *string  `json:"accountId,omitempty"`
	Date       *string  `json:"date,omitempty"`
	Type       *string  `json:"type,omitempty"`
	Quantity   *float64 `json:"quantity,omitempty"`
	Price      *float64 `json:"price,omitempty"`
	Commission *float64 `json:"commission,omitempty"`
	Currency   *string  `json:"currency,omitempty"`
}

type TransferTransactionRequest struct {
	AccountID string `json:"accountId"`
}
