package request

type CreateAccountRequest struct {
	Name        string  `json:"name"`
	AccountType string  `json:"accountType"`
	Currency    string  `json:"currency"`
	Balance     float64 `json:"balance"`
}

type UpdateAccountRequest struct {
	Name        *string  `json:"name,omitempty"`
	AccountType *string  `json:"accountType,omitempty"`
	Currency    *string  `json:"currency,omitempty"`
	Balance     *float64 `json:"balance,omitempty"`
}
