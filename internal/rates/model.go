package rates

// PairResponse is the wire format of the pair conversion endpoint.
// Result is "success" or "error"; ErrorType is only set on errors.
type PairResponse struct {
	Result         string  `json:"result"`
	ErrorType      string  `json:"error-type"`
	BaseCode       string  `json:"base_code"`
	TargetCode     string  `json:"target_code"`
	ConversionRate float64 `json:"conversion_rate"`
}
