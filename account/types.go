package account

// Balance is the account's current credit.
type Balance struct {
	Value      float64 `json:"value"`
	AutoReload bool    `json:"autoReload"`
}

// Settings reflects the account callback configuration after an update.
type Settings struct {
	InboundURL         string `json:"mo-callback-url"`
	ReceiptURL         string `json:"dr-callback-url"`
	MaxOutboundRequest int    `json:"max-outbound-request"`
	MaxInboundRequest  int    `json:"max-inbound-request"`
	MaxCallsPerSecond  int    `json:"max-calls-per-second"`
}
