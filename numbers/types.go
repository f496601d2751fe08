package numbers

// Number is a phone number owned by the account.
type Number struct {
	Country               string   `json:"country"`
	MSISDN                string   `json:"msisdn"`
	Type                  string   `json:"type"`
	Features              []string `json:"features"`
	MessagesCallbackURL   string   `json:"moHttpUrl"`
	VoiceCallbackType     string   `json:"voiceCallbackType"`
	VoiceCallbackValue    string   `json:"voiceCallbackValue"`
	LinkedApplicationID   string   `json:"app_id"`
}

// AvailableNumber is a number offered for purchase.
type AvailableNumber struct {
	Country  string   `json:"country"`
	MSISDN   string   `json:"msisdn"`
	Type     string   `json:"type"`
	Cost     string   `json:"cost"`
	Features []string `json:"features"`
}

// listResponse is one page of the owned-number listing.
type listResponse struct {
	Count   int      `json:"count"`
	Numbers []Number `json:"numbers"`
}

// searchResponse is one page of the available-number search.
type searchResponse struct {
	Count   int               `json:"count"`
	Numbers []AvailableNumber `json:"numbers"`
}

// orderResponse acknowledges a buy or cancel. The API reports the outcome
// as an in-body error code inside an HTTP 200 response.
type orderResponse struct {
	ErrorCode      string `json:"error-code"`
	ErrorCodeLabel string `json:"error-code-label"`
}
