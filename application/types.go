package application

// Webhook is a callback registration inside a capability.
type Webhook struct {
	Address    string `json:"address"`
	HTTPMethod string `json:"http_method,omitempty"`
}

// Capability configures one product for an application.
type Capability struct {
	Webhooks map[string]Webhook `json:"webhooks,omitempty"`
}

// Capabilities groups the products an application may use.
type Capabilities struct {
	Voice    *Capability `json:"voice,omitempty"`
	Messages *Capability `json:"messages,omitempty"`
	RTC      *Capability `json:"rtc,omitempty"`
}

// Keys carries the application's public key; the API generates the key
// pair when none is supplied.
type Keys struct {
	PublicKey  string `json:"public_key,omitempty"`
	PrivateKey string `json:"private_key,omitempty"`
}

// Application is an API application record.
type Application struct {
	ID           string        `json:"id,omitempty"`
	Name         string        `json:"name"`
	Capabilities *Capabilities `json:"capabilities,omitempty"`
	Keys         *Keys         `json:"keys,omitempty"`
}

// listResponse is one page of the application listing.
type listResponse struct {
	Page       int `json:"page"`
	PageSize   int `json:"page_size"`
	TotalItems int `json:"total_items"`
	TotalPages int `json:"total_pages"`
	Embedded   struct {
		Applications []Application `json:"applications"`
	} `json:"_embedded"`
}
