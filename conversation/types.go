package conversation

// CreateRequest describes a conversation to create. All fields are
// optional; the API generates a name when none is given.
type CreateRequest struct {
	Name        string `json:"name,omitempty"`
	DisplayName string `json:"display_name,omitempty"`
	ImageURL    string `json:"image_url,omitempty"`
}

// Conversation is a conversation record.
type Conversation struct {
	UUID        string    `json:"uuid"`
	Name        string    `json:"name"`
	DisplayName string    `json:"display_name"`
	ImageURL    string    `json:"image_url"`
	Timestamp   Timestamp `json:"timestamp"`
}

// Timestamp carries lifecycle times of a conversation.
type Timestamp struct {
	Created string `json:"created"`
	Updated string `json:"updated"`
}

// createResponse acknowledges a created conversation.
type createResponse struct {
	ID   string `json:"id"`
	Href string `json:"href"`
}

// listResponse is one batch of the cursor-based listing.
type listResponse struct {
	PageSize int `json:"page_size"`
	Embedded struct {
		Conversations []Conversation `json:"conversations"`
	} `json:"_embedded"`
	Links struct {
		Next struct {
			Href string `json:"href"`
		} `json:"next"`
	} `json:"_links"`
}
