package voice

// Endpoint is a call leg destination or origin.
type Endpoint struct {
	Type       string `json:"type"`
	Number     string `json:"number,omitempty"`
	URI        string `json:"uri,omitempty"`
	DTMFAnswer string `json:"dtmfAnswer,omitempty"`
}

// PhoneEndpoint builds a phone-number endpoint.
func PhoneEndpoint(number string) Endpoint {
	return Endpoint{Type: "phone", Number: number}
}

// CreateCallRequest starts an outbound call.
type CreateCallRequest struct {
	To        []Endpoint `json:"to"`
	From      Endpoint   `json:"from"`
	AnswerURL []string   `json:"answer_url,omitempty"`
	EventURL  []string   `json:"event_url,omitempty"`

	AnswerMethod     string `json:"answer_method,omitempty"`
	EventMethod      string `json:"event_method,omitempty"`
	MachineDetection string `json:"machine_detection,omitempty"`
	LengthTimer      int    `json:"length_timer,omitempty"`
	RingingTimer     int    `json:"ringing_timer,omitempty"`
}

// CreateCallResponse acknowledges a started call.
type CreateCallResponse struct {
	UUID             string `json:"uuid"`
	Status           string `json:"status"`
	Direction        string `json:"direction"`
	ConversationUUID string `json:"conversation_uuid"`
}

// Call is a call record.
type Call struct {
	UUID             string   `json:"uuid"`
	Status           string   `json:"status"`
	Direction        string   `json:"direction"`
	Rate             string   `json:"rate"`
	Price            string   `json:"price"`
	Duration         string   `json:"duration"`
	Network          string   `json:"network"`
	ConversationUUID string   `json:"conversation_uuid"`
	StartTime        string   `json:"start_time"`
	EndTime          string   `json:"end_time"`
	To               Endpoint `json:"to"`
	From             Endpoint `json:"from"`
}

// listResponse is one page of the call listing.
type listResponse struct {
	Count       int `json:"count"`
	PageSize    int `json:"page_size"`
	RecordIndex int `json:"record_index"`
	Embedded    struct {
		Calls []Call `json:"calls"`
	} `json:"_embedded"`
}
