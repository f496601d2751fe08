package verify

// Request describes a verification to start. Number and Brand are
// required.
type Request struct {
	Number        string // number to verify, E.164
	Brand         string // name shown in the verification message
	SenderID      string
	CodeLength    int // 4 or 6; zero means API default
	Locale        string
	PINExpiry     int // seconds
	NextEventWait int // seconds
	WorkflowID    int
}

// StartResponse is the outcome of starting a verification.
type StartResponse struct {
	RequestID string `json:"request_id"`
	Status    string `json:"status"`
	ErrorText string `json:"error_text"`
}

// CheckResponse is the outcome of checking a verification code.
type CheckResponse struct {
	RequestID string `json:"request_id"`
	EventID   string `json:"event_id"`
	Status    string `json:"status"`
	Price     string `json:"price"`
	Currency  string `json:"currency"`
	ErrorText string `json:"error_text"`
}

// ControlResponse is the outcome of a cancel or trigger-next-event
// command.
type ControlResponse struct {
	Status    string `json:"status"`
	Command   string `json:"command"`
	ErrorText string `json:"error_text"`
}

// controlCommand names the supported control operations.
type controlCommand string

const (
	commandCancel      controlCommand = "cancel"
	commandTriggerNext controlCommand = "trigger_next_event"
)
