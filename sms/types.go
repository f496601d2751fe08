package sms

// MessageType selects the content encoding of an outbound message.
type MessageType string

const (
	// TypeText is GSM 7-bit text, the default.
	TypeText MessageType = "text"
	// TypeUnicode is UCS-2 text for non-GSM alphabets.
	TypeUnicode MessageType = "unicode"
	// TypeBinary is raw binary content with a UDH.
	TypeBinary MessageType = "binary"
)

// Message is an outbound SMS. From, To, and Text are required for text
// messages.
type Message struct {
	From        string
	To          string
	Text        string
	Type        MessageType
	ClientRef   string
	CallbackURL string
	TTL         int // milliseconds; zero means API default
}

// Response is the API response for a send. Long messages are split into
// parts, each with its own delivery status.
type Response struct {
	MessageCount string `json:"message-count"`
	Messages     []Part `json:"messages"`
}

// Part is the per-part outcome of a send.
type Part struct {
	To               string `json:"to"`
	MessageID        string `json:"message-id"`
	Status           string `json:"status"`
	ErrorText        string `json:"error-text"`
	RemainingBalance string `json:"remaining-balance"`
	MessagePrice     string `json:"message-price"`
	Network          string `json:"network"`
	ClientRef        string `json:"client-ref"`
}

// Succeeded reports whether this part was accepted for delivery.
func (p Part) Succeeded() bool {
	return p.Status == statusOK
}

// statusOK is the in-body status code for an accepted part.
const statusOK = "0"
