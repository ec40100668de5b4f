package conversation

// TimestampLayout is the format of Entry.Timestamp (local clock, second precision).
const TimestampLayout = "2006-01-02 15:04:05"

// Entry is one stored exchange.
type Entry struct {
	ID          int64  `json:"id"`
	Timestamp   string `json:"timestamp"`
	UserMessage string `json:"userMessage"`
	BotResponse string `json:"botResponse"`
}

// NewEntry is an exchange that has not been stored yet; the store assigns the id.
type NewEntry struct {
	Timestamp   string
	UserMessage string
	BotResponse string
}
