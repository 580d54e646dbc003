package model

import "time"

// Sentiment classification buckets.
type Sentiment string

const (
	SentimentPositive Sentiment = "positive"
	SentimentNegative Sentiment = "negative"
	SentimentNeutral  Sentiment = "neutral"
)

// Priority classification buckets.
type Priority string

const (
	PriorityUrgent Priority = "urgent"
	PriorityNormal Priority = "normal"
)

// Status of an email in the triage workflow. Emails start pending; the
// operator moves them forward via explicit status updates.
type Status string

const (
	StatusPending   Status = "pending"
	StatusResponded Status = "responded"
	StatusResolved  Status = "resolved"
)

// Categories derived from priority at processing time.
const (
	CategoryHighPriority = "High Priority Support"
	CategoryGeneral      = "General Support"
)

// ExtractedInfo holds the structured fields pulled out of an email's text.
type ExtractedInfo struct {
	ContactDetails      string   `json:"contact_details,omitempty"`
	Requirements        []string `json:"requirements,omitempty"`
	SentimentIndicators []string `json:"sentiment_indicators,omitempty"`
}

// Email is the persisted triage record. Classification fields are computed
// once at creation and never recomputed; only AIResponse and Status may
// change afterward.
type Email struct {
	ID            string        `json:"id"`
	Sender        string        `json:"sender"`
	Subject       string        `json:"subject"`
	Body          string        `json:"body"`
	SentDate      time.Time     `json:"sent_date"`
	Sentiment     Sentiment     `json:"sentiment"`
	Priority      Priority      `json:"priority"`
	Category      string        `json:"category"`
	AIResponse    string        `json:"ai_response"`
	Status        Status        `json:"status"`
	ExtractedInfo ExtractedInfo `json:"extracted_info"`
	// CreatedAt records insertion time and breaks ties when two emails
	// share the same sent_date in the list sort.
	CreatedAt time.Time `json:"created_at"`
}

// CategoryFor maps a priority to its display category.
func CategoryFor(p Priority) string {
	if p == PriorityUrgent {
		return CategoryHighPriority
	}
	return CategoryGeneral
}

// RawEmail is the caller-supplied input to the processor.
type RawEmail struct {
	Sender   string     `json:"sender"`
	Subject  string     `json:"subject"`
	Body     string     `json:"body"`
	SentDate *time.Time `json:"sent_date,omitempty"`
}

// IsValidStatus reports whether s is one of the three workflow states.
func IsValidStatus(s Status) bool {
	switch s {
	case StatusPending, StatusResponded, StatusResolved:
		return true
	}
	return false
}
