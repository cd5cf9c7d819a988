package models

import (
	"time"

	"github.com/slack-go/slack"
)

// SNSEvent is the invocation payload delivered by SNS. Only the first record is consumed.
type SNSEvent struct {
	Records []SNSRecord `json:"Records"`
}

// SNSRecord wraps a single SNS delivery
type SNSRecord struct {
	EventSource string    `json:"EventSource"`
	SNS         SNSEntity `json:"Sns"`
}

// SNSEntity carries the fields the notifier reads. Timestamp is kept as the raw
// string so that a malformed value surfaces as a format error instead of a decode error.
type SNSEntity struct {
	MessageID string `json:"MessageId"`
	TopicArn  string `json:"TopicArn"`
	Subject   string `json:"Subject"`
	Message   string `json:"Message"`
	Timestamp string `json:"Timestamp"`
}

// Category is the kind of message, decided once from the subject line
type Category int

const (
	Unknown Category = iota
	Alarm
	Notification
)

func (c Category) String() string {
	switch c {
	case Alarm:
		return "alarm"
	case Notification:
		return "notification"
	default:
		return "unknown"
	}
}

// FailedDelivery is a webhook payload that could not be delivered, kept for the failure archive
type FailedDelivery struct {
	Time       time.Time             `json:"time"`
	MessageID  string                `json:"message_id,omitempty"`
	StatusCode int                   `json:"status_code,omitempty"`
	Error      string                `json:"error"`
	Payload    *slack.WebhookMessage `json:"payload"`
}
