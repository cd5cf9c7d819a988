package notify

import (
	"encoding/json"
	"fmt"

	"github.com/slack-go/slack"
)

// alarmMessage is the subset of a CloudWatch alarm state change the notifier reads
type alarmMessage struct {
	NewStateValue  *string `json:"NewStateValue"`
	OldStateValue  *string `json:"OldStateValue"`
	NewStateReason *string `json:"NewStateReason"`
}

// AlarmAttachment builds the attachment for a CloudWatch alarm state change delivered as JSON.
func AlarmAttachment(message string) (slack.Attachment, error) {
	var msg alarmMessage
	if err := json.Unmarshal([]byte(message), &msg); err != nil {
		return slack.Attachment{}, &ParseError{Kind: "alarm", Err: err}
	}

	switch {
	case msg.NewStateValue == nil:
		return slack.Attachment{}, &ParseError{Kind: "alarm", Key: "NewStateValue"}
	case msg.OldStateValue == nil:
		return slack.Attachment{}, &ParseError{Kind: "alarm", Key: "OldStateValue"}
	case msg.NewStateReason == nil:
		return slack.Attachment{}, &ParseError{Kind: "alarm", Key: "NewStateReason"}
	}

	color := "green"
	switch *msg.NewStateValue {
	case "ALARM":
		color = "danger"
	case "INSUFFICIENT":
		color = "warning"
	}

	return slack.Attachment{
		Color:   color,
		Pretext: fmt.Sprintf("%s :arrow_right: %s", *msg.OldStateValue, *msg.NewStateValue),
		Text:    *msg.NewStateReason,
	}, nil
}
