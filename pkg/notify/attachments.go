package notify

import (
	"encoding/json"
	"strconv"

	"github.com/mosajjal/ebnotifier/pkg/models"
	"github.com/slack-go/slack"
)

const (
	// Footer tags every attachment sent by this notifier
	Footer = "eb-events-to-slack"

	fallbackPretext = ":anger: Unexpected error. Please check Cloudwatch ALARM :anger:"
)

// FallbackAttachment reports a message that could not be classified, verbatim.
func FallbackAttachment(message string) slack.Attachment {
	return slack.Attachment{
		Color:   "danger",
		Pretext: fallbackPretext,
		Text:    message,
	}
}

// CreateAttachments runs the builder for category and stamps the result with the footer
// and the event time. It always returns exactly one attachment.
func CreateAttachments(category models.Category, message, timestamp string) ([]slack.Attachment, error) {
	var (
		attachment slack.Attachment
		err        error
	)
	switch category {
	case models.Notification:
		attachment, err = NotificationAttachment(message)
	case models.Alarm:
		attachment, err = AlarmAttachment(message)
	default:
		attachment = FallbackAttachment(message)
	}
	if err != nil {
		return nil, err
	}

	ts, err := ConvertUnixTime(timestamp)
	if err != nil {
		return nil, err
	}
	attachment.Footer = Footer
	attachment.Ts = json.Number(strconv.FormatInt(ts, 10))

	return []slack.Attachment{attachment}, nil
}
