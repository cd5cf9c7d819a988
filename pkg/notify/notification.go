package notify

import (
	"errors"
	"strings"

	"github.com/slack-go/slack"
)

const deployedMessage = "New application version was deployed to running EC2 instances."

var errNoSeparator = errors.New(`line has no ": " separator`)

type statusStyle struct {
	color string
	emoji string
}

var statusStyles = map[string]statusStyle{
	"Ok":       {color: "good", emoji: ":ok_hand:"},
	"Info":     {color: "good", emoji: ""},
	"Warning":  {color: "warning", emoji: ":warning:"},
	"Degraded": {color: "danger", emoji: ":exclamation:"},
	"Severe":   {color: "danger", emoji: ":bangbang:"},
}

// NotificationAttachment builds the attachment for an Elastic Beanstalk environment
// notification. The body is a list of "Key: Value" lines; values must not contain ": "
// and the body must not contain blank lines beyond the doubled newlines EB emits.
func NotificationAttachment(message string) (slack.Attachment, error) {
	kv, err := parseKeyValues(message)
	if err != nil {
		return slack.Attachment{}, err
	}

	values := make(map[string]string, 4)
	for _, key := range []string{"Message", "Environment URL", "Application", "Environment"} {
		v, ok := kv[key]
		if !ok {
			return slack.Attachment{}, &ParseError{Kind: "notification", Key: key}
		}
		values[key] = v
	}

	text := values["Message"]
	status := extractStatus(text)
	style, known := statusStyles[status]
	if !known {
		style = statusStyle{color: "good", emoji: ":question:"}
		status = "Unknown"
		if text == deployedMessage {
			style.emoji = ":arrow_heading_up:"
			status = "Deployed"
		}
	}

	return slack.Attachment{
		Color:     style.color,
		Pretext:   style.emoji + " " + text,
		Title:     values["Environment URL"],
		TitleLink: values["Environment URL"],
		Fields: []slack.AttachmentField{
			{Title: "Application", Value: values["Application"], Short: true},
			{Title: "Environment", Value: values["Environment"], Short: true},
			{Title: "Status", Value: status, Short: true},
		},
	}, nil
}

func parseKeyValues(message string) (map[string]string, error) {
	message = strings.ReplaceAll(message, "\n\n", "\n")
	kv := make(map[string]string)
	for _, line := range strings.Split(message, "\n") {
		key, value, ok := strings.Cut(line, ": ")
		if !ok {
			return nil, &ParseError{Kind: "notification", Key: line, Err: errNoSeparator}
		}
		kv[key] = value
	}
	return kv, nil
}

// extractStatus returns the word between the first " to " and the first ".",
// e.g. "Warning" for "Environment health has transitioned from Ok to Warning.".
// Missing markers count as index -1 and a negative end counts from the end of text.
func extractStatus(text string) string {
	start := strings.Index(text, " to") + 4
	end := strings.Index(text, ".")
	n := len(text)
	if end < 0 {
		end += n
	}
	start = min(max(start, 0), n)
	end = min(max(end, 0), n)
	if start >= end {
		return ""
	}
	return text[start:end]
}
