package handler

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/aws/aws-lambda-go/lambdacontext"
	"github.com/mosajjal/ebnotifier/pkg/logger"
	"github.com/mosajjal/ebnotifier/pkg/notify"
	"github.com/mosajjal/ebnotifier/pkg/provider"
	"github.com/sirupsen/logrus"
	"github.com/slack-go/slack"
)

// Sender delivers attachments to the chat webhook, reporting success
type Sender interface {
	Send(ctx context.Context, messageID string, attachments []slack.Attachment) bool
}

// Handler turns one SNS invocation into one webhook message
type Handler struct {
	provider provider.EventProvider
	sender   Sender
}

// New creates a Handler
func New(p provider.EventProvider, sender Sender) *Handler {
	return &Handler{provider: p, sender: sender}
}

// Handle extracts the first record of the event, builds the attachment matching its
// category and posts it. Malformed input is returned as an error so the invocation
// fails; a failed delivery is only logged.
func (h *Handler) Handle(ctx context.Context, event json.RawMessage) error {
	log := logger.For("handler", "Handle")
	if lc, ok := lambdacontext.FromContext(ctx); ok {
		log = log.WithField("request_id", lc.AwsRequestID)
	}
	log.WithField("event", string(event)).Debug("received event")

	entity, err := h.provider.ParseEvent(ctx, event)
	if err != nil {
		return fmt.Errorf("%s: %w", h.provider.Name(), err)
	}

	category := notify.Classify(entity.Subject)
	log = log.WithFields(logrus.Fields{
		"message_id": entity.MessageID,
		"category":   category.String(),
	})
	log.WithField("subject", entity.Subject).Debug("classified event")

	attachments, err := notify.CreateAttachments(category, entity.Message, entity.Timestamp)
	if err != nil {
		log.WithError(err).Error("failed to build attachments")
		return err
	}

	h.sender.Send(ctx, entity.MessageID, attachments)
	return nil
}
