package provider

import (
	"context"

	"github.com/mosajjal/ebnotifier/pkg/models"
)

// EventProvider extracts the notification fields from a trigger-specific payload
type EventProvider interface {
	// Name returns the provider name
	Name() string

	// ParseEvent returns the subject, message and timestamp carried by rawEvent
	ParseEvent(ctx context.Context, rawEvent []byte) (*models.SNSEntity, error)
}
