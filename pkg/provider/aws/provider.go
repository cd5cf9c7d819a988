package aws

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/mosajjal/ebnotifier/pkg/models"
	"github.com/mosajjal/ebnotifier/pkg/provider"
)

// ErrNoRecords is returned for an SNS event without any record
var ErrNoRecords = errors.New("sns event has no records")

// Provider reads SNS events delivered to Lambda
type Provider struct{}

// NewProvider creates a new AWS provider
func NewProvider() provider.EventProvider {
	return &Provider{}
}

// Name returns the provider name
func (p *Provider) Name() string {
	return "aws"
}

// ParseEvent returns the first SNS record of the event. Further records are ignored.
func (p *Provider) ParseEvent(ctx context.Context, rawEvent []byte) (*models.SNSEntity, error) {
	var event models.SNSEvent
	if err := json.Unmarshal(rawEvent, &event); err != nil {
		return nil, fmt.Errorf("failed to unmarshal SNS event: %w", err)
	}
	if len(event.Records) == 0 {
		return nil, ErrNoRecords
	}

	entity := event.Records[0].SNS
	return &entity, nil
}
