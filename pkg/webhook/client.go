package webhook

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/mosajjal/ebnotifier/pkg/logger"
	"github.com/mosajjal/ebnotifier/pkg/models"
	"github.com/mosajjal/ebnotifier/pkg/storage"
	"github.com/sirupsen/logrus"
	"github.com/slack-go/slack"
)

const (
	// Username is the sender name shown in the channel
	Username = "AWS Elastic Beanstalk Event notifier"
	// IconEmoji is the avatar shown next to the sender name
	IconEmoji = ":aws_eb:"
)

// Config holds webhook client configuration
type Config struct {
	URL     string
	Timeout time.Duration // zero keeps the http.Client default
}

// Client delivers payloads to a Slack incoming webhook
type Client struct {
	config         Config
	httpClient     *http.Client
	failureStorage storage.StorageBackend
}

// NewClient creates a new webhook client. failureStorage may be nil.
func NewClient(cfg Config, failureStorage storage.StorageBackend) *Client {
	return &Client{
		config:         cfg,
		httpClient:     &http.Client{Timeout: cfg.Timeout},
		failureStorage: failureStorage,
	}
}

// NewMessage wraps attachments into the payload posted to the webhook
func NewMessage(attachments []slack.Attachment) *slack.WebhookMessage {
	return &slack.WebhookMessage{
		Username:    Username,
		IconEmoji:   IconEmoji,
		Attachments: attachments,
	}
}

// Send posts attachments to the webhook once. Delivery failures are logged, archived
// when a failure storage is configured and reported through the boolean result,
// never as an error.
func (c *Client) Send(ctx context.Context, messageID string, attachments []slack.Attachment) bool {
	log := logger.For("webhook", "Send")
	msg := NewMessage(attachments)

	err := slack.PostWebhookCustomHTTPContext(ctx, c.config.URL, c.httpClient, msg)
	if err == nil {
		log.Info("post to slack succeeded")
		return true
	}

	status := statusCode(err)
	log.WithFields(logrus.Fields{
		"status":  status,
		"payload": msg,
	}).WithError(err).Error("post to slack failed")

	if c.failureStorage != nil {
		failed := &models.FailedDelivery{
			Time:       time.Now().UTC(),
			MessageID:  messageID,
			StatusCode: status,
			Error:      err.Error(),
			Payload:    msg,
		}
		if err := c.failureStorage.Store(ctx, []*models.FailedDelivery{failed}); err != nil {
			log.WithError(err).Error("failed to archive undelivered payload")
		}
	}
	return false
}

// statusCode extracts the HTTP status from a webhook error, 0 when the request never
// got a response
func statusCode(err error) int {
	var statusErr slack.StatusCodeError
	if errors.As(err, &statusErr) {
		return statusErr.Code
	}
	var rateErr *slack.RateLimitedError
	if errors.As(err, &rateErr) {
		return http.StatusTooManyRequests
	}
	return 0
}

// Close cleans up resources
func (c *Client) Close() error {
	if c.failureStorage != nil {
		return c.failureStorage.Close()
	}
	return nil
}
