package webhook

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/mosajjal/ebnotifier/pkg/models"
	"github.com/slack-go/slack"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingStorage struct {
	stored []*models.FailedDelivery
	err    error
	closed bool
}

func (r *recordingStorage) Store(ctx context.Context, deliveries []*models.FailedDelivery) error {
	r.stored = append(r.stored, deliveries...)
	return r.err
}

func (r *recordingStorage) Close() error {
	r.closed = true
	return nil
}

func testAttachments() []slack.Attachment {
	return []slack.Attachment{{
		Color:   "danger",
		Pretext: "OK :arrow_right: ALARM",
		Text:    "Threshold Crossed",
		Footer:  "eb-events-to-slack",
		Ts:      json.Number("1672531200"),
	}}
}

func TestClient_Send(t *testing.T) {
	var got map[string]any
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		body, _ := io.ReadAll(r.Body)
		assert.NoError(t, json.Unmarshal(body, &got))
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	archive := &recordingStorage{}
	client := NewClient(Config{URL: server.URL}, archive)

	ok := client.Send(context.Background(), "msg-1", testAttachments())
	require.True(t, ok)
	assert.Empty(t, archive.stored)

	assert.Equal(t, Username, got["username"])
	assert.Equal(t, IconEmoji, got["icon_emoji"])
	attachments, isSlice := got["attachments"].([]any)
	require.True(t, isSlice)
	require.Len(t, attachments, 1)

	attachment := attachments[0].(map[string]any)
	assert.Equal(t, "danger", attachment["color"])
	assert.Equal(t, "OK :arrow_right: ALARM", attachment["pretext"])
	assert.Equal(t, "Threshold Crossed", attachment["text"])
	assert.Equal(t, "eb-events-to-slack", attachment["footer"])
	assert.EqualValues(t, 1672531200, attachment["ts"])
}

func TestClient_SendFailureStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	archive := &recordingStorage{}
	client := NewClient(Config{URL: server.URL}, archive)

	ok := client.Send(context.Background(), "msg-2", testAttachments())
	assert.False(t, ok)

	require.Len(t, archive.stored, 1)
	failed := archive.stored[0]
	assert.Equal(t, http.StatusInternalServerError, failed.StatusCode)
	assert.Equal(t, "msg-2", failed.MessageID)
	assert.Equal(t, Username, failed.Payload.Username)
	assert.Len(t, failed.Payload.Attachments, 1)
}

func TestClient_SendNon200Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	client := NewClient(Config{URL: server.URL}, nil)
	assert.False(t, client.Send(context.Background(), "", testAttachments()))
}

func TestClient_SendTransportError(t *testing.T) {
	archive := &recordingStorage{err: errors.New("bucket unavailable")}
	client := NewClient(Config{URL: "", Timeout: time.Second}, archive)

	assert.False(t, client.Send(context.Background(), "", testAttachments()))
	require.Len(t, archive.stored, 1)
	assert.Zero(t, archive.stored[0].StatusCode)
	assert.NotEmpty(t, archive.stored[0].Error)
}

func TestStatusCode(t *testing.T) {
	assert.Equal(t, 404, statusCode(slack.StatusCodeError{Code: 404, Status: "404 Not Found"}))
	assert.Equal(t, http.StatusTooManyRequests, statusCode(&slack.RateLimitedError{RetryAfter: time.Second}))
	assert.Zero(t, statusCode(errors.New("dial tcp: connection refused")))
}

func TestClient_Close(t *testing.T) {
	archive := &recordingStorage{}
	assert.NoError(t, NewClient(Config{}, archive).Close())
	assert.True(t, archive.closed)
	assert.NoError(t, NewClient(Config{}, nil).Close())
}
