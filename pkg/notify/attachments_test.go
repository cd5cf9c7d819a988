package notify

import (
	"encoding/json"
	"errors"
	"strconv"
	"testing"

	"github.com/mosajjal/ebnotifier/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testTimestamp = "2023-01-01T00:00:00.000Z"

func expectedTs(t *testing.T) json.Number {
	t.Helper()
	ts, err := ConvertUnixTime(testTimestamp)
	require.NoError(t, err)
	return json.Number(strconv.FormatInt(ts, 10))
}

func TestCreateAttachments(t *testing.T) {
	tests := []struct {
		name     string
		category models.Category
		message  string
		color    string
	}{
		{"alarm", models.Alarm, `{"NewStateValue":"ALARM","OldStateValue":"OK","NewStateReason":"Threshold Crossed"}`, "danger"},
		{"notification", models.Notification, ebMessage("Environment health has transitioned from Ok to Warning."), "warning"},
		{"unknown", models.Unknown, "some unexpected body", "danger"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			attachments, err := CreateAttachments(tt.category, tt.message, testTimestamp)
			require.NoError(t, err)
			require.Len(t, attachments, 1)

			assert.Equal(t, tt.color, attachments[0].Color)
			assert.Equal(t, Footer, attachments[0].Footer)
			assert.Equal(t, expectedTs(t), attachments[0].Ts)
		})
	}
}

func TestCreateAttachments_Fallback(t *testing.T) {
	body := "{\"weird\": true}\nwith: several: separators"

	attachments, err := CreateAttachments(models.Unknown, body, testTimestamp)
	require.NoError(t, err)
	require.Len(t, attachments, 1)

	assert.Equal(t, "danger", attachments[0].Color)
	assert.Equal(t, ":anger: Unexpected error. Please check Cloudwatch ALARM :anger:", attachments[0].Pretext)
	assert.Equal(t, body, attachments[0].Text)
}

func TestCreateAttachments_Errors(t *testing.T) {
	t.Run("builder error", func(t *testing.T) {
		_, err := CreateAttachments(models.Notification, "Message: no url", testTimestamp)
		var parseErr *ParseError
		assert.True(t, errors.As(err, &parseErr))
	})

	t.Run("timestamp error", func(t *testing.T) {
		_, err := CreateAttachments(models.Unknown, "body", "yesterday")
		var formatErr *FormatError
		assert.True(t, errors.As(err, &formatErr))
	})
}

func TestCreateAttachments_JSONShape(t *testing.T) {
	attachments, err := CreateAttachments(models.Alarm, `{"NewStateValue":"ALARM","OldStateValue":"OK","NewStateReason":"Threshold Crossed"}`, testTimestamp)
	require.NoError(t, err)

	b, err := json.Marshal(attachments[0])
	require.NoError(t, err)

	var shape map[string]any
	require.NoError(t, json.Unmarshal(b, &shape))
	assert.Equal(t, "danger", shape["color"])
	assert.Equal(t, "OK :arrow_right: ALARM", shape["pretext"])
	assert.Equal(t, "Threshold Crossed", shape["text"])
	assert.Equal(t, Footer, shape["footer"])
	assert.NotContains(t, shape, "title_link")
}
