package notify

import (
	"strings"

	"github.com/mosajjal/ebnotifier/pkg/models"
)

// Classify decides the message category from the SNS subject line. The checks are
// case sensitive and run in order: "ALARM" or "OK" wins over "Notification".
func Classify(subject string) models.Category {
	if strings.Contains(subject, "ALARM") || strings.Contains(subject, "OK") {
		return models.Alarm
	}
	if strings.Contains(subject, "Notification") {
		return models.Notification
	}
	return models.Unknown
}
