package notify

import (
	"regexp"
	"time"
)

var timestampPattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}T\d{2}:\d{2}:\d{2}\.\d{1,6}Z$`)

// the fractional part is accepted after the seconds even though the layout omits it
const timestampLayout = "2006-01-02T15:04:05Z"

// ConvertUnixTime turns an SNS timestamp such as "2023-01-01T00:00:00.000Z" into Unix
// seconds. The wall clock fields are read in the process' local zone even though the
// string is UTC, so hosts not running in UTC see an offset. Lambda runs in UTC.
func ConvertUnixTime(ts string) (int64, error) {
	if !timestampPattern.MatchString(ts) {
		return 0, &FormatError{Value: ts}
	}
	t, err := time.ParseInLocation(timestampLayout, ts, time.Local)
	if err != nil {
		return 0, &FormatError{Value: ts, Err: err}
	}
	return t.Unix(), nil
}
