package config

import (
	"time"

	"github.com/alexflint/go-arg"
)

// Config is read once at cold start and passed to the components that need it
type Config struct {
	WebhookURL        string        `arg:"env:SLACK_WEBHOOK_URL" help:"incoming webhook URL, or a Secrets Manager ARN holding it"`
	LogLevel          string        `arg:"env:LOG_LEVEL" default:"INFO"`
	Region            string        `arg:"env:AWS_REGION" default:"us-east-1"`
	Timeout           time.Duration `arg:"env:SLACK_TIMEOUT" default:"0s" help:"webhook request timeout, 0 keeps the HTTP client default"`
	FailureS3URL      string        `arg:"env:FAILURE_S3_URL" help:"example: https://YOURBUCKET.s3.us-east-1.amazonaws.com/YOURFOLDER/"`
	S3AccessKeyID     string        `arg:"env:S3_ACCESS_KEY_ID"`
	S3AccessKeySecret string        `arg:"env:S3_ACCESS_KEY_SECRET"`
}

// Load parses the environment. Command line flags are ignored, Lambda has none.
func Load() (Config, error) {
	var cfg Config
	p, err := arg.NewParser(arg.Config{Program: "ebnotifier"}, &cfg)
	if err != nil {
		return Config{}, err
	}
	if err := p.Parse(nil); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
