package main

import (
	"context"

	"github.com/aws/aws-lambda-go/lambda"
	awssdk "github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/secretsmanager"

	"github.com/mosajjal/ebnotifier/pkg/config"
	"github.com/mosajjal/ebnotifier/pkg/handler"
	"github.com/mosajjal/ebnotifier/pkg/logger"
	"github.com/mosajjal/ebnotifier/pkg/provider/aws"
	"github.com/mosajjal/ebnotifier/pkg/secrets"
	"github.com/mosajjal/ebnotifier/pkg/storage"
	s3storage "github.com/mosajjal/ebnotifier/pkg/storage/s3"
	"github.com/mosajjal/ebnotifier/pkg/webhook"
)

var h *handler.Handler

func init() {
	log := logger.For("main", "init")

	cfg, err := config.Load()
	if err != nil {
		log.WithError(err).Fatal("failed to load configuration")
	}
	logger.SetLevel(cfg.LogLevel)

	needAWS := secrets.IsARN(cfg.WebhookURL) || cfg.FailureS3URL != ""
	var awsCfg awssdk.Config
	if needAWS {
		awsCfg, err = loadAWSConfig(cfg)
		if err != nil {
			log.WithError(err).Fatal("unable to load AWS config")
		}
	}

	webhookURL := cfg.WebhookURL
	if secrets.IsARN(webhookURL) {
		webhookURL, err = secrets.Resolve(context.Background(), secretsmanager.NewFromConfig(awsCfg), webhookURL)
		if err != nil {
			log.WithError(err).Fatal("failed to resolve webhook URL")
		}
	}

	var failureStorage storage.StorageBackend
	if cfg.FailureS3URL != "" {
		failureStorage, err = s3storage.NewStorage(storage.StorageConfig{Provider: "s3", URL: cfg.FailureS3URL}, awsCfg)
		if err != nil {
			log.WithError(err).Warn("failed to setup failure storage")
			failureStorage = nil
		}
	} else {
		log.Debug("no FAILURE_S3_URL provided, undelivered payloads are only logged")
	}

	client := webhook.NewClient(webhook.Config{URL: webhookURL, Timeout: cfg.Timeout}, failureStorage)
	h = handler.New(aws.NewProvider(), client)

	log.Info("AWS Lambda handler initialized successfully")
}

// loadAWSConfig uses static credentials for S3 when both keys are set, otherwise the
// role of the function
func loadAWSConfig(cfg config.Config) (awssdk.Config, error) {
	opts := []func(*awsconfig.LoadOptions) error{awsconfig.WithRegion(cfg.Region)}
	if cfg.S3AccessKeyID != "" && cfg.S3AccessKeySecret != "" {
		opts = append(opts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.S3AccessKeyID, cfg.S3AccessKeySecret, ""),
		))
	}
	return awsconfig.LoadDefaultConfig(context.TODO(), opts...)
}

func main() {
	lambda.Start(h.Handle)
}
