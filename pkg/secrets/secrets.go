package secrets

import (
	"context"
	"fmt"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/secretsmanager"
	"github.com/mosajjal/ebnotifier/pkg/logger"
)

const arnPrefix = "arn:aws:secretsmanager:"

// Getter is the part of the Secrets Manager client used here
type Getter interface {
	GetSecretValue(ctx context.Context, params *secretsmanager.GetSecretValueInput, optFns ...func(*secretsmanager.Options)) (*secretsmanager.GetSecretValueOutput, error)
}

// IsARN reports whether value should be looked up in Secrets Manager
func IsARN(value string) bool {
	return strings.HasPrefix(value, arnPrefix)
}

// Resolve returns value unchanged unless it is a Secrets Manager ARN, in which case
// the secret string stored under it is returned.
func Resolve(ctx context.Context, client Getter, value string) (string, error) {
	if !IsARN(value) {
		return value, nil
	}
	logger.For("secrets", "Resolve").Info("fetching webhook URL from AWS Secrets Manager")

	secret, err := client.GetSecretValue(ctx, &secretsmanager.GetSecretValueInput{
		SecretId: aws.String(value),
	})
	if err != nil {
		return "", fmt.Errorf("failed to get secret from Secrets Manager: %w", err)
	}
	if secret.SecretString == nil {
		return "", fmt.Errorf("secret %s has no string value", value)
	}
	return strings.TrimSpace(*secret.SecretString), nil
}
