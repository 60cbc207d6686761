package database

import (
	"context"
	"testing"

	"crm_pipeline/internal/infrastructure/config"

	"github.com/aws/aws-sdk-go-v2/aws"
)

func TestConnectDynamoDB(t *testing.T) {
	cfg := config.AWSConfig{
		Region:           "sa-east-1",
		AccessKeyID:      "local",
		SecretAccessKey:  "local",
		DynamoDBEndpoint: "http://localhost:8000",
	}

	awsCfg, err := NewAWSConfig(context.Background(), cfg)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if awsCfg.Region != "sa-east-1" {
		t.Fatalf("unexpected region %s", awsCfg.Region)
	}
	creds, err := awsCfg.Credentials.Retrieve(context.Background())
	if err != nil || creds.AccessKeyID != "local" {
		t.Fatalf("expected static credentials, got %+v err=%v", creds, err)
	}

	client, err := ConnectDynamoDB(context.Background(), cfg)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := aws.ToString(client.Options().BaseEndpoint); got != "http://localhost:8000" {
		t.Fatalf("expected local endpoint, got %q", got)
	}
}
