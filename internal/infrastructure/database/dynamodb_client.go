package database

import (
	"context"
	"log"

	"seguradora_xpto/internal/infrastructure/awsenv"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
)

// ConnectDynamoDB creates a DynamoDB client from the environment-driven AWS
// configuration.
func ConnectDynamoDB() *dynamodb.Client {
	cfg, err := awsenv.NewConfig(context.Background())
	if err != nil {
		log.Fatalf("failed to create dynamodb config: %v", err)
	}
	return dynamodb.NewFromConfig(cfg)
}
