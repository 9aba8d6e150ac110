package clients

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/sirupsen/logrus"
)

var dynamoDBCache = newRegionCache("dynamodb", func(cfg aws.Config) *dynamodb.Client {
	return dynamodb.NewFromConfig(cfg)
})

// GetDynamoDBClient returns the cached DynamoDB client for the options'
// region, building one when absent or when the cached options differ.
func GetDynamoDBClient(ctx context.Context, opts Options, logger *logrus.Logger) (*dynamodb.Client, error) {
	return dynamoDBCache.get(ctx, opts, logger)
}

// SetDynamoDBClient installs a pre-built DynamoDB client for a region.
func SetDynamoDBClient(region string, client *dynamodb.Client, opts Options) {
	dynamoDBCache.set(region, client, opts)
}

// DeleteDynamoDBClient removes the cached client for a region.
func DeleteDynamoDBClient(region string) bool {
	return dynamoDBCache.delete(region)
}

// ClearDynamoDBClientCache empties the DynamoDB client cache.
func ClearDynamoDBClientCache() {
	dynamoDBCache.clear()
}
