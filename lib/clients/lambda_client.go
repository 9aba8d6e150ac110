package clients

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/lambda"
	"github.com/sirupsen/logrus"
)

var lambdaCache = newRegionCache("lambda", func(cfg aws.Config) *lambda.Client {
	return lambda.NewFromConfig(cfg)
})

// GetLambdaClient returns the cached Lambda client for the options' region,
// building one when absent or when the cached options differ.
func GetLambdaClient(ctx context.Context, opts Options, logger *logrus.Logger) (*lambda.Client, error) {
	return lambdaCache.get(ctx, opts, logger)
}

// SetLambdaClient installs a pre-built Lambda client for a region.
func SetLambdaClient(region string, client *lambda.Client, opts Options) {
	lambdaCache.set(region, client, opts)
}

// DeleteLambdaClient removes the cached client for a region.
func DeleteLambdaClient(region string) bool {
	return lambdaCache.delete(region)
}

// ClearLambdaClientCache empties the Lambda client cache.
func ClearLambdaClientCache() {
	lambdaCache.clear()
}
