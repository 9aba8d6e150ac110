package clients

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/kinesis"
	"github.com/sirupsen/logrus"
)

var kinesisCache = newRegionCache("kinesis", func(cfg aws.Config) *kinesis.Client {
	return kinesis.NewFromConfig(cfg)
})

// GetKinesisClient returns the cached Kinesis client for the options' region,
// building one when absent or when the cached options differ.
func GetKinesisClient(ctx context.Context, opts Options, logger *logrus.Logger) (*kinesis.Client, error) {
	return kinesisCache.get(ctx, opts, logger)
}

// SetKinesisClient installs a pre-built Kinesis client for a region.
func SetKinesisClient(region string, client *kinesis.Client, opts Options) {
	kinesisCache.set(region, client, opts)
}

// DeleteKinesisClient removes the cached client for a region.
func DeleteKinesisClient(region string) bool {
	return kinesisCache.delete(region)
}

// ClearKinesisClientCache empties the Kinesis client cache.
func ClearKinesisClientCache() {
	kinesisCache.clear()
}
