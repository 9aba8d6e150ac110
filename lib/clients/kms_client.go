package clients

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/kms"
	"github.com/sirupsen/logrus"
)

var kmsCache = newRegionCache("kms", func(cfg aws.Config) *kms.Client {
	return kms.NewFromConfig(cfg)
})

// GetKMSClient returns the cached KMS client for the options' region,
// building one when absent or when the cached options differ.
func GetKMSClient(ctx context.Context, opts Options, logger *logrus.Logger) (*kms.Client, error) {
	return kmsCache.get(ctx, opts, logger)
}

// SetKMSClient installs a pre-built KMS client for a region.
func SetKMSClient(region string, client *kms.Client, opts Options) {
	kmsCache.set(region, client, opts)
}

// DeleteKMSClient removes the cached client for a region.
func DeleteKMSClient(region string) bool {
	return kmsCache.delete(region)
}

// ClearKMSClientCache empties the KMS client cache.
func ClearKMSClientCache() {
	kmsCache.clear()
}
