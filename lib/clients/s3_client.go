package clients

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/sirupsen/logrus"
)

var s3Cache = newRegionCache("s3", func(cfg aws.Config) *s3.Client {
	return s3.NewFromConfig(cfg)
})

// GetS3Client returns the cached S3 client for the options' region, building
// one when absent or when the cached options differ.
func GetS3Client(ctx context.Context, opts Options, logger *logrus.Logger) (*s3.Client, error) {
	return s3Cache.get(ctx, opts, logger)
}

// SetS3Client installs a pre-built S3 client for a region.
func SetS3Client(region string, client *s3.Client, opts Options) {
	s3Cache.set(region, client, opts)
}

// DeleteS3Client removes the cached client for a region.
func DeleteS3Client(region string) bool {
	return s3Cache.delete(region)
}

// ClearS3ClientCache empties the S3 client cache.
func ClearS3ClientCache() {
	s3Cache.clear()
}
