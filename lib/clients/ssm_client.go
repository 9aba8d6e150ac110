package clients

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ssm"
	"github.com/sirupsen/logrus"
)

var ssmCache = newRegionCache("ssm", func(cfg aws.Config) *ssm.Client {
	return ssm.NewFromConfig(cfg)
})

// GetSSMClient returns the cached SSM client for the options' region,
// building one when absent or when the cached options differ.
func GetSSMClient(ctx context.Context, opts Options, logger *logrus.Logger) (*ssm.Client, error) {
	return ssmCache.get(ctx, opts, logger)
}

// SetSSMClient installs a pre-built SSM client for a region.
func SetSSMClient(region string, client *ssm.Client, opts Options) {
	ssmCache.set(region, client, opts)
}

// DeleteSSMClient removes the cached client for a region.
func DeleteSSMClient(region string) bool {
	return ssmCache.delete(region)
}

// ClearSSMClientCache empties the SSM client cache.
func ClearSSMClientCache() {
	ssmCache.clear()
}
