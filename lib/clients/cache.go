// Package clients provides per-region, per-service AWS client caches for
// Lambda functions. Clients are built once per region via
// config.LoadDefaultConfig and reused across invocations of a warm container;
// requesting a cached region with different options replaces the cached
// instance with a warning.
package clients

import (
	"context"
	"reflect"
	"sync"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/cockroachdb/errors"
	"github.com/sirupsen/logrus"

	"awscore/lib/regions"
)

var defaultLogger = logrus.New()

// Options configures a cached client. Options are compared structurally: a
// Get with options equal to the cached entry's returns the cached client.
type Options struct {
	// Region targets the client; blank falls back to the environment region.
	Region string

	// BaseEndpoint overrides the service endpoint, e.g. for localstack.
	BaseEndpoint string

	// MaxAttempts caps SDK retries; zero keeps the SDK default.
	MaxAttempts int
}

type cacheEntry[T any] struct {
	client  *T
	options Options
}

// regionCache memoizes one client per region for a single service.
type regionCache[T any] struct {
	mu      sync.Mutex
	entries map[string]cacheEntry[T]
	service string
	build   func(cfg aws.Config) *T
}

func newRegionCache[T any](service string, build func(cfg aws.Config) *T) *regionCache[T] {
	return &regionCache[T]{
		entries: map[string]cacheEntry[T]{},
		service: service,
		build:   build,
	}
}

func (rc *regionCache[T]) get(ctx context.Context, opts Options, logger *logrus.Logger) (*T, error) {
	if logger == nil {
		logger = defaultLogger
	}
	region := opts.Region
	if region == "" {
		region = regions.GetRegion(nil)
	}
	if region == "" {
		return nil, errors.Newf("failed to get %s client - no region given and none in environment", rc.service)
	}

	rc.mu.Lock()
	defer rc.mu.Unlock()

	if entry, ok := rc.entries[region]; ok {
		if reflect.DeepEqual(entry.options, opts) {
			return entry.client, nil
		}
		logger.WithFields(logrus.Fields{
			"service": rc.service,
			"region":  region,
		}).Warn("Replacing cached client - options differ from cached instance")
	}

	cfg, err := loadConfig(ctx, region, opts)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to load AWS config for %s client in region %s", rc.service, region)
	}

	client := rc.build(cfg)
	rc.entries[region] = cacheEntry[T]{client: client, options: opts}
	return client, nil
}

// set installs a pre-built client for a region, replacing any cached one.
func (rc *regionCache[T]) set(region string, client *T, opts Options) {
	rc.mu.Lock()
	defer rc.mu.Unlock()
	rc.entries[region] = cacheEntry[T]{client: client, options: opts}
}

// delete removes the cached client for a region, reporting whether one existed.
func (rc *regionCache[T]) delete(region string) bool {
	rc.mu.Lock()
	defer rc.mu.Unlock()
	_, ok := rc.entries[region]
	delete(rc.entries, region)
	return ok
}

// clear empties the cache.
func (rc *regionCache[T]) clear() {
	rc.mu.Lock()
	defer rc.mu.Unlock()
	rc.entries = map[string]cacheEntry[T]{}
}

func loadConfig(ctx context.Context, region string, opts Options) (aws.Config, error) {
	loadOpts := []func(*config.LoadOptions) error{
		config.WithRegion(region),
	}
	if opts.MaxAttempts > 0 {
		loadOpts = append(loadOpts, config.WithRetryMaxAttempts(opts.MaxAttempts))
	}

	cfg, err := config.LoadDefaultConfig(ctx, loadOpts...)
	if err != nil {
		return aws.Config{}, err
	}
	if opts.BaseEndpoint != "" {
		cfg.BaseEndpoint = aws.String(opts.BaseEndpoint)
	}
	return cfg, nil
}
