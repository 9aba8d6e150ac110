// Package regions resolves the AWS region of a Lambda invocation from the
// environment, the invoked-function ARN, or the event's records.
package regions

import (
	"os"

	"github.com/samber/lo"

	"awscore/lib/arns"
	"awscore/lib/lambdas"
	"awscore/lib/stages"
	"awscore/lib/util"
)

// Environment variables consulted for the current region, in order.
const (
	EnvRegion        = "AWS_REGION"
	EnvDefaultRegion = "AWS_DEFAULT_REGION"
)

// GetRegion returns the region from AWS_REGION, falling back to
// AWS_DEFAULT_REGION. A nil env lookup defaults to os.Getenv.
func GetRegion(env func(name string) string) string {
	if env == nil {
		env = os.Getenv
	}
	if r := util.TrimOrEmpty(env(EnvRegion)); r != "" {
		return r
	}
	return util.TrimOrEmpty(env(EnvDefaultRegion))
}

// RegionFromARN extracts the region segment of an ARN, or "" if malformed.
func RegionFromARN(arn string) string {
	return arns.Region(arn)
}

// ResolveRegion determines the region of the invocation: the records'
// unanimous awsRegion if present, else the invoked-function ARN's region,
// else the environment.
func ResolveRegion(event *stages.Event, meta *lambdas.InvocationMetadata, c *stages.Context) string {
	if event != nil {
		recordRegions := lo.Uniq(lo.FilterMap(event.Records, func(r stages.Record, _ int) (string, bool) {
			return r.AWSRegion, util.IsNotBlank(r.AWSRegion)
		}))
		if len(recordRegions) == 1 {
			return recordRegions[0]
		}
	}

	if meta != nil {
		if r := RegionFromARN(meta.InvokedFunctionArn); r != "" {
			return r
		}
	}

	var env func(string) string
	if c != nil {
		env = c.Env
	}
	return GetRegion(env)
}

// ConfigureRegion resolves the region from the context's environment and
// writes it onto the context, keeping any region already set.
func ConfigureRegion(c *stages.Context) string {
	if util.IsBlank(c.Region) {
		c.Region = GetRegion(c.Env)
	}
	return c.Region
}

// ConfigureRegionStageAndContext performs the standard per-invocation
// configuration step: resolve the region, install default stage handling when
// none is configured, attach the invocation inputs, and resolve the stage.
// The failFast flag carries the stage-is-mandatory policy of
// stages.ConfigureStage.
func ConfigureRegionStageAndContext(c *stages.Context, event *stages.Event, meta *lambdas.InvocationMetadata, failFast bool) error {
	if util.IsBlank(c.Region) {
		c.Region = ResolveRegion(event, meta, c)
	}
	stages.ConfigureDefaultStageHandling(c, nil, false)
	c.Event = event
	c.Invocation = meta
	return stages.ConfigureStage(c, event, meta, failFast)
}
