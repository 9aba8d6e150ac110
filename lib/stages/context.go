// Package stages resolves the deployment stage (e.g. dev, qa, prod) of a
// Lambda invocation from an ordered chain of sources, and qualifies stream and
// resource names with stage suffixes.
package stages

import (
	"os"

	"github.com/sirupsen/logrus"

	"awscore/lib/lambdas"
)

// defaultLogger backs contexts created without an explicit logger.
var defaultLogger = logrus.New()

// Context is the per-invocation context carrying the resolved stage, the
// stage-handling policy, and the invocation inputs. Each Lambda invocation
// should use its own Context; it is never shared across concurrent
// invocations.
type Context struct {
	// Stage is the resolved (or explicitly overridden) stage.
	Stage string

	// DefaultStage is the context-level fallback, consulted after the
	// settings-level default.
	DefaultStage string

	// Region is the resolved AWS region.
	Region string

	// StageHandling is the resolution policy. When nil, resolution runs with
	// DefaultSettings.
	StageHandling *Settings

	// Event and Invocation are the inputs last attached to this context.
	Event      *Event
	Invocation *lambdas.InvocationMetadata

	// Env is the environment lookup used during resolution. Defaults to
	// os.Getenv; replace it in tests for deterministic resolution.
	Env func(name string) string

	Logger *logrus.Logger
}

func (c *Context) logger() *logrus.Logger {
	if c != nil && c.Logger != nil {
		return c.Logger
	}
	return defaultLogger
}

func (c *Context) env(name string) string {
	if c != nil && c.Env != nil {
		return c.Env(name)
	}
	return os.Getenv(name)
}

// stageHandling returns the configured settings, or defaults when none are
// installed. It never mutates the context.
func (c *Context) stageHandling() *Settings {
	if c != nil && c.StageHandling != nil {
		return c.StageHandling
	}
	return DefaultSettings()
}
