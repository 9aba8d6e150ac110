package stages

import (
	"github.com/caarlos0/env/v11"
	"github.com/cockroachdb/errors"

	"awscore/lib/lambdas"
	"awscore/lib/util"
)

// DefaultEnvStageName is the environment variable consulted for the stage when
// no other name is configured.
const DefaultEnvStageName = "STAGE"

// Settings is the per-invocation stage-handling policy. Optional behaviors are
// typed nullable function fields; a nil field disables the corresponding
// resolution step or qualification. Settings are read-only during resolution.
type Settings struct {
	// EnvStageName names the environment variable holding the stage.
	EnvStageName string

	// CustomToStage derives a stage from the raw invocation inputs.
	CustomToStage func(event *Event, meta *lambdas.InvocationMetadata, c *Context) string

	// ConvertAliasToStage maps an invoked-function alias to a stage.
	ConvertAliasToStage func(alias string, event *Event, meta *lambdas.InvocationMetadata, c *Context) string

	StreamNameStageSeparator   string
	ResourceNameStageSeparator string

	InjectStageIntoStreamName         func(unqualifiedName, stage string, c *Context) string
	ExtractStageFromStreamName        func(qualifiedName string, c *Context) string
	ExtractNameAndStageFromStreamName func(qualifiedName string, c *Context) (string, string)

	InjectStageIntoResourceName         func(unqualifiedName, stage string, c *Context) string
	ExtractStageFromResourceName        func(qualifiedName string, c *Context) string
	ExtractNameAndStageFromResourceName func(qualifiedName string, c *Context) (string, string)

	InjectInCase  CaseMode
	ExtractInCase CaseMode

	// DefaultStage is the configured fallback when no other step resolves.
	DefaultStage string
}

// DefaultSettings returns the standard stage-handling policy: stage read from
// the STAGE environment variable, "_" separators, lower-cased stages, and the
// suffix codec backing all name qualification.
func DefaultSettings() *Settings {
	return &Settings{
		EnvStageName:               DefaultEnvStageName,
		StreamNameStageSeparator:   DefaultStageSeparator,
		ResourceNameStageSeparator: DefaultStageSeparator,

		InjectStageIntoStreamName:         DefaultInjectStageIntoStreamName,
		ExtractStageFromStreamName:        DefaultExtractStageFromStreamName,
		ExtractNameAndStageFromStreamName: DefaultExtractNameAndStageFromStreamName,

		InjectStageIntoResourceName:         DefaultInjectStageIntoResourceName,
		ExtractStageFromResourceName:        DefaultExtractStageFromResourceName,
		ExtractNameAndStageFromResourceName: DefaultExtractNameAndStageFromResourceName,

		InjectInCase:  CaseLower,
		ExtractInCase: CaseLower,
	}
}

// DefaultInjectStageIntoStreamName qualifies a stream name using the
// configured stream separator and inject case.
func DefaultInjectStageIntoStreamName(unqualifiedName, stage string, c *Context) string {
	s := c.stageHandling()
	return InjectStageSuffix(unqualifiedName, s.StreamNameStageSeparator, stage, s.InjectInCase)
}

// DefaultExtractStageFromStreamName extracts the stage suffix from a
// stream name using the configured stream separator and extract case.
func DefaultExtractStageFromStreamName(qualifiedName string, c *Context) string {
	s := c.stageHandling()
	return ExtractStageSuffix(qualifiedName, s.StreamNameStageSeparator, s.ExtractInCase)
}

// DefaultExtractNameAndStageFromStreamName splits a qualified stream name into
// its base name and stage.
func DefaultExtractNameAndStageFromStreamName(qualifiedName string, c *Context) (string, string) {
	s := c.stageHandling()
	return SplitNameAndStageSuffix(qualifiedName, s.StreamNameStageSeparator, s.ExtractInCase)
}

// DefaultInjectStageIntoResourceName qualifies a resource (e.g. table) name
// using the configured resource separator and inject case.
func DefaultInjectStageIntoResourceName(unqualifiedName, stage string, c *Context) string {
	s := c.stageHandling()
	return InjectStageSuffix(unqualifiedName, s.ResourceNameStageSeparator, stage, s.InjectInCase)
}

// DefaultExtractStageFromResourceName extracts the stage suffix from a
// resource name using the configured resource separator and extract case.
func DefaultExtractStageFromResourceName(qualifiedName string, c *Context) string {
	s := c.stageHandling()
	return ExtractStageSuffix(qualifiedName, s.ResourceNameStageSeparator, s.ExtractInCase)
}

// DefaultExtractNameAndStageFromResourceName splits a qualified resource name
// into its base name and stage.
func DefaultExtractNameAndStageFromResourceName(qualifiedName string, c *Context) (string, string) {
	s := c.stageHandling()
	return SplitNameAndStageSuffix(qualifiedName, s.ResourceNameStageSeparator, s.ExtractInCase)
}

// Options is a flat, string-only view of Settings suitable for merging over
// defaults or loading from the environment. Blank fields are ignored.
type Options struct {
	EnvStageName               string `env:"ENV_STAGE_NAME"`
	StreamNameStageSeparator   string `env:"STREAM_NAME_STAGE_SEPARATOR"`
	ResourceNameStageSeparator string `env:"RESOURCE_NAME_STAGE_SEPARATOR"`
	InjectInCase               string `env:"INJECT_IN_CASE"`
	ExtractInCase              string `env:"EXTRACT_IN_CASE"`
	DefaultStage               string `env:"DEFAULT_STAGE"`
}

// OptionsFromEnv loads stage-handling options from the process environment.
func OptionsFromEnv() (Options, error) {
	var o Options
	if err := env.Parse(&o); err != nil {
		return o, errors.Wrap(err, "failed to parse stage-handling options from environment")
	}
	return o, nil
}

// ConfigureStageHandling installs stage-handling settings on the context.
// Explicit settings win over options, which win over defaults. Existing
// settings are left untouched unless force is true.
func ConfigureStageHandling(c *Context, settings *Settings, options *Options, force bool) {
	if c.StageHandling != nil && !force {
		c.logger().Debug("Stage handling already configured - skipping")
		return
	}

	var merged Settings
	if settings != nil {
		merged = *settings
	} else {
		merged = *DefaultSettings()
	}
	if options != nil {
		applyOptions(&merged, options)
	}
	c.StageHandling = &merged
}

// ConfigureDefaultStageHandling installs the default settings, optionally
// overridden by options.
func ConfigureDefaultStageHandling(c *Context, options *Options, force bool) {
	ConfigureStageHandling(c, nil, options, force)
}

func applyOptions(s *Settings, o *Options) {
	if util.IsNotBlank(o.EnvStageName) {
		s.EnvStageName = o.EnvStageName
	}
	if o.StreamNameStageSeparator != "" {
		s.StreamNameStageSeparator = o.StreamNameStageSeparator
	}
	if o.ResourceNameStageSeparator != "" {
		s.ResourceNameStageSeparator = o.ResourceNameStageSeparator
	}
	if util.IsNotBlank(o.InjectInCase) {
		s.InjectInCase = CaseMode(o.InjectInCase)
	}
	if util.IsNotBlank(o.ExtractInCase) {
		s.ExtractInCase = CaseMode(o.ExtractInCase)
	}
	if util.IsNotBlank(o.DefaultStage) {
		s.DefaultStage = o.DefaultStage
	}
}
