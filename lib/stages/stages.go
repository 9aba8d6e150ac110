package stages

import (
	"encoding/json"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/samber/lo"

	"awscore/lib/arns"
	"awscore/lib/lambdas"
	"awscore/lib/util"
)

// ResolveStage determines the stage of the given invocation by walking an
// ordered chain of sources; the first non-blank candidate wins and is
// case-converted with the configured extract case:
//
//  1. the context's explicit stage
//  2. the environment variable named by the settings (default "STAGE")
//  3. the custom-to-stage hook
//  4. the event's stage field
//  5. the invoked-function alias, via the convert-alias-to-stage hook
//  6. the stage suffix of the (unambiguous) event-source stream or table name
//  7. the settings-level default stage
//  8. the context-level default stage
//
// Every step degrades to "no candidate" on missing or ambiguous input, and an
// empty string is returned when the whole chain yields nothing. ResolveStage
// never mutates the context and never fails.
func ResolveStage(event *Event, meta *lambdas.InvocationMetadata, c *Context) string {
	s := c.stageHandling()
	accept := func(candidate string) string {
		return ToCase(util.TrimOrEmpty(candidate), s.ExtractInCase)
	}

	if util.IsNotBlank(c.Stage) {
		return accept(c.Stage)
	}

	if v := stageFromEnv(c, s); v != "" {
		return accept(v)
	}

	if s.CustomToStage != nil {
		if v := s.CustomToStage(event, meta, c); util.IsNotBlank(v) {
			return accept(v)
		}
	}

	if event != nil && util.IsNotBlank(event.Stage) {
		return accept(event.Stage)
	}

	if v := stageFromAlias(event, meta, c, s); v != "" {
		return accept(v)
	}

	if v := stageFromEventSources(event, c, s); v != "" {
		return accept(v)
	}

	if util.IsNotBlank(s.DefaultStage) {
		return accept(s.DefaultStage)
	}
	if util.IsNotBlank(c.DefaultStage) {
		return accept(c.DefaultStage)
	}
	return ""
}

// stageFromEnv reads the configured stage environment variable, rejecting the
// literal strings "undefined" and "null" that leak out of templated deploys.
func stageFromEnv(c *Context, s *Settings) string {
	name := s.EnvStageName
	if util.IsBlank(name) {
		name = DefaultEnvStageName
	}
	v := util.TrimOrEmpty(c.env(name))
	if v == "" || strings.EqualFold(v, "undefined") || strings.EqualFold(v, "null") {
		return ""
	}
	return v
}

// stageFromAlias extracts the alias from the invoked-function ARN and hands it
// to the configured conversion hook. Only attempted when the invocation
// carries both a function version and an invoked-function ARN.
func stageFromAlias(event *Event, meta *lambdas.InvocationMetadata, c *Context, s *Settings) string {
	if meta == nil || s.ConvertAliasToStage == nil {
		return ""
	}
	if util.IsBlank(meta.FunctionVersion) || util.IsBlank(meta.InvokedFunctionArn) {
		return ""
	}

	_, _, alias := lambdas.FunctionNameVersionAndAlias(meta)
	if util.IsBlank(alias) {
		return ""
	}
	return s.ConvertAliasToStage(alias, event, meta, c)
}

// stageFromEventSources derives a stage from the stream or table names of the
// event's records. The step yields nothing when the records span zero or
// multiple distinct event sources, or when the derived stages disagree.
func stageFromEventSources(event *Event, c *Context, s *Settings) string {
	if event == nil || len(event.Records) == 0 {
		return ""
	}

	sources := lo.Uniq(lo.FilterMap(event.Records, func(r Record, _ int) (string, bool) {
		return r.EventSource, util.IsNotBlank(r.EventSource)
	}))
	if len(sources) != 1 {
		c.logger().WithField("eventSources", sources).
			Warn("Skipping stage resolution from event sources - zero or multiple distinct sources")
		return ""
	}

	var extract func(qualifiedName string, c *Context) string
	switch sources[0] {
	case EventSourceKinesis:
		extract = func(name string, c *Context) string {
			return extractStageWithFallback(name, c, s.ExtractStageFromStreamName, s.ExtractNameAndStageFromStreamName)
		}
	case EventSourceDynamoDB:
		extract = func(name string, c *Context) string {
			return extractStageWithFallback(name, c, s.ExtractStageFromResourceName, s.ExtractNameAndStageFromResourceName)
		}
	default:
		return ""
	}

	var derived []string
	for _, r := range event.Records {
		name := arns.ParseResourceDescriptor(r.EventSourceARN).Resource
		if util.IsBlank(name) {
			continue
		}
		if stage := extract(name, c); util.IsNotBlank(stage) {
			derived = append(derived, stage)
		}
	}

	distinct := lo.Uniq(derived)
	if len(distinct) > 1 {
		c.logger().WithField("stages", distinct).
			Warn("Skipping stage resolution from event sources - records derive multiple distinct stages")
		return ""
	}
	if len(distinct) == 0 {
		return ""
	}
	return derived[0]
}

// ConfigureStage resolves the stage and writes it onto the context. When
// failFast is set and resolution yields nothing, an error describing the event
// and invocation metadata is returned and the context is left unchanged;
// otherwise a blank stage is written with a warning.
func ConfigureStage(c *Context, event *Event, meta *lambdas.InvocationMetadata, failFast bool) error {
	stage := ResolveStage(event, meta, c)
	if util.IsBlank(stage) {
		if failFast {
			return errors.Newf("failed to resolve stage from event (%s) and invocation metadata (%s)",
				jsonify(event), jsonify(meta))
		}
		c.logger().WithFields(map[string]interface{}{
			"event":      jsonify(event),
			"invocation": jsonify(meta),
		}).Warn("Failed to resolve stage - continuing with blank stage")
	}
	c.Stage = stage
	return nil
}

func jsonify(v interface{}) string {
	body, err := json.Marshal(v)
	if err != nil {
		return "<unserializable>"
	}
	return string(body)
}
