package stages

import "awscore/lib/util"

// ToStageQualifiedStreamName qualifies a stream name with the given stage via
// the configured injection function, passing the name through unchanged when
// none is configured.
func ToStageQualifiedStreamName(unqualifiedName, stage string, c *Context) string {
	s := c.stageHandling()
	if s.InjectStageIntoStreamName == nil {
		return unqualifiedName
	}
	return s.InjectStageIntoStreamName(unqualifiedName, stage, c)
}

// ToStageQualifiedResourceName qualifies a resource name with the given stage
// via the configured injection function, passing the name through unchanged
// when none is configured.
func ToStageQualifiedResourceName(unqualifiedName, stage string, c *Context) string {
	s := c.stageHandling()
	if s.InjectStageIntoResourceName == nil {
		return unqualifiedName
	}
	return s.InjectStageIntoResourceName(unqualifiedName, stage, c)
}

// ExtractStageFromQualifiedStreamName extracts the stage from a qualified
// stream name. The single-value extractor is consulted first; when it yields
// nothing, the combined name-and-stage extractor is the fallback, since some
// configurations only implement the combined form.
func ExtractStageFromQualifiedStreamName(qualifiedName string, c *Context) string {
	s := c.stageHandling()
	return extractStageWithFallback(qualifiedName, c, s.ExtractStageFromStreamName, s.ExtractNameAndStageFromStreamName)
}

// ExtractStageFromQualifiedResourceName extracts the stage from a qualified
// resource name using the same two-tier fallback as the stream variant.
func ExtractStageFromQualifiedResourceName(qualifiedName string, c *Context) string {
	s := c.stageHandling()
	return extractStageWithFallback(qualifiedName, c, s.ExtractStageFromResourceName, s.ExtractNameAndStageFromResourceName)
}

// ExtractNameAndStageFromQualifiedStreamName splits a qualified stream name
// into base name and stage via the configured combined extractor, returning
// the whole name and a blank stage when none is configured.
func ExtractNameAndStageFromQualifiedStreamName(qualifiedName string, c *Context) (string, string) {
	s := c.stageHandling()
	if s.ExtractNameAndStageFromStreamName == nil {
		return qualifiedName, ""
	}
	return s.ExtractNameAndStageFromStreamName(qualifiedName, c)
}

// ExtractNameAndStageFromQualifiedResourceName splits a qualified resource
// name into base name and stage via the configured combined extractor,
// returning the whole name and a blank stage when none is configured.
func ExtractNameAndStageFromQualifiedResourceName(qualifiedName string, c *Context) (string, string) {
	s := c.stageHandling()
	if s.ExtractNameAndStageFromResourceName == nil {
		return qualifiedName, ""
	}
	return s.ExtractNameAndStageFromResourceName(qualifiedName, c)
}

func extractStageWithFallback(qualifiedName string, c *Context,
	extract func(string, *Context) string,
	extractNameAndStage func(string, *Context) (string, string)) string {

	if extract != nil {
		if stage := extract(qualifiedName, c); util.IsNotBlank(stage) {
			return stage
		}
	}
	if extractNameAndStage != nil {
		_, stage := extractNameAndStage(qualifiedName, c)
		return stage
	}
	return ""
}
