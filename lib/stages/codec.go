package stages

import (
	"strings"

	"awscore/lib/util"
)

// DefaultStageSeparator is used whenever a separator is not configured.
// A blank separator is treated as "not configured" rather than matched
// literally.
const DefaultStageSeparator = "_"

// InjectStageSuffix appends separator plus the case-converted stage to name.
// A blank stage leaves the name unchanged, and a name already carrying the
// exact suffix is returned as-is, so repeated injection is idempotent.
func InjectStageSuffix(name, separator, stage string, mode CaseMode) string {
	if util.IsBlank(stage) {
		return name
	}
	if separator == "" {
		separator = DefaultStageSeparator
	}
	suffix := separator + ToCase(stage, mode)
	if strings.HasSuffix(name, suffix) {
		return name
	}
	return name + suffix
}

// ExtractStageSuffix returns the case-converted stage following the last
// occurrence of separator in qualifiedName, or "" if the separator does not
// occur.
func ExtractStageSuffix(qualifiedName, separator string, mode CaseMode) string {
	_, stage := SplitNameAndStageSuffix(qualifiedName, separator, mode)
	return stage
}

// SplitNameAndStageSuffix splits qualifiedName at the last occurrence of
// separator into the base name and the case-converted stage. If the separator
// does not occur, the whole name and an empty stage are returned.
func SplitNameAndStageSuffix(qualifiedName, separator string, mode CaseMode) (string, string) {
	if separator == "" {
		separator = DefaultStageSeparator
	}
	i := strings.LastIndex(qualifiedName, separator)
	if i < 0 {
		return qualifiedName, ""
	}
	return qualifiedName[:i], ToCase(qualifiedName[i+len(separator):], mode)
}
