package stages

import "strings"

// CaseMode controls how stage values are case-converted when injected into or
// extracted from names.
type CaseMode string

const (
	CaseUpper CaseMode = "upper"
	CaseLower CaseMode = "lower"
	CaseAsIs  CaseMode = "as_is"
)

// ToCase converts value according to mode. The mode is matched
// case-insensitively and also accepts "uppercase"/"lowercase"; anything else
// (including "as_is" and blank) leaves the value unchanged. An empty value is
// always returned unchanged.
func ToCase(value string, mode CaseMode) string {
	if value == "" {
		return value
	}
	switch strings.ToLower(string(mode)) {
	case "upper", "uppercase":
		return strings.ToUpper(value)
	case "lower", "lowercase":
		return strings.ToLower(value)
	default:
		return value
	}
}
