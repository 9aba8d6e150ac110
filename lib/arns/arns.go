// Package arns extracts components from AWS ARN strings.
//
// An ARN has the form "arn:partition:service:region:account:resource..." where
// the resource section after the fifth colon may itself be slash- or
// colon-delimited depending on the service (e.g. "stream/MyStream" for
// Kinesis, "table/MyTable/stream/2020-10-10T08:18:22.385" for DynamoDB
// streams, "function:my-func:prod" for aliased Lambda functions).
package arns

import "strings"

// Segment indexes within a colon-split ARN.
const (
	partitionIndex = 1
	serviceIndex   = 2
	regionIndex    = 3
	accountIndex   = 4
	resourceIndex  = 5

	// minSegments is the minimum number of colon-separated segments in a valid ARN.
	minSegments = 6
)

// ResourceDescriptor holds the typed parts of an ARN's resource section.
// All fields are empty when absent; a descriptor is never partially invalid.
type ResourceDescriptor struct {
	ResourceType    string
	Resource        string
	SubResourceType string
	SubResource     string
	AliasOrVersion  string
	Others          []string
}

// ParseResourceDescriptor parses the resource section of the given ARN into a
// ResourceDescriptor. It never fails: blank or malformed input (fewer than six
// colon-separated segments) yields the zero descriptor.
func ParseResourceDescriptor(arn string) ResourceDescriptor {
	section := ResourceSection(arn)
	if section == "" {
		return ResourceDescriptor{}
	}

	slash := strings.Index(section, "/")
	colon := strings.Index(section, ":")

	switch {
	case slash < 0 && colon < 0:
		// Whole section is the resource, e.g. "arn:aws:sqs:r:a:queue-name".
		return ResourceDescriptor{Resource: section}

	case slash >= 0 && (colon < 0 || slash < colon):
		// Slash-delimited, e.g. "stream/Name" or "table/T/stream/Label".
		parts := strings.SplitN(section, "/", 4)
		if len(parts) == 4 {
			return ResourceDescriptor{
				ResourceType:    parts[0],
				Resource:        parts[1],
				SubResourceType: parts[2],
				SubResource:     parts[3],
			}
		}
		rest := strings.SplitN(section, "/", 2)
		return ResourceDescriptor{ResourceType: rest[0], Resource: rest[1]}

	default:
		// Colon-delimited, e.g. "function:name:alias[:...]".
		parts := strings.Split(section, ":")
		d := ResourceDescriptor{ResourceType: parts[0]}
		if len(parts) > 1 {
			d.Resource = parts[1]
		}
		if len(parts) > 2 {
			d.AliasOrVersion = parts[2]
		}
		if len(parts) > 3 {
			d.Others = parts[3:]
		}
		return d
	}
}

// ResourceSection returns everything after the fifth colon of the ARN, or ""
// if the ARN has fewer than six colon-separated segments.
func ResourceSection(arn string) string {
	parts := strings.SplitN(arn, ":", minSegments)
	if len(parts) < minSegments {
		return ""
	}
	return parts[resourceIndex]
}

// Partition returns the partition segment of the ARN, or "" if malformed.
func Partition(arn string) string {
	return segment(arn, partitionIndex)
}

// Service returns the service segment of the ARN, or "" if malformed.
func Service(arn string) string {
	return segment(arn, serviceIndex)
}

// Region returns the region segment of the ARN, or "" if malformed.
func Region(arn string) string {
	return segment(arn, regionIndex)
}

// AccountID returns the account segment of the ARN, or "" if malformed.
func AccountID(arn string) string {
	return segment(arn, accountIndex)
}

func segment(arn string, index int) string {
	parts := strings.SplitN(arn, ":", minSegments)
	if len(parts) < minSegments {
		return ""
	}
	return parts[index]
}
