package arns

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_ParseResourceDescriptor(t *testing.T) {
	tests := []struct {
		name     string
		arn      string
		expected ResourceDescriptor
	}{
		{
			name:     "plain resource",
			arn:      "arn:p:s:r:a:resource",
			expected: ResourceDescriptor{Resource: "resource"},
		},
		{
			name:     "slash-delimited type and resource",
			arn:      "arn:p:s:r:a:type/res",
			expected: ResourceDescriptor{ResourceType: "type", Resource: "res"},
		},
		{
			name:     "colon-delimited with alias",
			arn:      "arn:p:s:r:a:type:res:alias",
			expected: ResourceDescriptor{ResourceType: "type", Resource: "res", AliasOrVersion: "alias"},
		},
		{
			name: "dynamodb table stream with colons in sub-resource",
			arn:  "arn:p:s:r:a:table/T/stream/2020-10-10T08:18:22.385",
			expected: ResourceDescriptor{
				ResourceType:    "table",
				Resource:        "T",
				SubResourceType: "stream",
				SubResource:     "2020-10-10T08:18:22.385",
			},
		},
		{
			name:     "colon-delimited with trailing extras",
			arn:      "arn:p:s:r:a:type:res:alias:x:y",
			expected: ResourceDescriptor{ResourceType: "type", Resource: "res", AliasOrVersion: "alias", Others: []string{"x", "y"}},
		},
		{
			name:     "colon-delimited without alias",
			arn:      "arn:aws:lambda:us-west-2:123456789012:function:my-func",
			expected: ResourceDescriptor{ResourceType: "function", Resource: "my-func"},
		},
		{
			name:     "kinesis stream",
			arn:      "arn:aws:kinesis:us-west-2:123456789012:stream/MyStream_QA",
			expected: ResourceDescriptor{ResourceType: "stream", Resource: "MyStream_QA"},
		},
		{
			name:     "too few segments",
			arn:      "arn:p:s:r:a",
			expected: ResourceDescriptor{},
		},
		{
			name:     "blank",
			arn:      "",
			expected: ResourceDescriptor{},
		},
		{
			name:     "slash-delimited with three parts",
			arn:      "arn:p:s:r:a:a/b/c",
			expected: ResourceDescriptor{ResourceType: "a", Resource: "b/c"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ParseResourceDescriptor(tt.arn))
		})
	}
}

func Test_Segments(t *testing.T) {
	arn := "arn:aws:kinesis:us-west-2:123456789012:stream/MyStream"

	assert.Equal(t, "aws", Partition(arn))
	assert.Equal(t, "kinesis", Service(arn))
	assert.Equal(t, "us-west-2", Region(arn))
	assert.Equal(t, "123456789012", AccountID(arn))
	assert.Equal(t, "stream/MyStream", ResourceSection(arn))
}

func Test_Segments_Malformed(t *testing.T) {
	assert.Equal(t, "", Region("not-an-arn"))
	assert.Equal(t, "", AccountID(""))
	assert.Equal(t, "", ResourceSection("arn:p:s:r:a"))
}
