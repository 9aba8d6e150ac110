package stages

import (
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"awscore/lib/lambdas"
)

// newTestContext returns a context with an empty environment so resolution is
// deterministic regardless of the process environment.
func newTestContext() *Context {
	return &Context{
		Env:    func(string) string { return "" },
		Logger: logrus.New(),
	}
}

func withEnv(c *Context, vars map[string]string) *Context {
	c.Env = func(name string) string { return vars[name] }
	return c
}

func aliasedMeta(alias string) *lambdas.InvocationMetadata {
	return &lambdas.InvocationMetadata{
		FunctionName:       "my-func",
		FunctionVersion:    "7",
		InvokedFunctionArn: "arn:aws:lambda:us-west-2:123456789012:function:my-func:" + alias,
	}
}

func kinesisEvent(streamNames ...string) *Event {
	var e Event
	for _, name := range streamNames {
		e.Records = append(e.Records, Record{
			EventSource:    EventSourceKinesis,
			EventSourceARN: "arn:aws:kinesis:us-west-2:123456789012:stream/" + name,
			AWSRegion:      "us-west-2",
		})
	}
	return &e
}

func Test_ResolveStage_ExplicitContextStageWins(t *testing.T) {
	//Arrange: every later step has a viable candidate
	c := withEnv(newTestContext(), map[string]string{"STAGE": "ES"})
	c.Stage = "CS"
	ConfigureDefaultStageHandling(c, nil, false)
	c.StageHandling.ConvertAliasToStage = func(alias string, _ *Event, _ *lambdas.InvocationMetadata, _ *Context) string {
		return alias
	}

	//Act
	resolved := ResolveStage(kinesisEvent("MyStream_SS"), aliasedMeta("AS"), c)

	//Assert: step 1 short-circuits everything, lowercased by default extract case
	assert.Equal(t, "cs", resolved)
}

func Test_ResolveStage_FallbackOrder(t *testing.T) {
	c := newTestContext()
	ConfigureDefaultStageHandling(c, nil, false)
	c.StageHandling.ConvertAliasToStage = func(alias string, _ *Event, _ *lambdas.InvocationMetadata, _ *Context) string {
		return alias
	}
	meta := aliasedMeta("AS")

	// Event-level stage beats the alias.
	event := kinesisEvent("MyStream_SS")
	event.Stage = "ES"
	assert.Equal(t, "es", ResolveStage(event, meta, c))

	// Removing the event stage falls through to exactly the alias step.
	event.Stage = ""
	assert.Equal(t, "as", ResolveStage(event, meta, c))

	// Removing the alias hook falls through to the event-source step.
	c.StageHandling.ConvertAliasToStage = nil
	assert.Equal(t, "ss", ResolveStage(event, meta, c))
}

func Test_ResolveStage_EnvironmentVariable(t *testing.T) {
	c := withEnv(newTestContext(), map[string]string{"STAGE": "QA"})

	assert.Equal(t, "qa", ResolveStage(nil, nil, c))
}

func Test_ResolveStage_EnvironmentVariable_CustomName(t *testing.T) {
	c := withEnv(newTestContext(), map[string]string{"DEPLOY_ENV": "Dev", "STAGE": "wrong"})
	ConfigureDefaultStageHandling(c, &Options{EnvStageName: "DEPLOY_ENV"}, false)

	assert.Equal(t, "dev", ResolveStage(nil, nil, c))
}

func Test_ResolveStage_EnvironmentVariable_RejectsLiteralUndefinedAndNull(t *testing.T) {
	for _, v := range []string{"undefined", "UNDEFINED", "null", "Null"} {
		c := withEnv(newTestContext(), map[string]string{"STAGE": v})
		assert.Equal(t, "", ResolveStage(nil, nil, c), "env value %q must be rejected", v)
	}
}

func Test_ResolveStage_CustomHook(t *testing.T) {
	c := newTestContext()
	ConfigureDefaultStageHandling(c, nil, false)
	c.StageHandling.CustomToStage = func(event *Event, _ *lambdas.InvocationMetadata, _ *Context) string {
		return "Hooked"
	}

	assert.Equal(t, "hooked", ResolveStage(nil, nil, c))
}

func Test_ResolveStage_AliasRequiresVersionAndArn(t *testing.T) {
	c := newTestContext()
	ConfigureDefaultStageHandling(c, nil, false)
	c.StageHandling.ConvertAliasToStage = func(alias string, _ *Event, _ *lambdas.InvocationMetadata, _ *Context) string {
		return alias
	}

	// Missing function version disables the step.
	meta := aliasedMeta("AS")
	meta.FunctionVersion = ""
	assert.Equal(t, "", ResolveStage(nil, meta, c))

	// ARN trailing component equal to the version is not an alias.
	meta = aliasedMeta("7")
	assert.Equal(t, "", ResolveStage(nil, meta, c))
}

func Test_ResolveStage_EventSourceStreamSuffix(t *testing.T) {
	c := newTestContext()

	assert.Equal(t, "qa", ResolveStage(kinesisEvent("MyStream_QA"), nil, c))
}

func Test_ResolveStage_EventSourceDynamoDBTableSuffix(t *testing.T) {
	c := newTestContext()
	event := &Event{Records: []Record{{
		EventSource:    EventSourceDynamoDB,
		EventSourceARN: "arn:aws:dynamodb:us-west-2:123456789012:table/Orders_PROD/stream/2020-10-10T08:18:22.385",
		AWSRegion:      "us-west-2",
	}}}

	assert.Equal(t, "prod", ResolveStage(event, nil, c))
}

func Test_ResolveStage_EventSourceAmbiguousStages(t *testing.T) {
	c := newTestContext()
	c.DefaultStage = "Fallback"

	// Two records deriving two distinct stages is ambiguous; resolution falls
	// through to the default stage.
	assert.Equal(t, "fallback", ResolveStage(kinesisEvent("MyStream_QA", "MyStream_PROD"), nil, c))
}

func Test_ResolveStage_EventSourceAgreeingStages(t *testing.T) {
	c := newTestContext()

	assert.Equal(t, "qa", ResolveStage(kinesisEvent("StreamA_QA", "StreamB_QA"), nil, c))
}

func Test_ResolveStage_EventSourceMultipleDistinctSources(t *testing.T) {
	c := newTestContext()
	c.DefaultStage = "dev"
	event := kinesisEvent("MyStream_QA")
	event.Records = append(event.Records, Record{
		EventSource:    EventSourceDynamoDB,
		EventSourceARN: "arn:aws:dynamodb:us-west-2:123456789012:table/Orders_QA/stream/2020-10-10T08:18:22.385",
	})

	assert.Equal(t, "dev", ResolveStage(event, nil, c))
}

func Test_ResolveStage_EventSourceUnrecognized(t *testing.T) {
	c := newTestContext()
	c.DefaultStage = "dev"
	event := &Event{Records: []Record{{
		EventSource:    "aws:sqs",
		EventSourceARN: "arn:aws:sqs:us-west-2:123456789012:queue_QA",
	}}}

	assert.Equal(t, "dev", ResolveStage(event, nil, c))
}

func Test_ResolveStage_Defaults(t *testing.T) {
	c := newTestContext()
	ConfigureDefaultStageHandling(c, &Options{DefaultStage: "Prod"}, false)
	c.DefaultStage = "dev"

	// Settings-level default wins over the context-level default, and case
	// conversion applies to it like any other candidate.
	assert.Equal(t, "prod", ResolveStage(nil, nil, c))

	c.StageHandling.DefaultStage = ""
	assert.Equal(t, "dev", ResolveStage(nil, nil, c))
}

func Test_ResolveStage_GivesUp(t *testing.T) {
	assert.Equal(t, "", ResolveStage(nil, nil, newTestContext()))
}

func Test_ResolveStage_Deterministic(t *testing.T) {
	c := newTestContext()
	event := kinesisEvent("MyStream_QA")
	meta := aliasedMeta("AS")

	first := ResolveStage(event, meta, c)
	for i := 0; i < 5; i++ {
		assert.Equal(t, first, ResolveStage(event, meta, c))
	}
}

func Test_ResolveStage_UpperExtractCase(t *testing.T) {
	c := newTestContext()
	c.Stage = "qa"
	ConfigureDefaultStageHandling(c, &Options{ExtractInCase: "upper"}, false)

	assert.Equal(t, "QA", ResolveStage(nil, nil, c))
}

func Test_ConfigureStage_WritesResolvedStage(t *testing.T) {
	c := withEnv(newTestContext(), map[string]string{"STAGE": "QA"})

	require.NoError(t, ConfigureStage(c, nil, nil, true))
	assert.Equal(t, "qa", c.Stage)
}

func Test_ConfigureStage_FailFast(t *testing.T) {
	c := newTestContext()
	event := &Event{Records: []Record{{EventSource: "aws:sqs"}}}
	meta := &lambdas.InvocationMetadata{FunctionName: "my-func"}

	err := ConfigureStage(c, event, meta, true)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "aws:sqs")
	assert.Contains(t, err.Error(), "my-func")
}

func Test_ConfigureStage_NoFailFastSetsBlank(t *testing.T) {
	c := newTestContext()

	require.NoError(t, ConfigureStage(c, nil, nil, false))
	assert.Equal(t, "", c.Stage)
}
