package stages_test

import (
	"fmt"

	"awscore/lib/stages"
)

func ExampleResolveStage() {
	c := &stages.Context{
		Env: func(string) string { return "" },
	}
	event := &stages.Event{Stage: "Dev"}

	fmt.Println(stages.ResolveStage(event, nil, c))
	// Output: dev
}

func ExampleResolveStage_eventSource() {
	c := &stages.Context{
		Env: func(string) string { return "" },
	}
	event := &stages.Event{Records: []stages.Record{{
		EventSource:    stages.EventSourceKinesis,
		EventSourceARN: "arn:aws:kinesis:us-west-2:123456789012:stream/Orders_QA",
	}}}

	fmt.Println(stages.ResolveStage(event, nil, c))
	// Output: qa
}

func ExampleInjectStageSuffix() {
	fmt.Println(stages.InjectStageSuffix("Orders", "_", "qa", stages.CaseUpper))
	fmt.Println(stages.InjectStageSuffix("Orders_QA", "_", "qa", stages.CaseUpper))
	// Output:
	// Orders_QA
	// Orders_QA
}

func ExampleSplitNameAndStageSuffix() {
	name, stage := stages.SplitNameAndStageSuffix("Orders_QA", "_", stages.CaseLower)
	fmt.Println(name, stage)
	// Output: Orders qa
}
