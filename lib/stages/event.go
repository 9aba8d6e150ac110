package stages

import (
	"github.com/aws/aws-lambda-go/events"
	"github.com/tidwall/gjson"
)

// Recognized event-source identifiers for stream-bearing records.
const (
	EventSourceKinesis  = "aws:kinesis"
	EventSourceDynamoDB = "aws:dynamodb"
)

// Record is the subset of a batch-delivered invocation record that stage
// resolution reads.
type Record struct {
	EventSource    string
	EventSourceARN string
	AWSRegion      string
}

// Event is the subset of a triggering event payload that stage resolution
// reads. Unrecognized payload shapes simply carry no records and no stage.
type Event struct {
	// Stage is the explicit stage field of the event, if any.
	Stage string

	Records []Record
}

// ParseEvent extracts the stage-resolution view from an arbitrary JSON event
// payload. Invalid JSON yields the zero Event; resolution steps that need the
// missing fields then skip.
func ParseEvent(raw []byte) Event {
	if !gjson.ValidBytes(raw) {
		return Event{}
	}

	var e Event
	e.Stage = gjson.GetBytes(raw, "stage").String()

	for _, rec := range gjson.GetBytes(raw, "Records").Array() {
		e.Records = append(e.Records, Record{
			EventSource:    rec.Get("eventSource").String(),
			EventSourceARN: rec.Get("eventSourceARN").String(),
			AWSRegion:      rec.Get("awsRegion").String(),
		})
	}
	return e
}

// FromKinesisEvent builds the stage-resolution view of a Kinesis batch event.
func FromKinesisEvent(event events.KinesisEvent) Event {
	var e Event
	for _, rec := range event.Records {
		e.Records = append(e.Records, Record{
			EventSource:    rec.EventSource,
			EventSourceARN: rec.EventSourceArn,
			AWSRegion:      rec.AwsRegion,
		})
	}
	return e
}

// FromDynamoDBEvent builds the stage-resolution view of a DynamoDB stream
// batch event.
func FromDynamoDBEvent(event events.DynamoDBEvent) Event {
	var e Event
	for _, rec := range event.Records {
		e.Records = append(e.Records, Record{
			EventSource:    rec.EventSource,
			EventSourceARN: rec.EventSourceArn,
			AWSRegion:      rec.AWSRegion,
		})
	}
	return e
}
