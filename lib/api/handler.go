package api

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"
	"github.com/sirupsen/logrus"

	"awscore/lib/lambdas"
	"awscore/lib/regions"
	"awscore/lib/stages"
)

// Handler is an application handler invoked with a fully configured
// invocation context: region and stage resolved, invocation metadata and the
// stage-resolution view of the event attached.
type Handler func(ctx context.Context, event stages.Event, c *stages.Context) (interface{}, error)

// Wrap turns a Handler into a raw Lambda handler. Per invocation it parses
// the stage-resolution view of the payload, resolves region and stage onto a
// copy of the base context, and maps results and errors to API Gateway
// responses. The failFast flag makes a missing stage a handler error instead
// of a warning.
func Wrap(base *stages.Context, h Handler, failFast bool) func(ctx context.Context, raw json.RawMessage) (events.APIGatewayProxyResponse, error) {
	return func(ctx context.Context, raw json.RawMessage) (events.APIGatewayProxyResponse, error) {
		// Each invocation works on its own context copy; the base stays
		// untouched for the lifetime of the container.
		c := *base
		if c.Logger == nil {
			c.Logger = logrus.New()
		}
		event := stages.ParseEvent(raw)
		meta := lambdas.GetInvocationMetadata(ctx)

		if err := regions.ConfigureRegionStageAndContext(&c, &event, meta, failFast); err != nil {
			return ResponseForError(err, c.Logger), nil
		}

		result, err := h(ctx, event, &c)
		if err != nil {
			return ResponseForError(err, c.Logger), nil
		}
		return SuccessResponse(http.StatusOK, result, c.Logger), nil
	}
}

// Start registers the wrapped handler with the Lambda runtime.
func Start(base *stages.Context, h Handler, failFast bool) {
	lambda.Start(Wrap(base, h, failFast))
}
