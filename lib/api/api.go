// Package api wraps Lambda handlers for API Gateway: standardized success and
// error responses, error-to-status mapping via AWS error classification, and a
// Start helper that resolves region and stage before delegating to the
// handler.
package api

import (
	"encoding/json"
	"net/http"

	"github.com/aws/aws-lambda-go/events"
	"github.com/cockroachdb/errors"
	"github.com/sirupsen/logrus"

	"awscore/lib/awserrors"
	"awscore/lib/lambdas"
)

// SuccessResponse creates a successful API Gateway response
func SuccessResponse(statusCode int, data interface{}, logger *logrus.Logger) events.APIGatewayProxyResponse {
	body, err := json.Marshal(data)
	if err != nil {
		logger.WithError(err).Error("Failed to marshal response data")
		return ErrorResponse(http.StatusInternalServerError, "Internal server error", logger)
	}

	return events.APIGatewayProxyResponse{
		StatusCode: statusCode,
		Body:       string(body),
		Headers: map[string]string{
			"Content-Type": "application/json",
		},
	}
}

// ErrorResponse creates an error API Gateway response
func ErrorResponse(statusCode int, message string, logger *logrus.Logger) events.APIGatewayProxyResponse {
	errorData := map[string]interface{}{
		"error":   true,
		"message": message,
		"status":  statusCode,
	}

	body, err := json.Marshal(errorData)
	if err != nil {
		logger.WithError(err).Error("Failed to marshal error response")
		body = []byte(`{"error":true,"message":"Internal server error","status":500}`)
	}

	return events.APIGatewayProxyResponse{
		StatusCode: statusCode,
		Body:       string(body),
		Headers: map[string]string{
			"Content-Type": "application/json",
		},
	}
}

// ResponseForError maps a handler error to an API Gateway response using the
// AWS error taxonomy: throttling maps to 429, missing resources to 404,
// conditional-check failures to 409, anything else to the wrapped HTTP status
// or 500. A lambdas.FailureError keeps its own message; other errors are
// masked to avoid leaking internals.
func ResponseForError(err error, logger *logrus.Logger) events.APIGatewayProxyResponse {
	message := "Internal server error"
	var fe *lambdas.FailureError
	if errors.As(err, &fe) {
		message = fe.Message
	}

	switch {
	case awserrors.IsThrottled(err):
		return ErrorResponse(http.StatusTooManyRequests, message, logger)
	case awserrors.IsResourceNotFound(err):
		return ErrorResponse(http.StatusNotFound, message, logger)
	case awserrors.IsConditionalCheckFailed(err):
		return ErrorResponse(http.StatusConflict, message, logger)
	}

	if status := awserrors.StatusCode(err); status >= 400 {
		return ErrorResponse(status, message, logger)
	}
	logger.WithError(err).Error("Unhandled handler error")
	return ErrorResponse(http.StatusInternalServerError, message, logger)
}
