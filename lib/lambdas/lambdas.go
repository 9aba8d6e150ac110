// Package lambdas provides helpers for reading AWS Lambda invocation metadata
// and wrapping handler failures into structured errors.
package lambdas

import (
	"context"
	"encoding/json"
	"os"

	"github.com/aws/aws-lambda-go/lambdacontext"
	"github.com/google/uuid"

	"awscore/lib/arns"
	"awscore/lib/util"
)

// InvocationMetadata describes the current Lambda invocation. Fields are empty
// when running outside a Lambda runtime (e.g. in tests).
type InvocationMetadata struct {
	FunctionName       string
	FunctionVersion    string
	InvokedFunctionArn string
	AwsRequestID       string
	LogGroupName       string
	LogStreamName      string
	MemoryLimitInMB    int
}

// GetInvocationMetadata extracts invocation metadata from the Lambda context.
// Runtime-wide values (function name, version, log group/stream, memory) come
// from the lambdacontext globals; per-invocation values come from the context.
func GetInvocationMetadata(ctx context.Context) *InvocationMetadata {
	meta := &InvocationMetadata{
		FunctionName:    lambdacontext.FunctionName,
		FunctionVersion: lambdacontext.FunctionVersion,
		LogGroupName:    lambdacontext.LogGroupName,
		LogStreamName:   lambdacontext.LogStreamName,
		MemoryLimitInMB: lambdacontext.MemoryLimitInMB,
	}
	if meta.FunctionName == "" {
		meta.FunctionName = os.Getenv("AWS_LAMBDA_FUNCTION_NAME")
	}

	if lc, ok := lambdacontext.FromContext(ctx); ok {
		meta.InvokedFunctionArn = lc.InvokedFunctionArn
		meta.AwsRequestID = lc.AwsRequestID
	}
	return meta
}

// FunctionNameVersionAndAlias returns the function name, version and the alias
// the function was invoked through. The alias is the trailing component of the
// invoked-function ARN when it differs from the function version; an unaliased
// invocation yields an empty alias.
func FunctionNameVersionAndAlias(meta *InvocationMetadata) (name, version, alias string) {
	if meta == nil {
		return "", "", ""
	}
	name = meta.FunctionName
	version = meta.FunctionVersion

	d := arns.ParseResourceDescriptor(meta.InvokedFunctionArn)
	if name == "" {
		name = d.Resource
	}
	if util.IsNotBlank(d.AliasOrVersion) && d.AliasOrVersion != version {
		alias = d.AliasOrVersion
	}
	return name, version, alias
}

// CorrelationID returns the AWS request ID of the current invocation, or a
// fresh UUID when no request ID is available.
func CorrelationID(ctx context.Context) string {
	if lc, ok := lambdacontext.FromContext(ctx); ok && util.IsNotBlank(lc.AwsRequestID) {
		return lc.AwsRequestID
	}
	return uuid.New().String()
}

// FailureError is a structured handler failure whose Error string is a JSON
// payload, so Lambda callers and step functions can match on the code without
// parsing free text.
type FailureError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Cause   string `json:"cause,omitempty"`

	cause error
}

// NewFailureError builds a FailureError wrapping an optional cause.
func NewFailureError(code, message string, cause error) *FailureError {
	fe := &FailureError{Code: code, Message: message, cause: cause}
	if cause != nil {
		fe.Cause = cause.Error()
	}
	return fe
}

func (e *FailureError) Error() string {
	body, err := json.Marshal(e)
	if err != nil {
		return e.Code + ": " + e.Message
	}
	return string(body)
}

// Unwrap exposes the wrapped cause to errors.Is/As.
func (e *FailureError) Unwrap() error {
	return e.cause
}
