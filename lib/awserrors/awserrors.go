// Package awserrors classifies errors returned by the AWS SDK into the
// categories Lambda handlers branch on: throttling, retryable, not-found,
// conditional-check failures and credential expiry.
package awserrors

import (
	smithy "github.com/aws/smithy-go"
	smithyhttp "github.com/aws/smithy-go/transport/http"
	"github.com/cockroachdb/errors"
)

var throttlingCodes = map[string]bool{
	"Throttling":          true,
	"ThrottlingException": true,
	"ItemCollectionSizeLimitExceededException": true,
	"LimitExceededException":                   true,
	"ProvisionedThroughputExceededException":   true,
	"RequestLimitExceeded":                     true,
	"RequestThrottled":                         true,
	"TooManyRequestsException":                 true,
}

var expiredCredentialsCodes = map[string]bool{
	"ExpiredToken":          true,
	"ExpiredTokenException": true,
	"RequestExpired":        true,
}

// ErrorCode returns the AWS API error code, or "" for non-API errors.
func ErrorCode(err error) string {
	var ae smithy.APIError
	if errors.As(err, &ae) {
		return ae.ErrorCode()
	}
	return ""
}

// StatusCode returns the HTTP status code of the AWS response that produced
// the error, or 0 when unavailable.
func StatusCode(err error) int {
	var re *smithyhttp.ResponseError
	if errors.As(err, &re) {
		return re.HTTPStatusCode()
	}
	return 0
}

// IsThrottled reports whether the error is a rate-limiting rejection.
func IsThrottled(err error) bool {
	return throttlingCodes[ErrorCode(err)] || StatusCode(err) == 429
}

// IsRetryable reports whether retrying the request could succeed: throttling,
// server-side faults (5xx), and credential expiry after a refresh.
func IsRetryable(err error) bool {
	if IsThrottled(err) || IsExpiredCredentials(err) {
		return true
	}
	return StatusCode(err) >= 500
}

// IsServiceUnavailable reports whether the service answered 503.
func IsServiceUnavailable(err error) bool {
	return StatusCode(err) == 503
}

// IsConditionalCheckFailed reports a DynamoDB conditional-write rejection.
func IsConditionalCheckFailed(err error) bool {
	return ErrorCode(err) == "ConditionalCheckFailedException"
}

// IsProvisionedThroughputExceeded reports a capacity rejection.
func IsProvisionedThroughputExceeded(err error) bool {
	return ErrorCode(err) == "ProvisionedThroughputExceededException"
}

// IsResourceNotFound reports whether the requested resource does not exist.
func IsResourceNotFound(err error) bool {
	switch ErrorCode(err) {
	case "ResourceNotFoundException", "NoSuchEntity", "NoSuchKey":
		return true
	}
	return StatusCode(err) == 404
}

// IsLimitExceeded reports an account or API limit rejection.
func IsLimitExceeded(err error) bool {
	return ErrorCode(err) == "LimitExceededException"
}

// IsExpiredCredentials reports whether the request was signed with expired
// credentials.
func IsExpiredCredentials(err error) bool {
	return expiredCredentialsCodes[ErrorCode(err)]
}
