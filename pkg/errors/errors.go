package errors

import (
	stdErrors "errors"
	"fmt"
	"net/http"
)

type Code string

const (
	CodeMethodNotAllowed    Code = "method_not_allowed"
	CodeServerNotConfigured Code = "server_not_configured"
	CodeInvalidJSON         Code = "invalid_json"
	CodeInvalidPayload      Code = "invalid_payload"
	CodeShopify             Code = "shopify_error"
	CodeInternal            Code = "internal_error"
)

type Metadata struct {
	HTTPStatus    int
	PublicMessage string
	MessageShown  bool
	DetailsShown  bool
}

var metadataByCode = map[Code]Metadata{
	CodeMethodNotAllowed: {
		HTTPStatus: http.StatusMethodNotAllowed,
	},
	CodeServerNotConfigured: {
		HTTPStatus:    http.StatusInternalServerError,
		PublicMessage: "server is not configured",
		MessageShown:  true,
	},
	CodeInvalidJSON: {
		HTTPStatus:    http.StatusBadRequest,
		PublicMessage: "request body is not valid JSON",
		MessageShown:  true,
	},
	CodeInvalidPayload: {
		HTTPStatus:   http.StatusBadRequest,
		DetailsShown: true,
	},
	CodeShopify: {
		HTTPStatus:    http.StatusBadGateway,
		PublicMessage: "Failed to create draft order.",
		MessageShown:  true,
	},
	CodeInternal: {
		HTTPStatus:    http.StatusInternalServerError,
		PublicMessage: "internal server error",
		MessageShown:  true,
	},
}

func MetadataFor(code Code) Metadata {
	if meta, ok := metadataByCode[code]; ok {
		return meta
	}
	return metadataByCode[CodeInternal]
}

type Error struct {
	code           Code
	message        string
	details        []string
	upstreamStatus int
	cause          error
}

func New(code Code, message string) *Error {
	return &Error{code: code, message: message}
}

func Wrap(code Code, err error, message string) *Error {
	if err == nil {
		return New(code, message)
	}
	return &Error{code: code, message: message, cause: err}
}

func (e *Error) Code() Code {
	if e == nil {
		return CodeInternal
	}
	return e.code
}

func (e *Error) Message() string {
	if e == nil {
		return ""
	}
	return e.message
}

func (e *Error) Details() []string {
	if e == nil {
		return nil
	}
	return e.details
}

func (e *Error) WithDetails(details []string) *Error {
	if e == nil {
		return nil
	}
	e.details = details
	return e
}

// UpstreamStatus is the HTTP status returned by the upstream platform, or zero.
func (e *Error) UpstreamStatus() int {
	if e == nil {
		return 0
	}
	return e.upstreamStatus
}

func (e *Error) WithUpstreamStatus(status int) *Error {
	if e == nil {
		return nil
	}
	e.upstreamStatus = status
	return e
}

func (e *Error) Error() string {
	if e == nil {
		return ""
	}
	return fmt.Sprintf("%s: %s", e.code, e.message)
}

func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.cause
}

func As(err error) *Error {
	if err == nil {
		return nil
	}
	var typed *Error
	if stdErrors.As(err, &typed) {
		return typed
	}
	return nil
}
