package errors

import (
	stdErrors "errors"
	"fmt"
)

type Code string

const (
	CodeValidation    Code = "VALIDATION_ERROR"
	CodeNotFound      Code = "NOT_FOUND"
	CodeCorruptState  Code = "CORRUPT_STATE"
	CodeTermsRequired Code = "TERMS_REQUIRED"
	CodeEmptyCart     Code = "EMPTY_CART"
	CodeDependency    Code = "DEPENDENCY_ERROR"
	CodeInternal      Code = "INTERNAL_ERROR"
)

// Metadata describes how a failure surfaces to the shopper. Notify=false
// failures recover silently: state is unchanged and no message is shown.
type Metadata struct {
	Notify         bool
	Retryable      bool
	PublicMessage  string
	DetailsAllowed bool
}

var metadataByCode = map[Code]Metadata{
	CodeValidation: {
		Notify:         true,
		Retryable:      false,
		PublicMessage:  "please complete all required fields",
		DetailsAllowed: true,
	},
	CodeNotFound: {
		Notify:         false,
		Retryable:      false,
		PublicMessage:  "item not found",
		DetailsAllowed: false,
	},
	CodeCorruptState: {
		Notify:         false,
		Retryable:      false,
		PublicMessage:  "saved cart could not be read",
		DetailsAllowed: true,
	},
	CodeTermsRequired: {
		Notify:         true,
		Retryable:      false,
		PublicMessage:  "you must accept the terms and conditions",
		DetailsAllowed: false,
	},
	CodeEmptyCart: {
		Notify:         true,
		Retryable:      false,
		PublicMessage:  "your cart is empty",
		DetailsAllowed: false,
	},
	CodeDependency: {
		Notify:         false,
		Retryable:      true,
		PublicMessage:  "storage unavailable",
		DetailsAllowed: true,
	},
	CodeInternal: {
		Notify:         false,
		Retryable:      true,
		PublicMessage:  "something went wrong",
		DetailsAllowed: false,
	},
}

func MetadataFor(code Code) Metadata {
	if meta, ok := metadataByCode[code]; ok {
		return meta
	}
	return metadataByCode[CodeInternal]
}

type Error struct {
	code    Code
	message string
	details any
	cause   error
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

func (e *Error) Details() any {
	if e == nil {
		return nil
	}
	return e.details
}

func (e *Error) WithDetails(details any) *Error {
	if e == nil {
		return nil
	}
	e.details = details
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
