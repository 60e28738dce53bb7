package errors

import (
	stdErrors "errors"
	"testing"
)

func TestMetadataForKnownCodes(t *testing.T) {
	tests := []struct {
		code      Code
		notify    bool
		publicMsg string
		retryable bool
		detailsOK bool
	}{
		{code: CodeValidation, notify: true, publicMsg: "please complete all required fields", detailsOK: true},
		{code: CodeNotFound, publicMsg: "item not found"},
		{code: CodeCorruptState, publicMsg: "saved cart could not be read", detailsOK: true},
		{code: CodeTermsRequired, notify: true, publicMsg: "you must accept the terms and conditions"},
		{code: CodeEmptyCart, notify: true, publicMsg: "your cart is empty"},
		{code: CodeDependency, publicMsg: "storage unavailable", retryable: true, detailsOK: true},
		{code: CodeInternal, publicMsg: "something went wrong", retryable: true},
	}

	for _, tt := range tests {
		meta := MetadataFor(tt.code)
		if meta.Notify != tt.notify {
			t.Fatalf("code %s expected notify %v got %v", tt.code, tt.notify, meta.Notify)
		}
		if meta.PublicMessage != tt.publicMsg {
			t.Fatalf("code %s expected public message %q got %q", tt.code, tt.publicMsg, meta.PublicMessage)
		}
		if meta.Retryable != tt.retryable {
			t.Fatalf("code %s expected retryable %v got %v", tt.code, tt.retryable, meta.Retryable)
		}
		if meta.DetailsAllowed != tt.detailsOK {
			t.Fatalf("code %s expected details allowed %v got %v", tt.code, tt.detailsOK, meta.DetailsAllowed)
		}
	}
}

func TestMetadataForUnknownCodeDefaultsToInternal(t *testing.T) {
	meta := MetadataFor("SOMETHING_UNKNOWN")
	if meta.PublicMessage != "something went wrong" {
		t.Fatalf("expected internal metadata, got %q", meta.PublicMessage)
	}
}

func TestErrorConstructors(t *testing.T) {
	base := New(CodeValidation, "missing email")
	if base.Code() != CodeValidation {
		t.Fatalf("expected validation code, got %s", base.Code())
	}
	if base.Message() != "missing email" {
		t.Fatalf("unexpected message %q", base.Message())
	}
	if base.Details() != nil {
		t.Fatalf("details should be nil by default")
	}

	withDetails := base.WithDetails(map[string]string{"field": "email"})
	if withDetails.Details() == nil {
		t.Fatal("expected details to be attached")
	}

	cause := stdErrors.New("disk gone")
	wrapped := Wrap(CodeDependency, cause, "save cart")
	if !stdErrors.Is(wrapped, cause) {
		t.Fatal("expected wrapped cause to unwrap")
	}
	if wrapped.Error() != "DEPENDENCY_ERROR: save cart" {
		t.Fatalf("unexpected error string %q", wrapped.Error())
	}
}

func TestAs(t *testing.T) {
	err := New(CodeNotFound, "no such line")
	wrapped := Wrap(CodeDependency, err, "outer")

	if typed := As(wrapped); typed == nil || typed.Code() != CodeDependency {
		t.Fatalf("expected outer typed error, got %v", typed)
	}
	if typed := As(stdErrors.New("plain")); typed != nil {
		t.Fatalf("expected nil for untyped error, got %v", typed)
	}
	if typed := As(nil); typed != nil {
		t.Fatalf("expected nil for nil error")
	}
}
