package domain

import (
	"errors"
	"fmt"
	"testing"
)

func TestValidationError_SingleField(t *testing.T) {
	t.Parallel()

	err := NewValidationError("title", "required")

	if got := err.Error(); got != "validation: title: required" {
		t.Fatalf("unexpected Error(): %q", got)
	}
	if !errors.Is(err, ErrValidation) {
		t.Fatal("errors.Is(err, ErrValidation) = false")
	}
}

func TestValidationError_MultipleFields(t *testing.T) {
	t.Parallel()

	var ve ValidationError
	ve.Add("id", "required")
	ve.Add("title", "must not be blank")
	err := &ve

	if got := err.Error(); got != "validation: 2 errors (id: required; title: must not be blank)" {
		t.Fatalf("unexpected Error(): %q", got)
	}
	if !errors.Is(err, ErrValidation) {
		t.Fatal("errors.Is(err, ErrValidation) = false")
	}
	if len(err.Errors) != 2 {
		t.Fatalf("expected 2 field errors, got %d", len(err.Errors))
	}
}

func TestValidationError_AsThroughWrap(t *testing.T) {
	t.Parallel()

	wrapped := fmt.Errorf("create todo: %w", NewValidationError("title", "required"))

	var ve *ValidationError
	if !errors.As(wrapped, &ve) {
		t.Fatal("errors.As should find the ValidationError")
	}
	if ve.Errors[0].Field != "title" {
		t.Errorf("field: got %q, want %q", ve.Errors[0].Field, "title")
	}
	if !errors.Is(wrapped, ErrValidation) {
		t.Fatal("wrapped error should match ErrValidation")
	}
}

func TestSentinelErrors_AreDistinct(t *testing.T) {
	t.Parallel()

	if errors.Is(ErrNotFound, ErrValidation) || errors.Is(ErrValidation, ErrNotFound) {
		t.Fatal("sentinel errors should not match each other")
	}
}

func TestValidationError_Collect(t *testing.T) {
	t.Parallel()

	var ve ValidationError
	if ve.Err() != nil {
		t.Fatal("empty collector should report no error")
	}

	ve.Add("title", "required")
	ve.Add("title", "max 10 characters")

	err := ve.Err()
	if err == nil {
		t.Fatal("expected an error after Add")
	}
	if !errors.Is(err, ErrValidation) {
		t.Fatal("collected error should match ErrValidation")
	}
	if len(ve.Errors) != 2 || ve.Errors[0].Message != "required" {
		t.Errorf("field errors should keep insertion order, got %+v", ve.Errors)
	}

	var nilVE *ValidationError
	if nilVE.Err() != nil {
		t.Error("nil collector should report no error")
	}
}
