package apperrors

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"testing"
)

func TestAsThroughWrapping(t *testing.T) {
	base := NotFound("lead", "L-1")
	wrapped := fmt.Errorf("update lead: %w", base)

	got, ok := As(wrapped)
	if !ok {
		t.Fatal("expected AppError in chain")
	}
	if got.HTTPStatus != http.StatusNotFound {
		t.Errorf("status = %d, want 404", got.HTTPStatus)
	}
	if !IsNotFound(wrapped) {
		t.Error("IsNotFound = false")
	}
}

func TestFromDefaultsToInternal(t *testing.T) {
	err := From(errors.New("boom"))
	if err.Code != CodeInternal || err.HTTPStatus != http.StatusInternalServerError {
		t.Errorf("got %s/%d", err.Code, err.HTTPStatus)
	}
}

func TestExternalUnwraps(t *testing.T) {
	cause := errors.New("dial tcp: refused")
	err := External("checkout", cause)
	if !errors.Is(err, cause) {
		t.Error("external error does not unwrap to cause")
	}
	if !IsExternal(err) {
		t.Error("IsExternal = false")
	}
}

func TestValidationMessageListsFields(t *testing.T) {
	err := Validation(map[string]string{"pax": "must be at least 1", "date": "is required"})
	msg := err.Error()
	if !strings.Contains(msg, "date is required, pax must be at least 1") {
		t.Errorf("unexpected message %q", msg)
	}
}
