package metrics

import (
	"errors"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"

	"tourcrm/internal/apperrors"
)

func TestOutcome(t *testing.T) {
	tests := []struct {
		err  error
		want string
	}{
		{nil, "ok"},
		{apperrors.NotFound("lead", "L1"), "not_found"},
		{apperrors.FieldError("pax", "must be at least 1"), "validation_error"},
		{errors.New("boom"), "error"},
	}
	for _, tt := range tests {
		if got := Outcome(tt.err); got != tt.want {
			t.Errorf("Outcome(%v) = %q, want %q", tt.err, got, tt.want)
		}
	}
}

func TestObserveMutationCounts(t *testing.T) {
	before := testutil.ToFloat64(mutations.WithLabelValues("booking", "create", "ok"))
	ObserveMutation("booking", "create", nil)
	after := testutil.ToFloat64(mutations.WithLabelValues("booking", "create", "ok"))
	if after-before != 1 {
		t.Errorf("counter moved by %v", after-before)
	}
}
