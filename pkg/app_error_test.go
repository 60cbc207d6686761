package pkg

import (
	"errors"
	"net/http"
	"testing"
)

func TestAppError(t *testing.T) {
	t.Run("simple", func(t *testing.T) {
		err := NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
		if err.Error() != "INVALID_REQUEST: Invalid request" {
			t.Fatalf("unexpected message: %s", err.Error())
		}
		if err.Unwrap() != nil {
			t.Fatalf("expected no cause")
		}
		body := err.ToHTTPError()
		if body.Code != "INVALID_REQUEST" || body.Message != "Invalid request" {
			t.Fatalf("unexpected body: %+v", body)
		}
	})

	t.Run("wrapped cause", func(t *testing.T) {
		cause := errors.New("db")
		err := NewDomainError("INTERNAL_ERROR", "An internal error occurred", cause, http.StatusInternalServerError)
		if !errors.Is(err, cause) {
			t.Fatalf("expected cause to be reachable")
		}
		if err.HTTPStatus != http.StatusInternalServerError {
			t.Fatalf("unexpected status %d", err.HTTPStatus)
		}
		if err.Error() != "INTERNAL_ERROR: An internal error occurred: db" {
			t.Fatalf("unexpected message: %s", err.Error())
		}
	})
}
