package router

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/shandysiswandi/gofolio/internal/pkg/instrument"
)

type staticStringID struct{ v string }

func (s staticStringID) Generate() string { return s.v }

func TestChainOrder(t *testing.T) {

	// Arrange
	var order []string
	tag := func(name string) Middleware {
		return func(next http.Handler) http.Handler {
			return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				order = append(order, name)
				next.ServeHTTP(w, r)
			})
		}
	}
	h := Chain(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		order = append(order, "handler")
	}), tag("first"), tag("second"))

	// Act
	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))

	// Assert
	want := []string{"first", "second", "handler"}
	if len(order) != len(want) {
		t.Fatalf("expected %v, got %v", want, order)
	}
	for i := range want {
		if order[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, order)
		}
	}
}

func TestCorrelationIDMiddleware(t *testing.T) {

	t.Run("GeneratesWhenMissing", func(t *testing.T) {

		// Arrange
		var got string
		h := middlewareCorrelationID(staticStringID{v: "generated-cid"})(
			http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
				got = instrument.GetCorrelationID(r.Context())
			}))
		rec := httptest.NewRecorder()

		// Act
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

		// Assert
		if got != "generated-cid" {
			t.Fatalf("expected generated cid in context, got %q", got)
		}
		if v := rec.Header().Get(HeaderCorrelationID); v != "generated-cid" {
			t.Fatalf("expected cid header, got %q", v)
		}
	})

	t.Run("KeepsProvidedHeader", func(t *testing.T) {

		// Arrange
		var got string
		h := middlewareCorrelationID(staticStringID{v: "generated-cid"})(
			http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
				got = instrument.GetCorrelationID(r.Context())
			}))
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set(HeaderCorrelationID, "client-cid")

		// Act
		h.ServeHTTP(httptest.NewRecorder(), req)

		// Assert
		if got != "client-cid" {
			t.Fatalf("expected client cid in context, got %q", got)
		}
	})
}
