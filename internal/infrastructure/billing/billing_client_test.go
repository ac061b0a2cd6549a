package billing

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"
)

func TestNewClient(t *testing.T) {
	t.Run("missing base url", func(t *testing.T) {
		_, err := NewClient("  ", "key", nil)
		if !errors.Is(err, ErrMissingBillingBaseURL) {
			t.Fatalf("expected ErrMissingBillingBaseURL, got %v", err)
		}
	})

	t.Run("missing api key", func(t *testing.T) {
		_, err := NewClient("https://billing.example.com", " ", nil)
		if !errors.Is(err, ErrMissingBillingAPIKey) {
			t.Fatalf("expected ErrMissingBillingAPIKey, got %v", err)
		}
	})

	t.Run("mock mode skips credential checks", func(t *testing.T) {
		t.Setenv("BILLING_MOCK", "true")
		c, err := NewClient("", "", nil)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		claims, err := c.ListClaims(context.Background(), time.Now(), 3)
		if err != nil || len(claims) != 0 {
			t.Fatalf("expected empty mock inventory, got %v %v", claims, err)
		}
	})
}

func TestClient_ListClaims(t *testing.T) {
	t.Run("walks pages until the token runs out", func(t *testing.T) {
		var calls atomic.Int32
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			n := calls.Add(1)
			if r.URL.Path != "/api/invoicing/v1/inventory" {
				t.Errorf("unexpected path: %s", r.URL.Path)
			}
			if got := r.Header.Get("Authorization"); got != "Bearer key" {
				t.Errorf("unexpected auth header: %s", got)
			}
			if got := r.URL.Query().Get("page_size"); got != "100" {
				t.Errorf("unexpected page_size: %s", got)
			}

			page := inventoryPage{
				Records: []inventoryRecord{{
					ClaimID:     fmt.Sprintf("claim-%d", n),
					EncounterID: fmt.Sprintf("enc-%d", n),
					FinalizedAt: "2026-08-15T10:00:00Z",
				}},
			}
			if n < 2 {
				page.NextPageToken = "next"
			}
			_ = json.NewEncoder(w).Encode(page)
		}))
		defer srv.Close()

		c, err := NewClient(srv.URL, "key", srv.Client())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		claims, err := c.ListClaims(context.Background(), time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC), 10)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(claims) != 2 {
			t.Fatalf("expected 2 claims, got %d", len(claims))
		}
		if claims[0].ID != "claim-1" || claims[0].EncounterBillingID != "enc-1" {
			t.Fatalf("unexpected claim: %+v", claims[0])
		}
		if claims[0].FinalizedAt.IsZero() {
			t.Fatalf("expected parsed finalized_at")
		}
		if calls.Load() != 2 {
			t.Fatalf("expected 2 requests, got %d", calls.Load())
		}
	})

	t.Run("stops at the page limit even with more pages available", func(t *testing.T) {
		var calls atomic.Int32
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			calls.Add(1)
			// Always hand back a next-page token.
			_ = json.NewEncoder(w).Encode(inventoryPage{
				Records:       []inventoryRecord{{ClaimID: "claim-x", EncounterID: "enc-x"}},
				NextPageToken: "next",
			})
		}))
		defer srv.Close()

		c, err := NewClient(srv.URL, "key", srv.Client())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		claims, err := c.ListClaims(context.Background(), time.Time{}, 3)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(claims) != 3 {
			t.Fatalf("expected 3 claims, got %d", len(claims))
		}
		if calls.Load() != 3 {
			t.Fatalf("expected 3 requests, got %d", calls.Load())
		}
	})

	t.Run("non-ok response", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "nope", http.StatusForbidden)
		}))
		defer srv.Close()

		c, err := NewClient(srv.URL, "key", srv.Client())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		_, err = c.ListClaims(context.Background(), time.Time{}, 3)
		if !errors.Is(err, ErrBillingNotOK) {
			t.Fatalf("expected ErrBillingNotOK, got %v", err)
		}
	})
}

func TestClient_FindClaimsByEncounterIDs(t *testing.T) {
	t.Run("early stop once everything is found", func(t *testing.T) {
		var calls atomic.Int32
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			calls.Add(1)
			_ = json.NewEncoder(w).Encode(inventoryPage{
				Records: []inventoryRecord{
					{ClaimID: "claim-1", EncounterID: "enc-1"},
					{ClaimID: "claim-2", EncounterID: "enc-2"},
				},
				NextPageToken: "next",
			})
		}))
		defer srv.Close()

		c, err := NewClient(srv.URL, "key", srv.Client())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		found, err := c.FindClaimsByEncounterIDs(context.Background(), []string{"enc-2"}, 10)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(found) != 1 || found[0].ID != "claim-2" {
			t.Fatalf("unexpected result: %+v", found)
		}
		if calls.Load() != 1 {
			t.Fatalf("expected 1 request, got %d", calls.Load())
		}
	})

	t.Run("respects the page limit when ids never show up", func(t *testing.T) {
		var calls atomic.Int32
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			calls.Add(1)
			_ = json.NewEncoder(w).Encode(inventoryPage{NextPageToken: "next"})
		}))
		defer srv.Close()

		c, err := NewClient(srv.URL, "key", srv.Client())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		found, err := c.FindClaimsByEncounterIDs(context.Background(), []string{"enc-404"}, 2)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(found) != 0 {
			t.Fatalf("unexpected result: %+v", found)
		}
		if calls.Load() != 2 {
			t.Fatalf("expected 2 requests, got %d", calls.Load())
		}
	})
}

func TestClient_GetItemization(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path != "/api/invoicing/v1/claims/claim-1/itemization" {
				t.Errorf("unexpected path: %s", r.URL.Path)
			}
			_ = json.NewEncoder(w).Encode(itemizationResponse{ClaimID: "claim-1", PatientBalanceCents: 1250})
		}))
		defer srv.Close()

		c, err := NewClient(srv.URL, "key", srv.Client())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		it, err := c.GetItemization(context.Background(), "claim-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if it.ClaimID != "claim-1" || it.PatientBalanceCents != 1250 {
			t.Fatalf("unexpected itemization: %+v", it)
		}
	})

	t.Run("missing claim", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "not found", http.StatusNotFound)
		}))
		defer srv.Close()

		c, err := NewClient(srv.URL, "key", srv.Client())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		_, err = c.GetItemization(context.Background(), "claim-404")
		if !errors.Is(err, ErrBillingNotOK) {
			t.Fatalf("expected ErrBillingNotOK, got %v", err)
		}
	})
}
