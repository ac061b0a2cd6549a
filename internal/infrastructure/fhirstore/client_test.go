package fhirstore

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"invoicesync/internal/domain/fhir"
)

func TestNewClient(t *testing.T) {
	t.Run("missing base url", func(t *testing.T) {
		_, err := NewClient("", "token", nil)
		if !errors.Is(err, ErrMissingFHIRBaseURL) {
			t.Fatalf("expected ErrMissingFHIRBaseURL, got %v", err)
		}
	})

	t.Run("trailing slash is trimmed", func(t *testing.T) {
		c, err := NewClient("https://fhir.example.com/r4/", "token", nil)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if c.baseURL != "https://fhir.example.com/r4" {
			t.Fatalf("unexpected base url: %s", c.baseURL)
		}
	})
}

func TestClient_Read(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path != "/Task/task-1" {
				t.Errorf("unexpected path: %s", r.URL.Path)
			}
			if got := r.Header.Get("Authorization"); got != "Bearer token" {
				t.Errorf("unexpected auth header: %s", got)
			}
			_ = json.NewEncoder(w).Encode(fhir.Task{ResourceType: "Task", ID: "task-1", Status: fhir.TaskStatusReady})
		}))
		defer srv.Close()

		c, _ := NewClient(srv.URL, "token", srv.Client())
		var task fhir.Task
		if err := c.Read(context.Background(), "Task", "task-1", &task); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if task.ID != "task-1" || task.Status != fhir.TaskStatusReady {
			t.Fatalf("unexpected task: %+v", task)
		}
	})

	t.Run("not found", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "gone", http.StatusGone)
		}))
		defer srv.Close()

		c, _ := NewClient(srv.URL, "token", srv.Client())
		var task fhir.Task
		if err := c.Read(context.Background(), "Task", "task-1", &task); !errors.Is(err, ErrResourceNotFound) {
			t.Fatalf("expected ErrResourceNotFound, got %v", err)
		}
	})
}

func TestClient_Patch(t *testing.T) {
	t.Run("sends weak etag and patch body", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Method != http.MethodPatch {
				t.Errorf("unexpected method: %s", r.Method)
			}
			if got := r.Header.Get("If-Match"); got != `W/"3"` {
				t.Errorf("unexpected If-Match: %s", got)
			}
			if got := r.Header.Get("Content-Type"); got != "application/json-patch+json" {
				t.Errorf("unexpected content type: %s", got)
			}
			body, _ := io.ReadAll(r.Body)
			var ops []PatchOp
			if err := json.Unmarshal(body, &ops); err != nil || len(ops) != 1 || ops[0].Path != "/status" {
				t.Errorf("unexpected patch body: %s", body)
			}
			_ = json.NewEncoder(w).Encode(fhir.Task{ResourceType: "Task", ID: "task-1", Status: fhir.TaskStatusCompleted})
		}))
		defer srv.Close()

		c, _ := NewClient(srv.URL, "token", srv.Client())
		var task fhir.Task
		ops := []PatchOp{{Op: "replace", Path: "/status", Value: fhir.TaskStatusCompleted}}
		if err := c.Patch(context.Background(), "Task", "task-1", "3", ops, &task); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if task.Status != fhir.TaskStatusCompleted {
			t.Fatalf("unexpected task: %+v", task)
		}
	})

	t.Run("stale version conflicts", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "precondition failed", http.StatusPreconditionFailed)
		}))
		defer srv.Close()

		c, _ := NewClient(srv.URL, "token", srv.Client())
		err := c.Patch(context.Background(), "Task", "task-1", "2", []PatchOp{{Op: "replace", Path: "/status", Value: "ready"}}, nil)
		if !errors.Is(err, ErrVersionConflict) {
			t.Fatalf("expected ErrVersionConflict, got %v", err)
		}
	})
}

func TestClient_Search(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/Task" {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
		if got := r.URL.Query().Get("encounter"); got != "Encounter/enc-1" {
			t.Errorf("unexpected encounter param: %s", got)
		}
		_ = json.NewEncoder(w).Encode(fhir.Bundle{ResourceType: "Bundle", Type: fhir.BundleTypeSearchset})
	}))
	defer srv.Close()

	c, _ := NewClient(srv.URL, "token", srv.Client())
	q := url.Values{}
	q.Set("encounter", "Encounter/enc-1")
	bundle, err := c.Search(context.Background(), "Task", q)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if bundle.Type != fhir.BundleTypeSearchset {
		t.Fatalf("unexpected bundle: %+v", bundle)
	}
}

func TestClient_Batch(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/" {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
		var in fhir.Bundle
		if err := json.NewDecoder(r.Body).Decode(&in); err != nil || in.Type != fhir.BundleTypeBatch {
			t.Errorf("unexpected request bundle: %+v err=%v", in, err)
		}
		out := fhir.Bundle{ResourceType: "Bundle", Type: fhir.BundleTypeBatchResponse}
		for range in.Entry {
			out.Entry = append(out.Entry, fhir.BundleEntry{})
		}
		_ = json.NewEncoder(w).Encode(out)
	}))
	defer srv.Close()

	c, _ := NewClient(srv.URL, "token", srv.Client())
	req := fhir.NewBatchBundle([]string{"Encounter?identifier=bill-1", "Encounter?identifier=bill-2"})
	resp, err := c.Batch(context.Background(), req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Type != fhir.BundleTypeBatchResponse || len(resp.Entry) != 2 {
		t.Fatalf("unexpected response bundle: %+v", resp)
	}
}
