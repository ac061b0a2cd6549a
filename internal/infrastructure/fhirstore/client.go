package fhirstore

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"strings"
	"time"

	"invoicesync/internal/domain/fhir"
)

const defaultTimeout = 30 * time.Second

var (
	ErrMissingFHIRBaseURL = errors.New("missing FHIR_BASE_URL")
	ErrResourceNotFound   = errors.New("fhir resource not found")
	ErrVersionConflict    = errors.New("fhir resource version conflict")
)

// PatchOp is a single RFC 6902 JSON-patch operation applied to a resource.
type PatchOp struct {
	Op    string `json:"op"`
	Path  string `json:"path"`
	Value any    `json:"value,omitempty"`
}

// Client is a thin REST client for the clinical FHIR store. It supports
// single-resource reads/creates, JSON-patch updates with optimistic
// concurrency (If-Match on meta.versionId), and batch search bundles that
// resolve multiple queries in one round trip.

type Client struct {
	baseURL string
	token   string
	http    *http.Client
}

func NewClient(baseURL, token string, httpClient *http.Client) (*Client, error) {
	baseURL = strings.TrimRight(strings.TrimSpace(baseURL), "/")
	if baseURL == "" {
		log.Printf("[fhirstore][client] missing FHIR_BASE_URL")
		return nil, ErrMissingFHIRBaseURL
	}
	if httpClient == nil {
		httpClient = &http.Client{Timeout: defaultTimeout}
	}
	log.Printf("[fhirstore][client] fhir client initialized base_url=%s", baseURL)
	return &Client{baseURL: baseURL, token: token, http: httpClient}, nil
}

func (c *Client) Read(ctx context.Context, resourceType, id string, out any) error {
	endpoint := fmt.Sprintf("%s/%s/%s", c.baseURL, resourceType, url.PathEscape(id))
	return c.do(ctx, http.MethodGet, endpoint, nil, "", "", out)
}

func (c *Client) Create(ctx context.Context, resourceType string, resource, out any) error {
	body, err := json.Marshal(resource)
	if err != nil {
		return err
	}
	endpoint := fmt.Sprintf("%s/%s", c.baseURL, resourceType)
	return c.do(ctx, http.MethodPost, endpoint, body, "application/fhir+json", "", out)
}

// Patch applies ops to one resource. A non-empty version is sent as a weak
// If-Match etag so a concurrent writer loses with ErrVersionConflict
// instead of silently overwriting.
func (c *Client) Patch(ctx context.Context, resourceType, id, version string, ops []PatchOp, out any) error {
	body, err := json.Marshal(ops)
	if err != nil {
		return err
	}
	ifMatch := ""
	if version != "" {
		ifMatch = fmt.Sprintf(`W/"%s"`, version)
	}
	endpoint := fmt.Sprintf("%s/%s/%s", c.baseURL, resourceType, url.PathEscape(id))
	return c.do(ctx, http.MethodPatch, endpoint, body, "application/json-patch+json", ifMatch, out)
}

func (c *Client) Search(ctx context.Context, resourceType string, query url.Values) (fhir.Bundle, error) {
	endpoint := fmt.Sprintf("%s/%s?%s", c.baseURL, resourceType, query.Encode())
	var bundle fhir.Bundle
	if err := c.do(ctx, http.MethodGet, endpoint, nil, "", "", &bundle); err != nil {
		return fhir.Bundle{}, err
	}
	return bundle, nil
}

// Batch posts a batch bundle to the store root and returns the
// batch-response bundle. Entry order is preserved by the server, so callers
// may join responses back to requests positionally.
func (c *Client) Batch(ctx context.Context, bundle fhir.Bundle) (fhir.Bundle, error) {
	body, err := json.Marshal(bundle)
	if err != nil {
		return fhir.Bundle{}, err
	}
	var out fhir.Bundle
	if err := c.do(ctx, http.MethodPost, c.baseURL, body, "application/fhir+json", "", &out); err != nil {
		return fhir.Bundle{}, err
	}
	return out, nil
}

func (c *Client) do(ctx context.Context, method, endpoint string, body []byte, contentType, ifMatch string, out any) error {
	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}
	req, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		return err
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	if ifMatch != "" {
		req.Header.Set("If-Match", ifMatch)
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}
	req.Header.Set("Accept", "application/fhir+json")

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound || resp.StatusCode == http.StatusGone:
		return ErrResourceNotFound
	case resp.StatusCode == http.StatusPreconditionFailed || resp.StatusCode == http.StatusConflict:
		return ErrVersionConflict
	case resp.StatusCode < 200 || resp.StatusCode > 299:
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, 2048))
		log.Printf("[fhirstore][client] non-ok response method=%s status=%d body=%s", method, resp.StatusCode, strings.TrimSpace(string(raw)))
		return fmt.Errorf("fhir store returned status %d", resp.StatusCode)
	}

	if out == nil {
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}
