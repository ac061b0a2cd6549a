package billing

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"invoicesync/internal/domain/entities"
)

const (
	defaultTimeout = 20 * time.Second

	// The billing API caps list-inventory pages at 100 records.
	maxPageSize = 100
)

var (
	ErrMissingBillingAPIKey  = errors.New("missing BILLING_API_KEY")
	ErrMissingBillingBaseURL = errors.New("missing BILLING_BASE_URL")
	ErrBillingNotOK          = errors.New("billing api non-ok response")
)

// Client talks to the external revenue-cycle billing API: paginated
// inventory listing and per-claim itemization. Credentials are read once at
// construction; there is no process-global token cache.
//
// Wire shape:
//   - GET {base}/api/invoicing/v1/inventory?page_size=&since=&page_token=
//   - GET {base}/api/invoicing/v1/claims/{claim_id}/itemization

type Client struct {
	baseURL  string
	apiKey   string
	http     *http.Client
	mockMode bool
}

type inventoryRecord struct {
	ClaimID     string `json:"claim_id"`
	EncounterID string `json:"encounter_id"`
	FinalizedAt string `json:"finalized_at"`
}

type inventoryPage struct {
	Records       []inventoryRecord `json:"records"`
	NextPageToken string            `json:"next_page_token"`
}

type itemizationResponse struct {
	ClaimID             string `json:"claim_id"`
	PatientBalanceCents int64  `json:"patient_balance_cents"`
}

func NewClient(baseURL, apiKey string, httpClient *http.Client) (*Client, error) {
	if isBillingMockEnabled() {
		log.Printf("[billing][client] mock mode enabled")
		return &Client{mockMode: true}, nil
	}

	baseURL = strings.TrimRight(strings.TrimSpace(baseURL), "/")
	if baseURL == "" {
		log.Printf("[billing][client] missing BILLING_BASE_URL")
		return nil, ErrMissingBillingBaseURL
	}
	if strings.TrimSpace(apiKey) == "" {
		log.Printf("[billing][client] missing BILLING_API_KEY")
		return nil, ErrMissingBillingAPIKey
	}
	if httpClient == nil {
		httpClient = &http.Client{Timeout: defaultTimeout}
	}
	log.Printf("[billing][client] billing client initialized base_url=%s", baseURL)
	return &Client{baseURL: baseURL, apiKey: apiKey, http: httpClient}, nil
}

// ListClaims walks inventory pages sequentially, one page awaited before the
// next is requested, until the API stops returning a next-page token or
// pageLimit pages have been fetched.
func (c *Client) ListClaims(ctx context.Context, since time.Time, pageLimit int) ([]entities.Claim, error) {
	if c.mockMode {
		log.Printf("[billing][client] mock list-claims; returning empty inventory")
		return nil, nil
	}

	var claims []entities.Claim
	pageToken := ""
	for page := 0; page < pageLimit; page++ {
		out, err := c.listInventory(ctx, since, pageToken)
		if err != nil {
			return nil, err
		}
		claims = append(claims, toClaims(out.Records)...)
		if out.NextPageToken == "" {
			break
		}
		pageToken = out.NextPageToken
	}
	log.Printf("[billing][client] list-claims done claims=%d", len(claims))
	return claims, nil
}

// FindClaimsByEncounterIDs is the targeted-lookup variant of ListClaims: it
// additionally stops as soon as every sought encounter id has been located.
func (c *Client) FindClaimsByEncounterIDs(ctx context.Context, encounterIDs []string, pageLimit int) ([]entities.Claim, error) {
	if c.mockMode {
		log.Printf("[billing][client] mock find-claims; returning empty inventory")
		return nil, nil
	}

	sought := make(map[string]bool, len(encounterIDs))
	for _, id := range encounterIDs {
		sought[id] = true
	}

	var found []entities.Claim
	pageToken := ""
	for page := 0; page < pageLimit && len(sought) > 0; page++ {
		out, err := c.listInventory(ctx, time.Time{}, pageToken)
		if err != nil {
			return nil, err
		}
		for _, rec := range out.Records {
			if sought[rec.EncounterID] {
				found = append(found, toClaim(rec))
				delete(sought, rec.EncounterID)
			}
		}
		if out.NextPageToken == "" {
			break
		}
		pageToken = out.NextPageToken
	}
	return found, nil
}

// GetItemization asks the billing system to compute the patient-owed
// balance for one claim. Non-2xx responses are returned as ErrBillingNotOK;
// callers treat that as "no result" and never retry.
func (c *Client) GetItemization(ctx context.Context, claimID string) (entities.Itemization, error) {
	if c.mockMode {
		log.Printf("[billing][client] mock itemization claim_id=%s", claimID)
		return entities.Itemization{ClaimID: claimID, PatientBalanceCents: 0}, nil
	}

	endpoint := fmt.Sprintf("%s/api/invoicing/v1/claims/%s/itemization", c.baseURL, url.PathEscape(claimID))
	var out itemizationResponse
	if err := c.get(ctx, endpoint, &out); err != nil {
		log.Printf("[billing][client] itemization failed claim_id=%s err=%v", claimID, err)
		return entities.Itemization{}, err
	}
	return entities.Itemization{ClaimID: out.ClaimID, PatientBalanceCents: out.PatientBalanceCents}, nil
}

func (c *Client) listInventory(ctx context.Context, since time.Time, pageToken string) (inventoryPage, error) {
	q := url.Values{}
	q.Set("page_size", strconv.Itoa(maxPageSize))
	if !since.IsZero() {
		q.Set("since", since.UTC().Format(time.RFC3339))
	}
	if pageToken != "" {
		q.Set("page_token", pageToken)
	}

	endpoint := c.baseURL + "/api/invoicing/v1/inventory?" + q.Encode()
	var out inventoryPage
	if err := c.get(ctx, endpoint, &out); err != nil {
		return inventoryPage{}, err
	}
	return out, nil
}

func (c *Client) get(ctx context.Context, endpoint string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 2048))
		log.Printf("[billing][client] non-ok response status=%d body=%s", resp.StatusCode, strings.TrimSpace(string(body)))
		return fmt.Errorf("%w: status %d", ErrBillingNotOK, resp.StatusCode)
	}

	return json.NewDecoder(resp.Body).Decode(out)
}

func toClaims(records []inventoryRecord) []entities.Claim {
	claims := make([]entities.Claim, 0, len(records))
	for _, rec := range records {
		claims = append(claims, toClaim(rec))
	}
	return claims
}

func toClaim(rec inventoryRecord) entities.Claim {
	finalizedAt, _ := time.Parse(time.RFC3339, rec.FinalizedAt)
	return entities.Claim{
		ID:                 rec.ClaimID,
		EncounterBillingID: rec.EncounterID,
		FinalizedAt:        finalizedAt,
	}
}

func isBillingMockEnabled() bool {
	v := strings.ToLower(strings.TrimSpace(os.Getenv("BILLING_MOCK")))
	switch v {
	case "1", "true", "yes", "on", "mock":
		return true
	}
	return false
}
