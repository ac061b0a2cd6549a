package fhir

import "encoding/json"

const (
	BundleTypeBatch         = "batch"
	BundleTypeBatchResponse = "batch-response"
	BundleTypeSearchset     = "searchset"
)

type BundleLink struct {
	Relation string `json:"relation"`
	URL      string `json:"url"`
}

type BundleEntryRequest struct {
	Method string `json:"method"`
	URL    string `json:"url"`
}

type BundleEntryResponse struct {
	Status string `json:"status,omitempty"`
	Etag   string `json:"etag,omitempty"`
}

type BundleEntry struct {
	FullURL  string               `json:"fullUrl,omitempty"`
	Resource json.RawMessage      `json:"resource,omitempty"`
	Request  *BundleEntryRequest  `json:"request,omitempty"`
	Response *BundleEntryResponse `json:"response,omitempty"`
}

type Bundle struct {
	ResourceType string        `json:"resourceType"`
	Type         string        `json:"type"`
	Total        *int          `json:"total,omitempty"`
	Link         []BundleLink  `json:"link,omitempty"`
	Entry        []BundleEntry `json:"entry,omitempty"`
}

// NewBatchBundle assembles a batch bundle of GET requests, one per search URL.
func NewBatchBundle(searchURLs []string) Bundle {
	entries := make([]BundleEntry, 0, len(searchURLs))
	for _, u := range searchURLs {
		entries = append(entries, BundleEntry{
			Request: &BundleEntryRequest{Method: "GET", URL: u},
		})
	}
	return Bundle{ResourceType: "Bundle", Type: BundleTypeBatch, Entry: entries}
}

// EntriesOfType returns the raw entry resources whose resourceType matches
// rt. Entries of other types are skipped.
func (b Bundle) EntriesOfType(rt string) []json.RawMessage {
	var out []json.RawMessage
	for _, e := range b.Entry {
		if len(e.Resource) == 0 {
			continue
		}
		var probe struct {
			ResourceType string `json:"resourceType"`
		}
		if err := json.Unmarshal(e.Resource, &probe); err != nil {
			continue
		}
		if probe.ResourceType == rt {
			out = append(out, e.Resource)
		}
	}
	return out
}
