// README: MediaWiki extract lookup for a destination title.
package knowledge

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"sort"

	"go.uber.org/zap"
)

// missingPageID is the key MediaWiki uses in query.pages for an unmatched title.
const missingPageID = "-1"

// Fetcher looks up introductory extracts. It keeps no state between calls.
type Fetcher struct {
	endpoint  string
	userAgent string
	client    *http.Client
	log       *zap.Logger
}

// NewFetcher builds a Fetcher. A nil client means a client with no timeout,
// so cancellation comes only from the caller's context.
func NewFetcher(endpoint, userAgent string, client *http.Client, log *zap.Logger) *Fetcher {
	if endpoint == "" {
		endpoint = DefaultEndpoint
	}
	if client == nil {
		client = &http.Client{}
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Fetcher{endpoint: endpoint, userAgent: userAgent, client: client, log: log}
}

// FetchSummary returns the destination's extract or one of the fallback strings.
// It never fails; the cause of a fallback is logged.
func (f *Fetcher) FetchSummary(ctx context.Context, destination string) string {
	s, err := f.Lookup(ctx, destination)
	if err != nil {
		f.log.Warn("encyclopedia lookup fell back",
			zap.String("destination", destination),
			zap.Error(err),
		)
	}
	return s.Text
}

// Lookup performs one query and reports why a fallback was chosen.
// The returned Summary is usable even when err is non-nil.
func (f *Fetcher) Lookup(ctx context.Context, destination string) (Summary, error) {
	fallback := Summary{Text: FallbackUnavailable, Source: SourceFallback}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, f.endpoint, nil)
	if err != nil {
		return fallback, fmt.Errorf("knowledge: build request: %w", err)
	}
	q := url.Values{}
	q.Set("action", "query")
	q.Set("format", "json")
	q.Set("prop", "extracts")
	q.Set("titles", destination)
	q.Set("exintro", "true")
	q.Set("explaintext", "true")
	req.URL.RawQuery = q.Encode()
	req.Header.Set("Accept", "application/json")
	if f.userAgent != "" {
		req.Header.Set("User-Agent", f.userAgent)
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return fallback, fmt.Errorf("knowledge: %w: %v", ErrLookupTransport, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		_, _ = io.Copy(io.Discard, resp.Body)
		return fallback, fmt.Errorf("knowledge: %w: %d", ErrLookupStatus, resp.StatusCode)
	}

	var qr queryResponse
	if err := json.NewDecoder(resp.Body).Decode(&qr); err != nil {
		return fallback, fmt.Errorf("knowledge: %w: %v", ErrLookupDecode, err)
	}

	ids := make([]string, 0, len(qr.Query.Pages))
	for id := range qr.Query.Pages {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	for _, id := range ids {
		if id == missingPageID {
			continue
		}
		p := qr.Query.Pages[id]
		if p.Extract == nil {
			return Summary{Text: FallbackNoExtract, Source: SourceFallback}, nil
		}
		return Summary{Text: *p.Extract, Source: SourceEncyclopedia}, nil
	}
	return fallback, fmt.Errorf("knowledge: %w: %q", ErrPageNotFound, destination)
}
