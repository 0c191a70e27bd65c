package usecase

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"
)

// HTTPMediaFetcher downloads media bytes over plain HTTP.
type HTTPMediaFetcher struct {
	hc *http.Client
}

func CreateHTTPMediaFetcher(hc *http.Client) *HTTPMediaFetcher {
	if hc == nil {
		hc = &http.Client{Timeout: 2 * time.Minute}
	}
	return &HTTPMediaFetcher{hc: hc}
}

func (f *HTTPMediaFetcher) Fetch(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}

	resp, err := f.hc.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status %d fetching %s", resp.StatusCode, url)
	}

	return io.ReadAll(resp.Body)
}
