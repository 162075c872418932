package content

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/jgivc/docviewer/internal/common"
	"github.com/jgivc/docviewer/internal/config"
)

const (
	maxContentSize = 10 << 20
)

type httpRepository struct {
	client  *http.Client
	baseURL string
	log     *slog.Logger
}

func NewHTTPRepository(cfg *config.ContentConfig, log *slog.Logger) *httpRepository {
	return &httpRepository{
		client: &http.Client{
			Timeout: time.Duration(cfg.FetchTimeout),
		},
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		log:     log.With(slog.String("item", "HTTPContentRepository")),
	}
}

// Fetch retrieves raw markdown from the static-asset mirror: the configured
// base URL followed by the navigation segments joined by "/".
func (r *httpRepository) Fetch(ctx context.Context, segments []string) ([]byte, error) {
	rel, err := joinSegments(segments)
	if err != nil {
		return nil, err
	}

	escaped := make([]string, 0, len(segments))
	for _, segment := range segments {
		escaped = append(escaped, url.PathEscape(segment))
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, r.baseURL+"/"+strings.Join(escaped, "/"), nil)
	if err != nil {
		return nil, fmt.Errorf("cannot build request for %s: %w", rel, err)
	}

	resp, err := r.client.Do(req)
	if err != nil {
		r.log.Error("Content fetch failed", slog.String("path", rel), slog.Any("error", err))

		return nil, fmt.Errorf("%s: %w", rel, common.ErrContentUnavailableError)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return nil, fmt.Errorf("%s: %w", rel, common.ErrContentNotFoundError)
	case resp.StatusCode != http.StatusOK:
		r.log.Error("Content fetch returned bad status", slog.String("path", rel), slog.Int("status", resp.StatusCode))

		return nil, fmt.Errorf("%s: status %d: %w", rel, resp.StatusCode, common.ErrContentUnavailableError)
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxContentSize))
	if err != nil {
		return nil, fmt.Errorf("cannot read response for %s: %w", rel, common.ErrContentUnavailableError)
	}

	return data, nil
}
