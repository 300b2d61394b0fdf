package remote

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/MauritiusChief/toki-ante/internal/adapter/provider/source"
	"github.com/MauritiusChief/toki-ante/internal/domain"
)

const maxBodyBytes = 8 << 20

// Provider fetches dictionary files over HTTP from a base URL.
type Provider struct {
	baseURL    string
	httpClient *http.Client
	retryDelay time.Duration
	log        *slog.Logger
}

// NewProvider creates a Provider for baseURL.
func NewProvider(baseURL string, timeout time.Duration, logger *slog.Logger) *Provider {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Provider{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
		retryDelay: 500 * time.Millisecond,
		log:        logger.With("adapter", "remote"),
	}
}

// FetchText fetches and decodes the dictionary at {baseURL}/{file}.
// Every failure is returned as a *domain.ResourceError.
func (p *Provider) FetchText(ctx context.Context, file string) (string, error) {
	reqURL := p.baseURL + "/" + url.PathEscape(file)

	p.log.DebugContext(ctx, "remote request", slog.String("file", file))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return "", domain.NewResourceError(file, fmt.Errorf("create request: %w", err))
	}
	req.Header.Set("Cache-Control", "no-store")

	resp, err := p.doWithRetry(ctx, req, file)
	if err != nil {
		p.log.ErrorContext(ctx, "remote request failed", slog.String("file", file), slog.String("error", err.Error()))
		return "", domain.NewResourceError(file, fmt.Errorf("request failed: %w", err))
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", domain.NewResourceError(file, fmt.Errorf("HTTP %d", resp.StatusCode))
	}

	text, err := source.ReadText(resp.Body, maxBodyBytes)
	if err != nil {
		return "", domain.NewResourceError(file, fmt.Errorf("read body: %w", err))
	}

	p.log.DebugContext(ctx, "remote response",
		slog.String("file", file),
		slog.Int("status", resp.StatusCode),
		slog.Int("bytes", len(text)),
	)

	return text, nil
}

// doWithRetry executes the request with a single retry on 5xx or network errors.
func (p *Provider) doWithRetry(ctx context.Context, req *http.Request, file string) (*http.Response, error) {
	resp, err := p.httpClient.Do(req)

	shouldRetry := err != nil || (resp != nil && resp.StatusCode >= 500)
	if !shouldRetry {
		return resp, err
	}

	if ctx.Err() != nil {
		return resp, err
	}

	reason := "network error"
	if err == nil && resp != nil {
		reason = fmt.Sprintf("status %d", resp.StatusCode)
	}
	p.log.WarnContext(ctx, "remote retry", slog.String("file", file), slog.String("reason", reason))

	if resp != nil && resp.Body != nil {
		resp.Body.Close()
	}

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case <-time.After(p.retryDelay):
	}

	return p.httpClient.Do(req)
}
