// Package tablecheck is the outbound adapter for the upstream
// restaurant-reservation API: query translation, the HTTP client itself,
// response normalization and reservation-link construction.
package tablecheck

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/tablebridge/tablebridge/internal/domain"
)

// DefaultBaseURL is the production API host.
const DefaultBaseURL = "https://api.tablecheck.com/v2"

const tracerName = "tablebridge/tablecheck"

// Client talks to the upstream API and returns normalized domain records.
// It imposes no retries and no timeouts of its own; the injected
// http.Client owns the timeout policy and any failure propagates
// immediately as a *domain.APIError.
type Client struct {
	httpClient *http.Client
	baseURL    string
	normalizer *Normalizer
	tracer     trace.Tracer
	logger     *slog.Logger
}

// NewClient creates a Client. A nil httpClient falls back to
// http.DefaultClient; an empty baseURL selects the production host.
func NewClient(httpClient *http.Client, baseURL string, normalizer *Normalizer, logger *slog.Logger) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		httpClient: httpClient,
		baseURL:    baseURL,
		normalizer: normalizer,
		tracer:     otel.Tracer(tracerName),
		logger:     logger.With("component", "tablecheck_client"),
	}
}

// SearchShops runs the structured filtered search.
func (c *Client) SearchShops(ctx context.Context, req domain.SearchRequest) ([]domain.RestaurantRecord, error) {
	var resp shopSearchResponse
	if err := c.getJSON(ctx, "/shop_search", SearchQuery(req), &resp); err != nil {
		return nil, err
	}
	c.logger.Debug("Shop search returned",
		slog.Int("shops", len(resp.Shops)), slog.Int("total_count", resp.TotalCount))
	return c.normalizer.FromShopSearch(resp, req), nil
}

// SearchText runs the free-text autocomplete search.
func (c *Client) SearchText(ctx context.Context, req domain.SearchRequest) ([]domain.RestaurantRecord, error) {
	var resp autocompleteResponse
	if err := c.getJSON(ctx, "/autocomplete", AutocompleteQuery(req), &resp); err != nil {
		return nil, err
	}
	c.logger.Debug("Autocomplete returned", slog.Int("shops", len(resp.Shops)))
	return c.normalizer.FromAutocomplete(resp, req), nil
}

// ListCuisines fetches the cuisine catalog resolved for one locale. The
// catalog is fetched fresh on every call; nothing is cached across calls.
func (c *Client) ListCuisines(ctx context.Context, locale domain.Locale) ([]domain.CuisineRecord, error) {
	var resp cuisinesResponse
	if err := c.getJSON(ctx, "/cuisines", nil, &resp); err != nil {
		return nil, err
	}
	return c.normalizer.FromCuisines(resp, locale), nil
}

// AvailabilityCalendar fetches and flattens the availability calendar of
// one shop.
func (c *Client) AvailabilityCalendar(ctx context.Context, req domain.AvailabilityRequest) ([]domain.AvailabilitySlot, error) {
	body, err := json.Marshal(AvailabilityBody(req))
	if err != nil {
		return nil, fmt.Errorf("failed to marshal availability body: %w", err)
	}
	var resp availabilityResponse
	if err := c.postJSON(ctx, "/hub/availability_calendar", body, &resp); err != nil {
		return nil, err
	}
	return c.normalizer.FromAvailability(resp, req.NumPeople), nil
}

func (c *Client) getJSON(ctx context.Context, path string, query url.Values, out any) error {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return fmt.Errorf("failed to create request for %s: %w", path, err)
	}
	return c.do(req, path, out)
}

func (c *Client) postJSON(ctx context.Context, path string, body []byte, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to create request for %s: %w", path, err)
	}
	req.Header.Set("Content-Type", "application/json")
	return c.do(req, path, out)
}

func (c *Client) do(req *http.Request, path string, out any) error {
	ctx, span := c.tracer.Start(req.Context(), "tablecheck"+path,
		trace.WithAttributes(
			attribute.String("http.method", req.Method),
			attribute.String("http.url", req.URL.String()),
		))
	defer span.End()
	req = req.WithContext(ctx)

	log := c.logger.With(slog.String("method", req.Method), slog.String("path", path))
	log.Debug("Executing upstream request", slog.String("url", req.URL.String()))

	resp, err := c.httpClient.Do(req)
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		log.Error("Upstream request failed", slog.Any("error", err))
		return fmt.Errorf("upstream request to %s failed: %w", path, err)
	}
	defer resp.Body.Close()

	span.SetAttributes(attribute.Int("http.status_code", resp.StatusCode))
	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		log.Error("Failed to read upstream response body", slog.Any("error", err))
		return fmt.Errorf("failed to read response from %s: %w", path, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		apiErr := domain.NewAPIError(resp.StatusCode, respBody)
		span.SetStatus(codes.Error, apiErr.Error())
		log.Warn("Upstream returned non-success status",
			slog.Int("status_code", resp.StatusCode), slog.String("kind", string(apiErr.Kind)))
		return apiErr
	}

	if err := json.Unmarshal(respBody, out); err != nil {
		span.SetStatus(codes.Error, err.Error())
		log.Error("Failed to decode upstream response", slog.Any("error", err))
		return fmt.Errorf("failed to decode response from %s: %w", path, err)
	}
	return nil
}
