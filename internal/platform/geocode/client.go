package geocode

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"math/rand/v2"
	"net/http"
	"net/url"
	"time"

	"github.com/RoxyKang/share-my-place-backend/internal/config"
	"github.com/RoxyKang/share-my-place-backend/internal/domain"
	"github.com/RoxyKang/share-my-place-backend/internal/platform/logger"
	"github.com/RoxyKang/share-my-place-backend/internal/redact"
	"github.com/hashicorp/go-cleanhttp"
)

// Google Geocoding API status values.
const (
	statusOK             = "OK"
	statusZeroResults    = "ZERO_RESULTS"
	statusOverQueryLimit = "OVER_QUERY_LIMIT"
	statusRequestDenied  = "REQUEST_DENIED"
	statusInvalidRequest = "INVALID_REQUEST"
	statusUnknownError   = "UNKNOWN_ERROR"
)

// response is the subset of the Geocoding API payload the client reads.
type response struct {
	Status       string `json:"status"`
	ErrorMessage string `json:"error_message"`
	Results      []struct {
		Geometry struct {
			Location domain.Location `json:"location"`
		} `json:"geometry"`
	} `json:"results"`
}

// Client calls the Google Geocoding API.
type Client struct {
	baseURL    string
	apiKey     string
	timeout    time.Duration
	maxRetries int
	retryDelay time.Duration
	httpClient *http.Client
	logger     *slog.Logger
}

// NewClient creates a Client from cfg. A pooled HTTP client with its own
// transport is used so geocoding traffic does not share http.DefaultTransport.
// If logger is nil, a default logger will be used.
func NewClient(cfg config.GeocodingConfig, logger *slog.Logger) (*Client, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("%w: api key cannot be empty", ErrInvalidConfig)
	}
	if cfg.BaseURL == "" {
		return nil, fmt.Errorf("%w: base URL cannot be empty", ErrInvalidConfig)
	}
	if _, err := url.Parse(cfg.BaseURL); err != nil {
		return nil, fmt.Errorf("%w: base URL: %v", ErrInvalidConfig, err)
	}
	if cfg.TimeoutSeconds <= 0 {
		return nil, fmt.Errorf("%w: timeout must be positive", ErrInvalidConfig)
	}
	if logger == nil {
		logger = slog.Default()
	}

	httpClient := cleanhttp.DefaultPooledClient()
	httpClient.Timeout = cfg.Timeout()

	maxRetries := cfg.MaxRetries
	if maxRetries < 0 {
		maxRetries = 0
	}

	return &Client{
		baseURL:    cfg.BaseURL,
		apiKey:     cfg.APIKey,
		timeout:    cfg.Timeout(),
		maxRetries: maxRetries,
		retryDelay: cfg.RetryDelay(),
		httpClient: httpClient,
		logger:     logger.With(slog.String("component", "geocoder")),
	}, nil
}

// Resolve returns the coordinates of the first match for address.
// It returns domain.ErrAddressNotFound when the API has no match.
func (c *Client) Resolve(ctx context.Context, address string) (domain.Location, error) {
	log := logger.FromContextOrDefault(ctx, c.logger)

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	for attempt := 0; ; attempt++ {
		location, transient, err := c.lookup(ctx, address)
		if err == nil {
			log.Debug("address geocoded", slog.Int("attempt", attempt+1))
			return location, nil
		}
		if !transient {
			return domain.Location{}, err
		}

		log.Warn("geocoding attempt failed",
			slog.Int("attempt", attempt+1),
			slog.Int("max_attempts", c.maxRetries+1),
			slog.String("error", redact.Error(err)))

		if attempt >= c.maxRetries {
			return domain.Location{}, fmt.Errorf("%w: exceeded maximum retry attempts (%d): %w",
				ErrTransientFailure, c.maxRetries, err)
		}

		select {
		case <-time.After(c.backoff(attempt)):
		case <-ctx.Done():
			return domain.Location{}, fmt.Errorf("%w: %w", ErrTransientFailure, ctx.Err())
		}
	}
}

// backoff computes retryDelay * 2^attempt scaled by a jitter factor in [0.5, 1.0).
func (c *Client) backoff(attempt int) time.Duration {
	base := float64(c.retryDelay) * math.Pow(2, float64(attempt))
	return time.Duration(base * (0.5 + rand.Float64()*0.5))
}

// lookup performs one API call. transient reports whether err may succeed on retry.
func (c *Client) lookup(ctx context.Context, address string) (domain.Location, bool, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.requestURL(address), nil)
	if err != nil {
		return domain.Location{}, false, fmt.Errorf("build geocode request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		// url.Error repeats the request URL, which carries the API key.
		var urlErr *url.Error
		if errors.As(err, &urlErr) {
			err = urlErr.Err
		}
		return domain.Location{}, ctx.Err() == nil, fmt.Errorf("geocode request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	switch {
	case resp.StatusCode >= http.StatusInternalServerError:
		return domain.Location{}, true, fmt.Errorf("geocode returned %s", resp.Status)
	case resp.StatusCode != http.StatusOK:
		return domain.Location{}, false, fmt.Errorf("%w: HTTP %s", ErrRequestRejected, resp.Status)
	}

	var body response
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return domain.Location{}, false, fmt.Errorf("%w: %v", ErrInvalidResponse, err)
	}

	switch body.Status {
	case statusOK:
		if len(body.Results) == 0 {
			return domain.Location{}, false, domain.ErrAddressNotFound
		}
		location := body.Results[0].Geometry.Location
		if err := location.Validate(); err != nil {
			return domain.Location{}, false, fmt.Errorf("%w: %v", ErrInvalidResponse, err)
		}
		return location, false, nil
	case statusZeroResults:
		return domain.Location{}, false, domain.ErrAddressNotFound
	case statusOverQueryLimit, statusUnknownError:
		return domain.Location{}, true, fmt.Errorf("geocode status %s", body.Status)
	case statusRequestDenied, statusInvalidRequest:
		return domain.Location{}, false, fmt.Errorf("%w: %s: %s", ErrRequestRejected, body.Status, body.ErrorMessage)
	default:
		return domain.Location{}, false, fmt.Errorf("%w: unknown status %q", ErrInvalidResponse, body.Status)
	}
}

func (c *Client) requestURL(address string) string {
	q := url.Values{}
	q.Set("address", address)
	q.Set("key", c.apiKey)
	return c.baseURL + "?" + q.Encode()
}
