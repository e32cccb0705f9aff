package footballdata

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	sonic "github.com/bytedance/sonic"
	crerr "github.com/cockroachdb/errors"

	"github.com/riskibarqy/prediction-league/internal/platform/logging"
	"github.com/riskibarqy/prediction-league/internal/platform/resilience"
	"github.com/riskibarqy/prediction-league/internal/usecase"
)

const (
	defaultBaseURL = "https://api.football-data.org/v4"

	statusFinished = "FINISHED"

	maxResponseBytes = 6 << 20
)

var errFootballDataTransient = crerr.New("football-data transient failure")

type ClientConfig struct {
	HTTPClient     *http.Client
	BaseURL        string
	Token          string
	Timeout        time.Duration
	MaxRetries     int
	Logger         *logging.Logger
	CircuitBreaker resilience.CircuitBreakerConfig
}

// Client talks to the football-data.org v4 API. It applies bounded retries
// for transient failures, collapses concurrent identical requests, and trips
// a circuit breaker when the provider keeps failing.
type Client struct {
	httpClient     *http.Client
	baseURL        string
	token          string
	maxRetries     int
	logger         *logging.Logger
	breaker        *resilience.CircuitBreaker
	circuitEnabled bool
	flight         resilience.SingleFlight
}

func NewClient(cfg ClientConfig) *Client {
	logger := cfg.Logger
	if logger == nil {
		logger = logging.NewNop()
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: cfg.Timeout}
	}
	if httpClient.Timeout <= 0 {
		httpClient.Timeout = 20 * time.Second
	}

	baseURL := strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	breakerCfg := resilience.NormalizeCircuitBreakerConfig(cfg.CircuitBreaker)

	return &Client{
		httpClient:     httpClient,
		baseURL:        baseURL,
		token:          strings.TrimSpace(cfg.Token),
		maxRetries:     max(cfg.MaxRetries, 0),
		logger:         logger,
		breaker:        resilience.NewCircuitBreaker(breakerCfg.FailureThreshold, breakerCfg.OpenTimeout, breakerCfg.HalfOpenMaxReq),
		circuitEnabled: breakerCfg.Enabled,
	}
}

type matchesEnvelope struct {
	Matches []struct {
		UTCDate  string `json:"utcDate"`
		Status   string `json:"status"`
		HomeTeam struct {
			ID   int64  `json:"id"`
			Name string `json:"name"`
		} `json:"homeTeam"`
		AwayTeam struct {
			ID   int64  `json:"id"`
			Name string `json:"name"`
		} `json:"awayTeam"`
		Score struct {
			FullTime struct {
				Home *int `json:"home"`
				Away *int `json:"away"`
			} `json:"fullTime"`
		} `json:"score"`
	} `json:"matches"`
}

// FetchMatchesForTeam lists the provider's fixtures for a team, optionally
// scoped to one competition code. Only finished fixtures carry a result.
func (c *Client) FetchMatchesForTeam(ctx context.Context, teamRefID int64, competition string) ([]usecase.ExternalFixture, error) {
	if teamRefID <= 0 {
		return nil, fmt.Errorf("team ref id must be greater than zero")
	}

	query := map[string]string{}
	if competition = strings.TrimSpace(competition); competition != "" {
		query["competitions"] = competition
	}

	var envelope matchesEnvelope
	if err := c.doJSON(ctx, fmt.Sprintf("/teams/%d/matches", teamRefID), query, &envelope); err != nil {
		return nil, fmt.Errorf("fetch matches team_ref_id=%d: %w", teamRefID, err)
	}

	out := make([]usecase.ExternalFixture, 0, len(envelope.Matches))
	for _, item := range envelope.Matches {
		fixture := usecase.ExternalFixture{
			HomeTeam: item.HomeTeam.Name,
			AwayTeam: item.AwayTeam.Name,
			Date:     truncateToDate(item.UTCDate),
		}
		if item.Status == statusFinished && item.Score.FullTime.Home != nil && item.Score.FullTime.Away != nil {
			result := fmt.Sprintf("%d-%d", *item.Score.FullTime.Home, *item.Score.FullTime.Away)
			fixture.Result = &result
		}
		out = append(out, fixture)
	}

	return out, nil
}

type competitionEnvelope struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
	Code string `json:"code"`
	Area struct {
		Name string `json:"name"`
	} `json:"area"`
}

// Competition describes one provider competition.
type Competition struct {
	ID      int64
	Name    string
	Code    string
	Country string
}

func (c *Client) FetchCompetition(ctx context.Context, code string) (Competition, error) {
	code = strings.TrimSpace(code)
	if code == "" {
		return Competition{}, fmt.Errorf("competition code is required")
	}

	var envelope competitionEnvelope
	if err := c.doJSON(ctx, "/competitions/"+url.PathEscape(code), nil, &envelope); err != nil {
		return Competition{}, fmt.Errorf("fetch competition code=%s: %w", code, err)
	}

	return Competition{
		ID:      envelope.ID,
		Name:    envelope.Name,
		Code:    envelope.Code,
		Country: envelope.Area.Name,
	}, nil
}

type competitionTeamsEnvelope struct {
	Teams []struct {
		ID    int64  `json:"id"`
		Name  string `json:"name"`
		Crest string `json:"crest"`
		Venue string `json:"venue"`
	} `json:"teams"`
}

func (c *Client) FetchCompetitionTeams(ctx context.Context, code string) ([]usecase.ExternalTeam, error) {
	code = strings.TrimSpace(code)
	if code == "" {
		return nil, fmt.Errorf("competition code is required")
	}

	var envelope competitionTeamsEnvelope
	if err := c.doJSON(ctx, "/competitions/"+url.PathEscape(code)+"/teams", nil, &envelope); err != nil {
		return nil, fmt.Errorf("fetch competition teams code=%s: %w", code, err)
	}

	out := make([]usecase.ExternalTeam, 0, len(envelope.Teams))
	for _, item := range envelope.Teams {
		out = append(out, usecase.ExternalTeam{
			ID:      item.ID,
			Name:    item.Name,
			LogoURL: item.Crest,
			Stadium: item.Venue,
		})
	}

	return out, nil
}

func (c *Client) doJSON(ctx context.Context, path string, query map[string]string, target any) error {
	if c.circuitEnabled {
		if err := c.breaker.Allow(); err != nil {
			c.logger.WarnContext(ctx, "football-data circuit breaker rejected request", "path", path)
			return fmt.Errorf("%w: football data provider is temporarily unavailable", usecase.ErrDependencyUnavailable)
		}
	}

	values := url.Values{}
	for key, value := range query {
		values.Set(key, value)
	}

	fullURL := c.baseURL + path
	if encoded := values.Encode(); encoded != "" {
		fullURL += "?" + encoded
	}

	out, err, _ := c.flight.Do(fullURL, func() (any, error) {
		raw, reqErr := c.executeRequest(ctx, fullURL)
		if c.circuitEnabled {
			if reqErr != nil && crerr.Is(reqErr, errFootballDataTransient) {
				c.breaker.RecordFailure()
			} else {
				c.breaker.RecordSuccess()
			}
		}
		return raw, reqErr
	})
	if err != nil {
		return err
	}

	raw, ok := out.([]byte)
	if !ok {
		return fmt.Errorf("unexpected response payload type %T", out)
	}

	if err := sonic.Unmarshal(raw, target); err != nil {
		return fmt.Errorf("decode provider payload: %w", err)
	}

	return nil
}

func (c *Client) executeRequest(ctx context.Context, fullURL string) ([]byte, error) {
	var lastErr error
	for attempt := 0; attempt <= c.maxRetries; attempt++ {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, fullURL, nil)
		if err != nil {
			return nil, fmt.Errorf("build request: %w", err)
		}
		req.Header.Set("accept", "application/json")
		if c.token != "" {
			req.Header.Set("X-Auth-Token", c.token)
		}

		resp, err := c.httpClient.Do(req)
		if err != nil {
			lastErr = fmt.Errorf("%w: send request: %v", errFootballDataTransient, err)
		} else {
			raw, readErr := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
			_ = resp.Body.Close()
			switch {
			case readErr != nil:
				lastErr = fmt.Errorf("%w: read response body: %v", errFootballDataTransient, readErr)
			case resp.StatusCode >= 200 && resp.StatusCode < 300:
				return raw, nil
			case isRetryableStatus(resp.StatusCode):
				lastErr = fmt.Errorf("%w: provider status=%d", errFootballDataTransient, resp.StatusCode)
			default:
				return nil, fmt.Errorf("provider status=%d body=%s", resp.StatusCode, abbreviateBody(raw))
			}
		}

		if attempt < c.maxRetries {
			c.logger.WarnContext(ctx, "football-data request retrying", "attempt", attempt+1, "error", lastErr)
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(time.Duration(attempt+1) * 500 * time.Millisecond):
			}
		}
	}

	return nil, lastErr
}

func isRetryableStatus(status int) bool {
	return status == http.StatusTooManyRequests || status >= 500
}

func abbreviateBody(raw []byte) string {
	const limit = 256
	if len(raw) <= limit {
		return string(raw)
	}
	return string(raw[:limit]) + "..."
}

// Provider dates come as RFC 3339 timestamps; the catalog stores day
// precision only.
func truncateToDate(utcDate string) string {
	if len(utcDate) >= 10 {
		return utcDate[:10]
	}
	return utcDate
}
