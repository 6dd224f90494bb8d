package apifootball

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/sony/gobreaker"
	"golang.org/x/time/rate"

	"github.com/jean-rgsocd/chatbot-whatsapp-ia/internal/cache"
)

// DefaultBaseURL is the production API-Football endpoint.
const DefaultBaseURL = "https://v3.football.api-sports.io"

// Client talks to API-Football. Every read goes through the rate limiter,
// the circuit breaker and a short-TTL memo cache; a non-responsive upstream
// is a hard failure for that call, never a hang.
type Client struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
	breaker    *gobreaker.CircuitBreaker
	limiter    *rate.Limiter
	cache      cache.Store
	liveCache  cache.Store
	logger     *logrus.Logger
}

// Options tunes the client; zero values pick conservative defaults.
type Options struct {
	BaseURL        string
	Timeout        time.Duration
	RequestsPerSec float64
	// Cache holds fixture/odds lookups (~60s TTL); LiveCache holds live
	// statistics and events (~8s TTL).
	Cache     cache.Store
	LiveCache cache.Store
}

// NewClient creates an API-Football client.
func NewClient(apiKey string, opts Options, logger *logrus.Logger) *Client {
	baseURL := opts.BaseURL
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	timeout := opts.Timeout
	if timeout == 0 {
		timeout = 25 * time.Second
	}
	rps := opts.RequestsPerSec
	if rps == 0 {
		rps = 5
	}
	memo := opts.Cache
	if memo == nil {
		memo = cache.NewMemoryStore(60 * time.Second)
	}
	liveMemo := opts.LiveCache
	if liveMemo == nil {
		liveMemo = cache.NewMemoryStore(8 * time.Second)
	}

	breaker := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:    "api-football",
		Timeout: 30 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= 5
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.Warnf("%s circuit breaker: %s -> %s", name, from, to)
		},
	})

	return &Client{
		httpClient: &http.Client{Timeout: timeout},
		baseURL:    baseURL,
		apiKey:     apiKey,
		breaker:    breaker,
		limiter:    rate.NewLimiter(rate.Limit(rps), int(rps)+1),
		cache:      memo,
		liveCache:  liveMemo,
		logger:     logger,
	}
}

// FixturesByDate lists fixtures scheduled for a YYYY-MM-DD date.
func (c *Client) FixturesByDate(ctx context.Context, date string) ([]FixtureData, error) {
	key := "fixtures:date:" + date
	var cached []FixtureData
	if c.cache.Get(ctx, key, &cached) {
		return cached, nil
	}

	var resp fixturesResponse
	if err := c.get(ctx, "fixtures", url.Values{"date": {date}}, &resp); err != nil {
		return nil, err
	}
	if len(resp.Response) > 0 {
		c.cache.Set(ctx, key, resp.Response)
	}
	return resp.Response, nil
}

// LiveFixtures lists every fixture currently in play.
func (c *Client) LiveFixtures(ctx context.Context) ([]FixtureData, error) {
	key := "fixtures:live"
	var cached []FixtureData
	if c.liveCache.Get(ctx, key, &cached) {
		return cached, nil
	}

	var resp fixturesResponse
	if err := c.get(ctx, "fixtures", url.Values{"live": {"all"}}, &resp); err != nil {
		return nil, err
	}
	if len(resp.Response) > 0 {
		c.liveCache.Set(ctx, key, resp.Response)
	}
	return resp.Response, nil
}

// FixtureByID fetches one fixture record; nil when the id is unknown.
func (c *Client) FixtureByID(ctx context.Context, fixtureID int) (*FixtureData, error) {
	key := fmt.Sprintf("fixtures:id:%d", fixtureID)
	var cached FixtureData
	if c.cache.Get(ctx, key, &cached) {
		return &cached, nil
	}

	var resp fixturesResponse
	if err := c.get(ctx, "fixtures", url.Values{"id": {fmt.Sprint(fixtureID)}}, &resp); err != nil {
		return nil, err
	}
	if len(resp.Response) == 0 {
		return nil, nil
	}
	fixture := resp.Response[0]
	c.cache.Set(ctx, key, fixture)
	return &fixture, nil
}

// LiveFixtureByID fetches one fixture record through the short-TTL live
// cache, keeping in-play score and elapsed time as fresh as the statistics
// and events feeds; nil when the id is unknown.
func (c *Client) LiveFixtureByID(ctx context.Context, fixtureID int) (*FixtureData, error) {
	key := fmt.Sprintf("fixtures:id:%d", fixtureID)
	var cached FixtureData
	if c.liveCache.Get(ctx, key, &cached) {
		return &cached, nil
	}

	var resp fixturesResponse
	if err := c.get(ctx, "fixtures", url.Values{"id": {fmt.Sprint(fixtureID)}}, &resp); err != nil {
		return nil, err
	}
	if len(resp.Response) == 0 {
		return nil, nil
	}
	fixture := resp.Response[0]
	c.liveCache.Set(ctx, key, fixture)
	return &fixture, nil
}

// Statistics fetches the raw per-team statistics for a fixture.
func (c *Client) Statistics(ctx context.Context, fixtureID int) ([]TeamStatisticsData, error) {
	key := fmt.Sprintf("statistics:%d", fixtureID)
	var cached []TeamStatisticsData
	if c.liveCache.Get(ctx, key, &cached) {
		return cached, nil
	}

	var resp statisticsResponse
	if err := c.get(ctx, "fixtures/statistics", url.Values{"fixture": {fmt.Sprint(fixtureID)}}, &resp); err != nil {
		return nil, err
	}
	if len(resp.Response) > 0 {
		c.liveCache.Set(ctx, key, resp.Response)
	}
	return resp.Response, nil
}

// Events fetches the in-play event feed for a fixture.
func (c *Client) Events(ctx context.Context, fixtureID int) ([]EventData, error) {
	key := fmt.Sprintf("events:%d", fixtureID)
	var cached []EventData
	if c.liveCache.Get(ctx, key, &cached) {
		return cached, nil
	}

	var resp eventsResponse
	if err := c.get(ctx, "fixtures/events", url.Values{"fixture": {fmt.Sprint(fixtureID)}}, &resp); err != nil {
		return nil, err
	}
	if len(resp.Response) > 0 {
		c.liveCache.Set(ctx, key, resp.Response)
	}
	return resp.Response, nil
}

// Odds fetches every bookmaker quote sheet for a fixture. An empty result
// is not an error; tips simply stay unpriced.
func (c *Client) Odds(ctx context.Context, fixtureID int) ([]OddsData, error) {
	key := fmt.Sprintf("odds:%d", fixtureID)
	var cached []OddsData
	if c.cache.Get(ctx, key, &cached) {
		return cached, nil
	}

	var resp oddsResponse
	if err := c.get(ctx, "odds", url.Values{"fixture": {fmt.Sprint(fixtureID)}}, &resp); err != nil {
		return nil, err
	}
	if len(resp.Response) > 0 {
		c.cache.Set(ctx, key, resp.Response)
	}
	return resp.Response, nil
}

// Player fetches one player's season statistics.
func (c *Client) Player(ctx context.Context, playerID, season int) (*PlayerData, error) {
	key := fmt.Sprintf("players:%d:%d", playerID, season)
	var cached PlayerData
	if c.cache.Get(ctx, key, &cached) {
		return &cached, nil
	}

	params := url.Values{"id": {fmt.Sprint(playerID)}, "season": {fmt.Sprint(season)}}
	var resp playersResponse
	if err := c.get(ctx, "players", params, &resp); err != nil {
		return nil, err
	}
	if len(resp.Response) == 0 {
		return nil, nil
	}
	player := resp.Response[0]
	c.cache.Set(ctx, key, player)
	return &player, nil
}

// Squad lists the players registered for a team.
func (c *Client) Squad(ctx context.Context, teamID int) ([]SquadPlayer, error) {
	key := fmt.Sprintf("squad:%d", teamID)
	var cached []SquadPlayer
	if c.cache.Get(ctx, key, &cached) {
		return cached, nil
	}

	var resp squadResponse
	if err := c.get(ctx, "players/squads", url.Values{"team": {fmt.Sprint(teamID)}}, &resp); err != nil {
		return nil, err
	}
	if len(resp.Response) == 0 {
		return nil, nil
	}
	players := resp.Response[0].Players
	c.cache.Set(ctx, key, players)
	return players, nil
}

// get performs one upstream read through the limiter and circuit breaker.
func (c *Client) get(ctx context.Context, path string, params url.Values, target interface{}) error {
	if c.apiKey == "" {
		return fmt.Errorf("api-football: API_SPORTS_KEY is not configured")
	}
	if err := c.limiter.Wait(ctx); err != nil {
		return fmt.Errorf("api-football: rate limiter: %w", err)
	}

	endpoint := fmt.Sprintf("%s/%s", c.baseURL, path)
	if encoded := params.Encode(); encoded != "" {
		endpoint += "?" + encoded
	}

	body, err := c.breaker.Execute(func() (interface{}, error) {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
		if err != nil {
			return nil, err
		}
		req.Header.Set("x-apisports-key", c.apiKey)
		req.Header.Set("x-rapidapi-host", "v3.football.api-sports.io")

		resp, err := c.httpClient.Do(req)
		if err != nil {
			return nil, err
		}
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusOK {
			return nil, fmt.Errorf("unexpected status code: %d", resp.StatusCode)
		}

		var decoded json.RawMessage
		if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
			return nil, err
		}
		return decoded, nil
	})
	if err != nil {
		c.logger.Warnf("api-football %s %v: %v", path, params, err)
		return fmt.Errorf("api-football %s: %w", path, err)
	}

	return json.Unmarshal(body.(json.RawMessage), target)
}
