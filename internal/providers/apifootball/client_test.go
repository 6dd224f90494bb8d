package apifootball

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jean-rgsocd/chatbot-whatsapp-ia/internal/cache"
)

func fixtureServer(homeGoals *int32) *httptest.Server {
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprintf(w, `{"response":[{
			"fixture":{"id":55,"status":{"short":"2H","elapsed":80}},
			"teams":{"home":{"id":1,"name":"Palmeiras"},"away":{"id":2,"name":"Santos"}},
			"goals":{"home":%d,"away":0}
		}]}`, atomic.LoadInt32(homeGoals))
	}))
}

func testClient(baseURL string, liveTTL time.Duration) *Client {
	logger := logrus.New()
	logger.SetLevel(logrus.PanicLevel)
	return NewClient("test-key", Options{
		BaseURL:   baseURL,
		Cache:     cache.NewMemoryStore(time.Minute),
		LiveCache: cache.NewMemoryStore(liveTTL),
	}, logger)
}

func TestLiveFixtureByID_ScoreStaysFresh(t *testing.T) {
	var homeGoals int32
	server := fixtureServer(&homeGoals)
	defer server.Close()

	client := testClient(server.URL, 10*time.Millisecond)
	ctx := context.Background()

	// Prime both caches while the game is still 0-0.
	preMatch, err := client.FixtureByID(ctx, 55)
	require.NoError(t, err)
	require.NotNil(t, preMatch)
	live, err := client.LiveFixtureByID(ctx, 55)
	require.NoError(t, err)
	require.NotNil(t, live)
	assert.Equal(t, 0, live.MatchContext().HomeGoals)

	// A goal is scored upstream and the live TTL passes.
	atomic.StoreInt32(&homeGoals, 1)
	time.Sleep(25 * time.Millisecond)

	live, err = client.LiveFixtureByID(ctx, 55)
	require.NoError(t, err)
	require.NotNil(t, live)
	assert.Equal(t, 1, live.MatchContext().HomeGoals,
		"live fixture lookup must not serve a score older than the live TTL")

	// The fixture-menu path keeps its longer memo window.
	preMatch, err = client.FixtureByID(ctx, 55)
	require.NoError(t, err)
	require.NotNil(t, preMatch)
	assert.Equal(t, 0, preMatch.MatchContext().HomeGoals)
}

func TestLiveFixtureByID_WithinTTLHitsCache(t *testing.T) {
	var homeGoals int32
	server := fixtureServer(&homeGoals)
	defer server.Close()

	client := testClient(server.URL, time.Minute)
	ctx := context.Background()

	_, err := client.LiveFixtureByID(ctx, 55)
	require.NoError(t, err)

	atomic.StoreInt32(&homeGoals, 1)
	live, err := client.LiveFixtureByID(ctx, 55)
	require.NoError(t, err)
	require.NotNil(t, live)
	assert.Equal(t, 0, live.MatchContext().HomeGoals, "second read inside the TTL is memoized")
}
