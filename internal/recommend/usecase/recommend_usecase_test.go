package usecase

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	authdomain "learning-buddy-backend/internal/auth/domain"
	"learning-buddy-backend/pkg/apperr"
	"learning-buddy-backend/pkg/recommender"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// memoryCache is a map-backed Cache for tests.
type memoryCache struct {
	mu      sync.Mutex
	entries map[string][]byte
}

func (c *memoryCache) Get(_ context.Context, key string) ([]byte, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.entries[key], nil
}

func (c *memoryCache) Set(_ context.Context, key string, value []byte, _ time.Duration) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.entries == nil {
		c.entries = map[string][]byte{}
	}
	c.entries[key] = value
	return nil
}

func TestGetRecommendationsRequiresInterests(t *testing.T) {
	uc := NewRecommendUsecase(recommender.NewClient("http://localhost:0"), nil, time.Minute)

	_, err := uc.GetRecommendations(context.Background(), nil)
	assert.ErrorIs(t, err, apperr.ErrUnauthorized)

	_, err = uc.GetRecommendations(context.Background(), &authdomain.User{ID: "u1"})
	assert.ErrorIs(t, err, apperr.ErrNotFound)
}

func TestGetRecommendationsCaches(t *testing.T) {
	var hits int
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits++
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[{"area":"golang","courses":[{"id":"c1","score":0.8,"course_name":"Go Basics","category":"engineering","text":"intro"}]}]`))
	}))
	defer server.Close()

	uc := NewRecommendUsecase(recommender.NewClient(server.URL), &memoryCache{}, time.Minute)
	user := &authdomain.User{ID: "u1", InterestedAreas: []string{"golang"}}

	first, err := uc.GetRecommendations(context.Background(), user)
	require.NoError(t, err)
	require.Len(t, first, 1)
	assert.Equal(t, "golang", first[0].Area)

	// Second call is served from the cache.
	second, err := uc.GetRecommendations(context.Background(), user)
	require.NoError(t, err)
	assert.Equal(t, first, second)
	assert.Equal(t, 1, hits)
}
