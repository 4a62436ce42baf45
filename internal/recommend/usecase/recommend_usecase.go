package usecase

import (
	"context"
	"encoding/json"
	"log"
	"time"

	authdomain "learning-buddy-backend/internal/auth/domain"
	"learning-buddy-backend/pkg/apperr"
	"learning-buddy-backend/pkg/recommender"
)

// Cache is the optional TTL store for recommendation payloads.
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
}

// RecommendUsecase proxies the external course-scoring service.
type RecommendUsecase interface {
	GetRecommendations(ctx context.Context, user *authdomain.User) ([]recommender.AreaRecommendation, error)
}

type recommendUsecase struct {
	client *recommender.Client
	cache  Cache
	ttl    time.Duration
}

// NewRecommendUsecase creates a new instance of recommendUsecase. cache
// may be nil when no Redis instance is configured.
func NewRecommendUsecase(client *recommender.Client, cache Cache, ttl time.Duration) RecommendUsecase {
	return &recommendUsecase{
		client: client,
		cache:  cache,
		ttl:    ttl,
	}
}

func (u *recommendUsecase) GetRecommendations(ctx context.Context, user *authdomain.User) ([]recommender.AreaRecommendation, error) {
	if user == nil {
		return nil, apperr.Unauthorized("user not found")
	}
	if len(user.InterestedAreas) == 0 {
		return nil, apperr.NotFound("no interested areas found for user")
	}

	cacheKey := "recommend:" + user.ID
	if u.cache != nil {
		if cached, err := u.cache.Get(ctx, cacheKey); err == nil && cached != nil {
			var result []recommender.AreaRecommendation
			if err := json.Unmarshal(cached, &result); err == nil {
				return result, nil
			}
		}
	}

	result, err := u.client.RecommendCourses(ctx, user.InterestedAreas)
	if err != nil {
		return nil, err
	}

	if u.cache != nil {
		if encoded, err := json.Marshal(result); err == nil {
			if err := u.cache.Set(ctx, cacheKey, encoded, u.ttl); err != nil {
				log.Printf("[WARN] failed to cache recommendations: %v", err)
			}
		}
	}

	return result, nil
}
