package recommender

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"learning-buddy-backend/pkg/apperr"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecommendCourses(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/recommend-courses", r.URL.Path)
		assert.Equal(t, "POST", r.Method)

		var body struct {
			InterestedAreas []string `json:"interestedAreas"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, []string{"golang", "databases"}, body.InterestedAreas)

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[
			{"area":"golang","courses":[{"id":"c1","score":0.91,"course_name":"Go in Practice","category":"engineering","text":"hands-on go"}]},
			{"area":"databases","courses":[]}
		]`))
	}))
	defer server.Close()

	client := NewClient(server.URL)
	result, err := client.RecommendCourses(context.Background(), []string{"golang", "databases"})
	require.NoError(t, err)
	require.Len(t, result, 2)
	assert.Equal(t, "golang", result[0].Area)
	require.Len(t, result[0].Courses, 1)
	assert.Equal(t, "c1", result[0].Courses[0].ID)
	assert.Equal(t, 0.91, result[0].Courses[0].Score)
	assert.Equal(t, "Go in Practice", result[0].Courses[0].CourseName)
}

func TestRecommendCoursesUpstreamError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
		_, _ = w.Write([]byte(`{"detail":"index unavailable"}`))
	}))
	defer server.Close()

	client := NewClient(server.URL)
	_, err := client.RecommendCourses(context.Background(), []string{"golang"})
	require.Error(t, err)

	var upstream *apperr.UpstreamError
	require.ErrorAs(t, err, &upstream)
	assert.Equal(t, http.StatusServiceUnavailable, upstream.StatusCode)
	assert.Equal(t, "index unavailable", upstream.Message)

	// The mapped status relays the upstream code unchanged.
	assert.Equal(t, http.StatusServiceUnavailable, apperr.Status(err))
}

func TestRecommendCoursesBadHost(t *testing.T) {
	client := NewClient("http://127.0.0.1:1")
	_, err := client.RecommendCourses(context.Background(), []string{"golang"})
	assert.Error(t, err)
	assert.Equal(t, http.StatusInternalServerError, apperr.Status(err))
}
