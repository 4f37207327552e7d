package hackernews

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fakeAPI(t *testing.T, items map[int]string) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/v0/topstories.json", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `[3, 1, 2, 4, 5]`)
	})
	mux.HandleFunc("/v0/jobstories.json", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	})
	mux.HandleFunc("/v0/item/", func(w http.ResponseWriter, r *http.Request) {
		var id int
		if _, err := fmt.Sscanf(r.URL.Path, "/v0/item/%d.json", &id); err != nil {
			http.NotFound(w, r)
			return
		}
		body, ok := items[id]
		if !ok {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		fmt.Fprint(w, body)
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func TestStoriesKeepsRankAndAbsence(t *testing.T) {
	srv := fakeAPI(t, map[int]string{
		1: `{"id":1,"type":"story","title":"One","url":"https://one.example","score":10,"descendants":0,"time":100}`,
		2: `{"id":2,"type":"job","title":"Hiring","time":200}`,
		3: `{"id":3,"type":"story","title":"Three","score":0,"descendants":4,"time":300}`,
		4: `{"id":4,"deleted":true,"time":400}`,
		// 5 fails with a 500 and is skipped
	})
	c := NewClient(srv.URL + "/v0/")

	posts, err := c.Stories(context.Background(), "top", 0)
	require.NoError(t, err)
	require.Len(t, posts, 3)
	assert.Equal(t, []int{3, 1, 2}, []int{posts[0].ID, posts[1].ID, posts[2].ID})

	three := posts[0]
	score, ok := three.Score.Get()
	assert.True(t, ok, "zero score is present")
	assert.Equal(t, 0, score)
	assert.False(t, three.URL.IsSome())

	job := posts[2]
	assert.Equal(t, "job", job.Type)
	assert.False(t, job.Score.IsSome())
	assert.False(t, job.Comments.IsSome())
}

func TestStoriesLimit(t *testing.T) {
	srv := fakeAPI(t, map[int]string{
		3: `{"id":3,"type":"story","time":1}`,
		1: `{"id":1,"type":"story","time":1}`,
	})
	c := NewClient(srv.URL + "/v0")

	posts, err := c.Stories(context.Background(), "topstories", 2)
	require.NoError(t, err)
	assert.Len(t, posts, 2)
}

func TestStoriesListError(t *testing.T) {
	srv := fakeAPI(t, nil)
	c := NewClient(srv.URL + "/v0")

	_, err := c.Stories(context.Background(), "jobs", 5)
	assert.ErrorContains(t, err, "jobstories status 503")
}

func TestItemNull(t *testing.T) {
	srv := fakeAPI(t, map[int]string{9: `null`})
	c := NewClient(srv.URL + "/v0")

	_, err := c.Item(context.Background(), 9)
	assert.True(t, errors.Is(err, ErrNotFound))
}

func TestListEndpoint(t *testing.T) {
	assert.Equal(t, "topstories", ListEndpoint(""))
	assert.Equal(t, "topstories", ListEndpoint("whatever"))
	assert.Equal(t, "askstories", ListEndpoint("Ask"))
	assert.Equal(t, "jobstories", ListEndpoint("jobs"))
	assert.Equal(t, "beststories", ListEndpoint("beststories"))
}
