package search

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newFakeCluster answers just enough of the REST API for the client wrapper.
func newFakeCluster(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-Elastic-Product", "Elasticsearch")
		w.Header().Set("Content-Type", "application/json")
		if r.URL.Path == "/" && r.Method == http.MethodGet {
			io.WriteString(w, `{"version":{"number":"8.19.1"},"tagline":"You Know, for Search"}`)
			return
		}
		handler(w, r)
	}))
	t.Cleanup(srv.Close)

	c, err := NewClient(&Config{Addresses: []string{srv.URL}})
	require.NoError(t, err)
	return c
}

func TestSearchDecodesHits(t *testing.T) {
	var gotBody map[string]any
	c := newFakeCluster(t, func(w http.ResponseWriter, r *http.Request) {
		assert.True(t, strings.HasPrefix(r.URL.Path, "/products/_search"))
		json.NewDecoder(r.Body).Decode(&gotBody)
		io.WriteString(w, `{"hits":{"total":{"value":1},"hits":[{"_id":"p1","_source":{"sku":"SKU-1"}}]}}`)
	})

	res, err := c.Search(context.Background(), "products", map[string]any{"query": map[string]any{"match_all": map[string]any{}}})
	require.NoError(t, err)
	assert.Equal(t, 1, res.Hits.Total.Value)
	require.Len(t, res.Hits.Hits, 1)
	assert.Equal(t, "p1", res.Hits.Hits[0].ID)
	assert.JSONEq(t, `{"sku":"SKU-1"}`, string(res.Hits.Hits[0].Source))
	assert.Contains(t, gotBody, "query")
}

func TestIndexAndErrors(t *testing.T) {
	c := newFakeCluster(t, func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.Method == http.MethodPut && r.URL.Path == "/products/_doc/p1":
			w.WriteHeader(http.StatusCreated)
			io.WriteString(w, `{"result":"created"}`)
		case r.Method == http.MethodPut && r.URL.Path == "/products":
			w.WriteHeader(http.StatusBadRequest)
			io.WriteString(w, `{"error":{"type":"resource_already_exists_exception"}}`)
		case r.Method == http.MethodDelete:
			w.WriteHeader(http.StatusNotFound)
			io.WriteString(w, `{"error":{"type":"index_not_found_exception"}}`)
		default:
			w.WriteHeader(http.StatusInternalServerError)
			io.WriteString(w, `{"error":"unexpected"}`)
		}
	})
	ctx := context.Background()

	assert.NoError(t, c.Index(ctx, "products", "p1", map[string]string{"sku": "SKU-1"}))
	assert.NoError(t, c.CreateIndex(ctx, "products", `{}`))
	assert.NoError(t, c.DeleteIndex(ctx, "products"))
	_, err := c.Search(ctx, "products", map[string]any{})
	assert.Error(t, err)
}
