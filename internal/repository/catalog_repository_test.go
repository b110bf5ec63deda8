package repository

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"filmpeek/configs"
	"filmpeek/pkg/httpclient"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalogRepositoryFetch(t *testing.T) {
	var gotAuth string
	var gotPath string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotPath = r.URL.RequestURI()
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"results":[{"id":42,"title":"Heat"}]}`))
	}))
	defer server.Close()

	configs.SetConfigs(configs.ConfigStruct{
		TmdbBaseUrl: server.URL,
		TmdbApiKey:  "test-api-key",
	})

	repo := NewCatalogRepository(httpclient.NewHTTPClient(5 * time.Second))
	body, err := repo.Fetch("movie/popular")
	require.NoError(t, err)

	assert.Equal(t, "Bearer test-api-key", gotAuth)
	assert.Equal(t, "/movie/popular", gotPath)
	assert.JSONEq(t, `{"results":[{"id":42,"title":"Heat"}]}`, string(body))
}

func TestCatalogRepositoryFetchErrorStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer server.Close()

	configs.SetConfigs(configs.ConfigStruct{
		TmdbBaseUrl: server.URL,
		TmdbApiKey:  "bad-key",
	})

	repo := NewCatalogRepository(httpclient.NewHTTPClient(5 * time.Second))
	_, err := repo.Fetch("movie/popular")
	assert.Error(t, err)
}

func TestCatalogRepositoryFetchInvalidJson(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("<html>not json</html>"))
	}))
	defer server.Close()

	configs.SetConfigs(configs.ConfigStruct{
		TmdbBaseUrl: server.URL,
		TmdbApiKey:  "test-api-key",
	})

	repo := NewCatalogRepository(httpclient.NewHTTPClient(5 * time.Second))
	_, err := repo.Fetch("movie/popular")
	assert.Error(t, err)
}

func TestCatalogRepositoryFetchConnectionError(t *testing.T) {
	configs.SetConfigs(configs.ConfigStruct{
		TmdbBaseUrl: "http://127.0.0.1:1",
		TmdbApiKey:  "test-api-key",
	})

	repo := NewCatalogRepository(httpclient.NewHTTPClient(time.Second))
	_, err := repo.Fetch("movie/popular")
	assert.Error(t, err)
}
