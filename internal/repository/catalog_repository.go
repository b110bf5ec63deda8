package repository

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"filmpeek/configs"
)

type ICatalogRepository interface {
	Fetch(path string) ([]byte, error)
}

// CatalogRepository issues authenticated GETs against the upstream
// movie metadata provider and hands back the raw body.
type CatalogRepository struct {
	client *http.Client
}

func NewCatalogRepository(client *http.Client) *CatalogRepository {
	return &CatalogRepository{client: client}
}

//------------------------------------------
//------------------------------------------

func (r *CatalogRepository) Fetch(path string) ([]byte, error) {
	url := configs.GetConfigs().TmdbBaseUrl + "/" + path

	req, err := http.NewRequest(http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("accept", "application/json")
	req.Header.Set("Authorization", "Bearer "+configs.GetConfigs().TmdbApiKey)

	res, err := r.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer res.Body.Close()

	if res.StatusCode >= 400 {
		return nil, fmt.Errorf("catalog http %d", res.StatusCode)
	}

	body, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, err
	}
	if !json.Valid(body) {
		return nil, fmt.Errorf("catalog returned invalid json")
	}
	return body, nil
}
