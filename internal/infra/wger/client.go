package wger

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"gymgain/internal/pkg/config"
	"gymgain/internal/pkg/errs"
	"gymgain/internal/usecase/queries"
)

// Client talks to the wger exercise catalog (https://wger.de).
type Client struct {
	baseURL    string
	language   int
	httpClient *http.Client
}

func NewClient(cfg config.WgerConfig) *Client {
	return &Client{
		baseURL:  cfg.BaseURL,
		language: cfg.Language,
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
	}
}

type searchResponse struct {
	Suggestions []struct {
		Value string `json:"value"`
		Data  struct {
			ID       int64  `json:"id"`
			BaseID   int64  `json:"base_id"`
			Name     string `json:"name"`
			Category string `json:"category"`
		} `json:"data"`
	} `json:"suggestions"`
}

func (c *Client) Search(ctx context.Context, term string) ([]queries.ExerciseSuggestion, error) {
	endpoint := fmt.Sprintf("%s/api/v2/exercise/search/", c.baseURL)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, errs.Wrap(err, "failed to build exercise search request")
	}

	q := url.Values{}
	q.Set("term", term)
	q.Set("language", strconv.Itoa(c.language))
	q.Set("format", "json")
	req.URL.RawQuery = q.Encode()
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, errs.Wrap(err, "exercise search request failed")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, errs.New(fmt.Sprintf("exercise search returned status %d", resp.StatusCode))
	}

	var body searchResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, errs.Wrap(err, "failed to decode exercise search response")
	}

	suggestions := make([]queries.ExerciseSuggestion, 0, len(body.Suggestions))
	for _, s := range body.Suggestions {
		name := s.Data.Name
		if name == "" {
			name = s.Value
		}
		id := s.Data.BaseID
		if id == 0 {
			id = s.Data.ID
		}
		suggestions = append(suggestions, queries.ExerciseSuggestion{
			ExerciseID: id,
			Name:       name,
			Category:   s.Data.Category,
		})
	}

	return suggestions, nil
}
