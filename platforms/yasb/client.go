package yasb

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/gregkash16/ncx-sub000/model"
	"github.com/gregkash16/ncx-sub000/platforms/yasb/internal"
)

// YASBURL is the normalization service that converts a yasb.app squad link
// into a canonical XWS pilots structure.
const YASBURL = "https://squad2xws.objectivecat.com"

type Client struct {
	url        string
	httpClient *http.Client
}

func New() *Client {
	return &Client{
		url: YASBURL,
		httpClient: &http.Client{
			Timeout: 15 * time.Second,
		},
	}
}

func NewForTest(url string) *Client {
	return &Client{
		url:        url,
		httpClient: &http.Client{Timeout: 15 * time.Second},
	}
}

// Resolve fetches the canonical pilots structure for a yasb.app list link.
// The raw response body is returned alongside the parsed form so callers can
// store it.
func (c *Client) Resolve(ctx context.Context, listURL string) (*model.ParsedList, []byte, error) {
	endpoint := fmt.Sprintf("%s/yasb/xws?link=%s", c.url, url.QueryEscape(listURL))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, nil, fmt.Errorf("error creating http request: %w", err)
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, nil, fmt.Errorf("error sending http request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, nil, fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	var parsed internal.XWSSquad
	dec := json.NewDecoder(resp.Body)
	if err := dec.Decode(&parsed); err != nil {
		return nil, nil, fmt.Errorf("error parsing response from yasb converter: %w", err)
	}

	list := parsed.ToList()
	raw, err := json.Marshal(list)
	if err != nil {
		return nil, nil, fmt.Errorf("error encoding canonical list: %w", err)
	}
	return list, raw, nil
}
