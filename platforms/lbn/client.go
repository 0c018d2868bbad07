package lbn

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/gregkash16/ncx-sub000/model"
	"github.com/gregkash16/ncx-sub000/platforms/lbn/internal"
)

// LBNURL is the LaunchBayNext API host used to normalize a shared list link
// into its pilots structure.
const LBNURL = "https://launchbaynext.app"

type Client struct {
	url        string
	httpClient *http.Client
}

func New() *Client {
	return &Client{
		url: LBNURL,
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

// Resolve fetches the canonical pilots structure for a launchbaynext.app
// list link.
func (c *Client) Resolve(ctx context.Context, listURL string) (*model.ParsedList, []byte, error) {
	endpoint := fmt.Sprintf("%s/api/xws?link=%s", c.url, url.QueryEscape(listURL))
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

	var parsed internal.LBNList
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return nil, nil, fmt.Errorf("error parsing response from launchbaynext: %w", err)
	}

	list := parsed.ToList()
	raw, err := json.Marshal(list)
	if err != nil {
		return nil, nil, fmt.Errorf("error encoding canonical list: %w", err)
	}
	return list, raw, nil
}
