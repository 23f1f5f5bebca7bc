// Package pokeapi provides a CreatureSource implementation over the PokeAPI
// REST endpoints.
package pokeapi

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/ersonp/dex-core/internal/domain/entities"
	"github.com/ersonp/dex-core/internal/domain/ports"
	"github.com/ersonp/dex-core/internal/infrastructure/config"
)

// nameIndexLimit is large enough to return every creature in one page.
const nameIndexLimit = 100000

// maxErrorBody bounds how much of an error response is quoted in errors.
const maxErrorBody = 256

// Client implements ports.CreatureSource over HTTP.
type Client struct {
	httpClient *http.Client
	baseURL    string
	userAgent  string
}

// NewClient creates a new PokeAPI client.
func NewClient(cfg config.APIConfig) (*Client, error) {
	if cfg.BaseURL == "" {
		return nil, errors.New("api base url is required")
	}
	if _, err := url.Parse(cfg.BaseURL); err != nil {
		return nil, fmt.Errorf("parsing api base url: %w", err)
	}

	return &Client{
		httpClient: &http.Client{Timeout: cfg.Timeout},
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		userAgent:  cfg.UserAgent,
	}, nil
}

// FetchCreature retrieves a creature by numeric id or name slug.
func (c *Client) FetchCreature(ctx context.Context, key string) (*entities.Creature, error) {
	key = entities.NormalizeKey(key)
	if key == "" {
		return nil, fmt.Errorf("empty key: %w", ports.ErrNotFound)
	}

	var raw rawCreature
	if err := c.getJSON(ctx, c.baseURL+"/pokemon/"+url.PathEscape(key), &raw); err != nil {
		return nil, fmt.Errorf("fetching creature %q: %w", key, err)
	}
	creature := raw.toEntity()
	return &creature, nil
}

// FetchSpecies retrieves species data. The URL is normally the absolute one
// embedded in a creature record; a relative path is resolved against the base URL.
func (c *Client) FetchSpecies(ctx context.Context, speciesURL string) (*entities.Species, error) {
	if !strings.HasPrefix(speciesURL, "http://") && !strings.HasPrefix(speciesURL, "https://") {
		speciesURL = c.baseURL + "/" + strings.TrimLeft(speciesURL, "/")
	}

	var raw rawSpecies
	if err := c.getJSON(ctx, speciesURL, &raw); err != nil {
		return nil, fmt.Errorf("fetching species: %w", err)
	}
	species := raw.toEntity()
	return &species, nil
}

// ListNames returns every creature slug in source order.
func (c *Client) ListNames(ctx context.Context) ([]string, error) {
	var page rawNamedPage
	endpoint := fmt.Sprintf("%s/pokemon?limit=%d&offset=0", c.baseURL, nameIndexLimit)
	if err := c.getJSON(ctx, endpoint, &page); err != nil {
		return nil, fmt.Errorf("listing names: %w", err)
	}

	names := make([]string, 0, len(page.Results))
	for _, r := range page.Results {
		names = append(names, r.Name)
	}
	return names, nil
}

// getJSON issues a GET and decodes the body. A 404 maps to ports.ErrNotFound.
func (c *Client) getJSON(ctx context.Context, endpoint string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("sending request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return ports.ErrNotFound
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return fmt.Errorf("unexpected status %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decoding response: %w", err)
	}
	return nil
}
