package cfbd

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/mww/cfb_rankings/model"
	"golang.org/x/oauth2"
)

const CFBDURL = "https://api.collegefootballdata.com"

const (
	SeasonTypeRegular    = "regular"
	SeasonTypePostseason = "postseason"
)

// Client loads season data from the CollegeFootballData API.
type Client interface {
	// Only FBS and FCS teams are returned.
	LoadTeams(ctx context.Context, year int) ([]model.Team, error)
	LoadGames(ctx context.Context, year int, seasonType string) ([]model.Game, error)
}

type client struct {
	url        string
	httpClient *http.Client
}

// New creates a client for the public API. The API key is sent as a bearer
// token, if apiKey is empty requests are sent without authorization.
func New(apiKey string) (Client, error) {
	return newClient(CFBDURL, apiKey), nil
}

func NewForTest(url string) Client {
	return newClient(url, TestAPIKey)
}

// TestAPIKey is the key used by NewForTest, fake servers can check for it.
const TestAPIKey = "test-api-key"

func newClient(url, apiKey string) *client {
	httpClient := &http.Client{}
	if apiKey != "" {
		ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: apiKey})
		httpClient = oauth2.NewClient(context.Background(), ts)
	}
	httpClient.Timeout = 1 * time.Minute

	return &client{
		url:        url,
		httpClient: httpClient,
	}
}

func (c *client) LoadTeams(ctx context.Context, year int) ([]model.Team, error) {
	params := url.Values{}
	params.Set("year", strconv.Itoa(year))

	var parsed []cfbdTeam
	if err := c.get(ctx, "/teams", params, &parsed); err != nil {
		return nil, err
	}

	result := make([]model.Team, 0, len(parsed))
	skipped := 0
	for _, t := range parsed {
		team, ok := t.toTeam()
		if !ok {
			skipped++
			continue
		}
		result = append(result, team)
	}
	if skipped > 0 {
		log.Printf("skipped %d teams for %d that are not FBS or FCS", skipped, year)
	}

	return result, nil
}

func (c *client) LoadGames(ctx context.Context, year int, seasonType string) ([]model.Game, error) {
	params := url.Values{}
	params.Set("year", strconv.Itoa(year))
	if seasonType != "" {
		params.Set("seasonType", seasonType)
	}

	var parsed []cfbdGame
	if err := c.get(ctx, "/games", params, &parsed); err != nil {
		return nil, err
	}

	result := make([]model.Game, 0, len(parsed))
	for _, g := range parsed {
		game, ok := g.toGame()
		if !ok {
			continue
		}
		result = append(result, game)
	}

	return result, nil
}

func (c *client) get(ctx context.Context, path string, params url.Values, v any) error {
	reqURL := fmt.Sprintf("%s%s?%s", c.url, path, params.Encode())
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return fmt.Errorf("error creating http request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("error sending http request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(v); err != nil {
		return fmt.Errorf("error parsing response from cfbd: %w", err)
	}
	return nil
}
