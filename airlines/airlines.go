package airlines

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"sort"
	"strconv"
	"time"
)

const defaultBaseURL = "https://api.aviationstack.com/v1"

// Profile is one airline from the AviationStack /airlines endpoint. The
// numeric features arrive as strings and are parsed on demand.
type Profile struct {
	AirlineName     string `json:"airline_name"`
	CountryName     string `json:"country_name"`
	FleetSize       string `json:"fleet_size"`
	FleetAverageAge string `json:"fleet_average_age"`
	DateFounded     string `json:"date_founded"`
}

type airlinesResponse struct {
	Data []Profile `json:"data"`
}

// FeatureValue pairs an airline with one numeric feature value.
type FeatureValue struct {
	Airline string  `json:"airline"`
	Value   float64 `json:"value"`
}

// Client fetches airline profiles from the AviationStack API.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

func NewClient(apiKey string) *Client {
	return &Client{
		baseURL: defaultBaseURL,
		apiKey:  apiKey,
		httpClient: &http.Client{
			Timeout: 15 * time.Second,
		},
	}
}

// WithBaseURL overrides the API endpoint (useful for testing).
func (c *Client) WithBaseURL(url string) *Client {
	c.baseURL = url
	return c
}

// FetchProfiles retrieves the airline profile list.
func (c *Client) FetchProfiles(ctx context.Context) ([]Profile, error) {
	reqURL := c.baseURL + "/airlines?" + url.Values{"access_key": {c.apiKey}}.Encode()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching airlines: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("airlines request failed (status %d)", resp.StatusCode)
	}

	var raw airlinesResponse
	if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		return nil, fmt.Errorf("decoding airlines: %w", err)
	}

	return raw.Data, nil
}

// Compare extracts one feature (fleet_size, fleet_average_age or
// date_founded) across airlines, optionally filtered by country, sorted
// ascending by value. Airlines whose feature does not parse are skipped.
func Compare(profiles []Profile, feature, country string) ([]FeatureValue, error) {
	var pick func(Profile) string
	switch feature {
	case "fleet_size":
		pick = func(p Profile) string { return p.FleetSize }
	case "fleet_average_age":
		pick = func(p Profile) string { return p.FleetAverageAge }
	case "date_founded":
		pick = func(p Profile) string { return p.DateFounded }
	default:
		return nil, fmt.Errorf("unknown feature %q", feature)
	}

	var out []FeatureValue
	for _, p := range profiles {
		if country != "" && p.CountryName != country {
			continue
		}
		v, err := strconv.ParseFloat(pick(p), 64)
		if err != nil {
			continue
		}
		out = append(out, FeatureValue{Airline: p.AirlineName, Value: v})
	}

	sort.Slice(out, func(i, j int) bool {
		if out[i].Value != out[j].Value {
			return out[i].Value < out[j].Value
		}
		return out[i].Airline < out[j].Airline
	})

	return out, nil
}

// Countries returns the distinct countries of origin present in the
// profile list, sorted alphabetically.
func Countries(profiles []Profile) []string {
	seen := make(map[string]struct{})
	var out []string
	for _, p := range profiles {
		if p.CountryName == "" {
			continue
		}
		if _, ok := seen[p.CountryName]; ok {
			continue
		}
		seen[p.CountryName] = struct{}{}
		out = append(out, p.CountryName)
	}
	sort.Strings(out)
	return out
}
