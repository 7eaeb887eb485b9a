// Package nutrition queries the Nutritionix natural-language nutrients
// endpoint for the CLI's "nutrition for <food>" trigger.
package nutrition

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// ErrUnparseable marks payloads that do not carry the expected fields.
var ErrUnparseable = errors.New("nutritionix payload not in expected shape")

const DefaultBaseURL = "https://trackapi.nutritionix.com/v2"

// TriggerPhrase marks a CLI input as a nutrition lookup.
const TriggerPhrase = "nutrition for"

// ParseErrorMessage is shown when the payload does not have the expected shape.
const ParseErrorMessage = "Could not parse the food data. Please try a different query."

// Food holds the subset of Nutritionix fields this application consumes.
type Food struct {
	Name     string  `json:"food_name"`
	Calories float64 `json:"nf_calories"`
	Protein  float64 `json:"nf_protein"`
	Fat      float64 `json:"nf_total_fat"`
	Carbs    float64 `json:"nf_total_carbohydrate"`
}

type nutrientsResponse struct {
	Foods []Food `json:"foods"`
}

type Client struct {
	baseURL string
	appID   string
	apiKey  string
	http    *http.Client
}

func NewClient(baseURL, appID, apiKey string) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		baseURL: baseURL,
		appID:   appID,
		apiKey:  apiKey,
		http:    &http.Client{Timeout: 10 * time.Second},
	}
}

type HTTPError struct {
	StatusCode int
	Body       string
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("nutritionix request failed: status=%d body=%s", e.StatusCode, e.Body)
}

// Lookup fetches nutrition facts for a food name. It returns the first
// matched food; anything else in the payload is ignored.
func (c *Client) Lookup(ctx context.Context, foodName string) (*Food, error) {
	query := url.Values{"query": []string{foodName}}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet,
		c.baseURL+"/natural/nutrients?"+query.Encode(), nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("x-app-id", c.appID)
	req.Header.Set("x-app-key", c.apiKey)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	const maxBodySize = 1 * 1024 * 1024
	body, readErr := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if readErr != nil {
		return nil, fmt.Errorf("nutritionix response read failed: %w", readErr)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, &HTTPError{StatusCode: resp.StatusCode, Body: string(body)}
	}

	var out nutrientsResponse
	if err := json.Unmarshal(body, &out); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnparseable, err)
	}
	if len(out.Foods) == 0 {
		return nil, fmt.Errorf("%w: no foods for %q", ErrUnparseable, foodName)
	}
	return &out.Foods[0], nil
}

// Format renders a food record as the user-facing five-line summary.
func Format(f *Food) string {
	return fmt.Sprintf(
		"Food: %s\nCalories: %g kcal\nProtein: %g g\nFat: %g g\nCarbohydrates: %g g",
		f.Name, f.Calories, f.Protein, f.Fat, f.Carbs,
	)
}

// ExtractQuery reports whether input contains the nutrition trigger phrase
// and, if so, returns the remaining food name. Matching is case-insensitive,
// like the rest of the CLI menu handling.
func ExtractQuery(input string) (string, bool) {
	lower := strings.ToLower(input)
	if !strings.Contains(lower, TriggerPhrase) {
		return "", false
	}
	food := strings.TrimSpace(strings.ReplaceAll(lower, TriggerPhrase, ""))
	return food, true
}
