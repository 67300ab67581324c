package client

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"

	"github.com/fatih/color"
	"github.com/keelhq/opsq/internal/queue"
)

// BaseURLFunc provides the base HTTP API URL (e.g., from env or flag).
type BaseURLFunc func() string

// staffIDFromEnv returns the staff identity sent with queue queries.
func staffIDFromEnv() string { return os.Getenv("OPSQ_STAFF_ID") }

// getJSON performs a GET and decodes the JSON response into out.
// Non-2xx responses are surfaced as errors carrying the server's
// error message when one is present.
func getJSON(url, staffID string, out any) error {
	req, err := http.NewRequest(http.MethodGet, url, nil)
	if err != nil {
		return err
	}
	if staffID != "" {
		req.Header.Set("X-Staff-Id", staffID)
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode/100 != 2 {
		return serverError(resp)
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

func serverError(resp *http.Response) error {
	var e struct {
		Error string `json:"error"`
	}
	body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
	if json.Unmarshal(body, &e) == nil && e.Error != "" {
		return fmt.Errorf("server: %s (%s)", e.Error, resp.Status)
	}
	return fmt.Errorf("server: %s", resp.Status)
}

// urgencyColor maps an urgency tier to its terminal rendering.
func urgencyColor(u queue.Urgency) *color.Color {
	switch u {
	case queue.UrgencyCritical:
		return color.New(color.FgRed, color.Bold)
	case queue.UrgencyHigh:
		return color.New(color.FgYellow)
	case queue.UrgencyLow:
		return color.New(color.FgHiBlack)
	default:
		return color.New(color.FgWhite)
	}
}
