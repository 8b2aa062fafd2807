package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/rocketscienceinc/rockpaperscissors/internal/entity"
)

// maxErrorBody bounds how much of an error response is kept for logging.
const maxErrorBody = 512

// StatusError - the backend answered with a non 2xx status.
type StatusError struct {
	Method     string
	URL        string
	StatusCode int
	Body       string
}

func (that *StatusError) Error() string {
	return fmt.Sprintf("%s %s: backend returned status %d", that.Method, that.URL, that.StatusCode)
}

// Temporary - server side failures are worth retrying, client side ones are not.
func (that *StatusError) Temporary() bool {
	return that.StatusCode >= http.StatusInternalServerError || that.StatusCode == http.StatusTooManyRequests
}

type RoundPayload struct {
	Round         int    `json:"round"`
	Player1Choice string `json:"player1Choice"`
	Player2Choice string `json:"player2Choice"`
	Winner        string `json:"winner"`
}

// MatchPayload - the body of the persist match request.
type MatchPayload struct {
	Player1Name string         `json:"player1Name"`
	Player2Name string         `json:"player2Name"`
	Rounds      []RoundPayload `json:"rounds"`
	Winner      string         `json:"winner"`
}

func NewMatchPayload(match *entity.Match) *MatchPayload {
	rounds := make([]RoundPayload, 0, len(match.Rounds))
	for _, round := range match.Rounds {
		rounds = append(rounds, RoundPayload{
			Round:         round.Number,
			Player1Choice: round.Player1Choice.String(),
			Player2Choice: round.Player2Choice.String(),
			Winner:        round.Winner,
		})
	}

	return &MatchPayload{
		Player1Name: match.Player1Name,
		Player2Name: match.Player2Name,
		Rounds:      rounds,
		Winner:      match.Winner,
	}
}

type Client struct {
	httpClient *http.Client
	submitURL  string
	historyURL string
}

func New(submitURL, historyURL string, timeout time.Duration) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: timeout},
		submitURL:  submitURL,
		historyURL: historyURL,
	}
}

// SubmitMatch - posts a finished match to the backend. Any 2xx answer is a success, the body is ignored.
func (that *Client) SubmitMatch(ctx context.Context, match *entity.Match) error {
	body, err := json.Marshal(NewMatchPayload(match))
	if err != nil {
		return fmt.Errorf("could not marshal match: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, that.submitURL, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("could not build submit request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := that.do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	// drain so the connection can be reused
	_, _ = io.Copy(io.Discard, resp.Body)

	return nil
}

// ListMatches - fetches the completed games known to the backend.
func (that *Client) ListMatches(ctx context.Context) ([]entity.GameRecord, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, that.historyURL, nil)
	if err != nil {
		return nil, fmt.Errorf("could not build history request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := that.do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	var records []entity.GameRecord
	if err = json.NewDecoder(resp.Body).Decode(&records); err != nil {
		return nil, fmt.Errorf("failed to decode game history: %w", err)
	}

	if records == nil {
		records = []entity.GameRecord{}
	}

	return records, nil
}

func (that *Client) do(req *http.Request) (*http.Response, error) {
	resp, err := that.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%s %s: %w", req.Method, req.URL, err)
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		defer resp.Body.Close()

		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))

		return nil, &StatusError{
			Method:     req.Method,
			URL:        req.URL.String(),
			StatusCode: resp.StatusCode,
			Body:       string(body),
		}
	}

	return resp, nil
}
