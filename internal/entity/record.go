package entity

import (
	"bytes"
	"encoding/json"
	"fmt"
	"time"
)

const (
	SubmissionPending = "pending"
	SubmissionSaved   = "saved"
	SubmissionFailed  = "failed"
)

// GameRecord - one completed game as listed by the game history backend.
type GameRecord struct {
	ID          RecordID `json:"id"`
	Player1Name string   `json:"player1_name"`
	Player2Name string   `json:"player2_name"`
	Winner      string   `json:"winner"`
}

// RecordID accepts both numeric and string identifiers.
type RecordID string

func (that *RecordID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)

	if bytes.Equal(data, []byte("null")) {
		*that = ""
		return nil
	}

	if len(data) > 0 && data[0] == '"' {
		var value string
		if err := json.Unmarshal(data, &value); err != nil {
			return fmt.Errorf("failed to unmarshal record id: %w", err)
		}

		*that = RecordID(value)
		return nil
	}

	var number json.Number
	if err := json.Unmarshal(data, &number); err != nil {
		return fmt.Errorf("failed to unmarshal record id: %w", err)
	}

	*that = RecordID(number.String())

	return nil
}

// Submission - the outcome of sending a finished match to the backend.
type Submission struct {
	MatchID   string    `json:"match_id"`
	Status    string    `json:"status"`
	Attempts  int       `json:"attempts"`
	Error     string    `json:"error,omitempty"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (that *Submission) IsPending() bool {
	return that.Status == SubmissionPending
}

func (that *Submission) IsSaved() bool {
	return that.Status == SubmissionSaved
}

func (that *Submission) IsFailed() bool {
	return that.Status == SubmissionFailed
}
