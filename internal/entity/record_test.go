package entity

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGameRecord_Unmarshal(t *testing.T) {
	t.Run("Accepts numeric and string ids", func(t *testing.T) {
		// Given: a history payload mixing id types
		payload := `[
			{"id": 7, "player1_name": "Alice", "player2_name": "Bob", "winner": "Alice"},
			{"id": "a1b2", "player1_name": "Carol", "player2_name": "Dave", "winner": "Tie"}
		]`

		// When: it is decoded
		var records []GameRecord
		err := json.Unmarshal([]byte(payload), &records)

		// Then: both ids are kept as text
		require.NoError(t, err)
		require.Len(t, records, 2)
		assert.Equal(t, RecordID("7"), records[0].ID)
		assert.Equal(t, RecordID("a1b2"), records[1].ID)
		assert.Equal(t, "Tie", records[1].Winner)
	})

	t.Run("Rejects other id types", func(t *testing.T) {
		var record GameRecord
		err := json.Unmarshal([]byte(`{"id": {"nested": true}}`), &record)

		require.Error(t, err)
	})
}

func TestRound_MarshalChoicesAsNames(t *testing.T) {
	round := Round{Number: 2, Player1Choice: Paper, Player2Choice: Rock, Outcome: OutcomePlayer1, Winner: "Alice"}

	data, err := json.Marshal(round)

	require.NoError(t, err)
	assert.JSONEq(t, `{"round":2,"player1Choice":"Paper","player2Choice":"Rock","outcome":1,"winner":"Alice"}`, string(data))
}
