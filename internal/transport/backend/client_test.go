package backend

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/rockpaperscissors/internal/entity"
)

func finishedMatch(t *testing.T) *entity.Match {
	t.Helper()

	match := entity.NewMatch(entity.EntrySimultaneous)
	require.NoError(t, match.Start("m1", "Alice", "Bob"))

	for _, pair := range [][2]entity.Choice{
		{entity.Rock, entity.Scissors},
		{entity.Paper, entity.Paper},
		{entity.Scissors, entity.Rock},
		{entity.Rock, entity.Paper},
		{entity.Paper, entity.Scissors},
		{entity.Scissors, entity.Scissors},
	} {
		require.NoError(t, match.RecordChoice(entity.Player1, pair[0]))
		require.NoError(t, match.RecordChoice(entity.Player2, pair[1]))
		_, err := match.ResolveRound()
		require.NoError(t, err)
	}

	return match
}

func TestClient_SubmitMatch(t *testing.T) {
	t.Run("Posts the match payload", func(t *testing.T) {
		// Given: a backend recording the request
		var (
			method      string
			contentType string
			payload     map[string]any
		)
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			method = r.Method
			contentType = r.Header.Get("Content-Type")
			assert.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
			w.WriteHeader(http.StatusCreated)
		}))
		defer server.Close()

		client := New(server.URL+"/api/game", server.URL+"/games", time.Second)

		// When: a finished match is submitted
		err := client.SubmitMatch(context.Background(), finishedMatch(t))

		// Then: the body follows the persist match contract
		require.NoError(t, err)
		assert.Equal(t, http.MethodPost, method)
		assert.Equal(t, "application/json", contentType)
		assert.Equal(t, "Alice", payload["player1Name"])
		assert.Equal(t, "Bob", payload["player2Name"])
		assert.Equal(t, entity.TieLabel, payload["winner"])

		rounds, ok := payload["rounds"].([]any)
		require.True(t, ok)
		require.Len(t, rounds, entity.RoundsPerMatch)
		assert.Equal(t, map[string]any{
			"round":         float64(1),
			"player1Choice": "Rock",
			"player2Choice": "Scissors",
			"winner":        "Alice",
		}, rounds[0])
	})

	t.Run("Returns StatusError on server failure", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			http.Error(w, "db down", http.StatusServiceUnavailable)
		}))
		defer server.Close()

		client := New(server.URL, server.URL, time.Second)

		err := client.SubmitMatch(context.Background(), finishedMatch(t))

		var statusErr *StatusError
		require.ErrorAs(t, err, &statusErr)
		assert.Equal(t, http.StatusServiceUnavailable, statusErr.StatusCode)
		assert.True(t, statusErr.Temporary())
		assert.Contains(t, statusErr.Body, "db down")
	})

	t.Run("Client errors are not temporary", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusBadRequest)
		}))
		defer server.Close()

		client := New(server.URL, server.URL, time.Second)

		err := client.SubmitMatch(context.Background(), finishedMatch(t))

		var statusErr *StatusError
		require.ErrorAs(t, err, &statusErr)
		assert.False(t, statusErr.Temporary())
	})

	t.Run("Returns error when the backend is unreachable", func(t *testing.T) {
		server := httptest.NewServer(http.NotFoundHandler())
		url := server.URL
		server.Close()

		client := New(url, url, time.Second)

		err := client.SubmitMatch(context.Background(), finishedMatch(t))

		require.Error(t, err)
		var statusErr *StatusError
		assert.False(t, errors.As(err, &statusErr))
	})
}

func TestClient_ListMatches(t *testing.T) {
	t.Run("Decodes the game list", func(t *testing.T) {
		// Given: a backend with two games
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodGet, r.Method)
			assert.Equal(t, "/games", r.URL.Path)
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`[
				{"id": 1, "player1_name": "Alice", "player2_name": "Bob", "winner": "Alice"},
				{"id": 2, "player1_name": "Carol", "player2_name": "Dave", "winner": "Tie"}
			]`))
		}))
		defer server.Close()

		client := New(server.URL+"/api/game", server.URL+"/games", time.Second)

		// When: the history is listed
		records, err := client.ListMatches(context.Background())

		// Then: the records are returned in order
		require.NoError(t, err)
		assert.Equal(t, []entity.GameRecord{
			{ID: "1", Player1Name: "Alice", Player2Name: "Bob", Winner: "Alice"},
			{ID: "2", Player1Name: "Carol", Player2Name: "Dave", Winner: "Tie"},
		}, records)
	})

	t.Run("Null list is empty", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			_, _ = w.Write([]byte(`null`))
		}))
		defer server.Close()

		records, err := New(server.URL, server.URL, time.Second).ListMatches(context.Background())

		require.NoError(t, err)
		assert.Empty(t, records)
		assert.NotNil(t, records)
	})

	t.Run("Returns error on malformed body", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			_, _ = w.Write([]byte(`{"not": "a list"}`))
		}))
		defer server.Close()

		records, err := New(server.URL, server.URL, time.Second).ListMatches(context.Background())

		require.Error(t, err)
		assert.Nil(t, records)
	})

	t.Run("Times out on a slow backend", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			select {
			case <-r.Context().Done():
			case <-time.After(time.Second):
			}
		}))
		defer server.Close()

		_, err := New(server.URL, server.URL, 50*time.Millisecond).ListMatches(context.Background())

		require.Error(t, err)
	})
}
