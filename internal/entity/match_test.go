package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/rockpaperscissors/internal/apperror"
)

func startedMatch(t *testing.T, entryMode string) *Match {
	t.Helper()

	match := NewMatch(entryMode)
	require.NoError(t, match.Start("m1", "Alice", "Bob"))

	return match
}

func playRound(t *testing.T, match *Match, player1, player2 Choice) Round {
	t.Helper()

	require.NoError(t, match.RecordChoice(Player1, player1))
	require.NoError(t, match.RecordChoice(Player2, player2))

	round, err := match.ResolveRound()
	require.NoError(t, err)

	return round
}

func TestPlay(t *testing.T) {
	t.Run("Follows the beats relation for every pair", func(t *testing.T) {
		// Given: every pair of choices and its expected outcome
		expected := map[[2]Choice]Outcome{
			{Rock, Rock}:         OutcomeTie,
			{Rock, Paper}:        OutcomePlayer2,
			{Rock, Scissors}:     OutcomePlayer1,
			{Paper, Rock}:        OutcomePlayer1,
			{Paper, Paper}:       OutcomeTie,
			{Paper, Scissors}:    OutcomePlayer2,
			{Scissors, Rock}:     OutcomePlayer2,
			{Scissors, Paper}:    OutcomePlayer1,
			{Scissors, Scissors}: OutcomeTie,
		}

		for pair, outcome := range expected {
			// When: the pair is played
			actual := Play(pair[0], pair[1])

			// Then: the outcome matches the relation
			assert.Equal(t, outcome, actual, "%s vs %s", pair[0], pair[1])
		}
	})

	t.Run("Swapping the choices swaps the winner", func(t *testing.T) {
		for _, a := range Choices {
			for _, b := range Choices {
				forward, backward := Play(a, b), Play(b, a)

				switch forward {
				case OutcomeTie:
					assert.Equal(t, OutcomeTie, backward)
				case OutcomePlayer1:
					assert.Equal(t, OutcomePlayer2, backward)
				case OutcomePlayer2:
					assert.Equal(t, OutcomePlayer1, backward)
				}
			}
		}
	})
}

func TestParseChoice(t *testing.T) {
	t.Run("Parses names ignoring case", func(t *testing.T) {
		choice, err := ParseChoice(" scissors ")

		require.NoError(t, err)
		assert.Equal(t, Scissors, choice)
	})

	t.Run("Rejects unknown names", func(t *testing.T) {
		choice, err := ParseChoice("lizard")

		require.ErrorIs(t, err, apperror.ErrInvalidChoice)
		assert.Equal(t, NoChoice, choice)
	})
}

func TestMatch_Start(t *testing.T) {
	t.Run("Starts round one with trimmed names", func(t *testing.T) {
		// Given: a new match
		match := NewMatch(EntrySimultaneous)

		// When: both names are supplied
		err := match.Start("m1", "  Alice ", "Bob")

		// Then: the match is in progress at round one
		require.NoError(t, err)
		assert.True(t, match.IsInProgress())
		assert.Equal(t, 1, match.CurrentRound)
		assert.Equal(t, "Alice", match.Player1Name)
		assert.Equal(t, "m1", match.ID)
	})

	t.Run("Empty name keeps the match awaiting names", func(t *testing.T) {
		// Given: a new match
		match := NewMatch(EntrySimultaneous)

		// When: player 2 name is blank
		err := match.Start("m1", "Alice", "   ")

		// Then: the match does not start
		require.ErrorIs(t, err, apperror.ErrEmptyPlayerName)
		assert.True(t, match.IsAwaitingNames())
		assert.Empty(t, match.Player1Name)
		assert.Zero(t, match.CurrentRound)
	})

	t.Run("Cannot start twice", func(t *testing.T) {
		match := startedMatch(t, EntrySimultaneous)

		err := match.Start("m2", "Carol", "Dave")

		require.ErrorIs(t, err, apperror.ErrMatchAlreadyStarted)
		assert.Equal(t, "Alice", match.Player1Name)
	})

	t.Run("Finished match must be reset before starting again", func(t *testing.T) {
		// Given: a finished match
		match := startedMatch(t, EntrySimultaneous)
		for range RoundsPerMatch {
			playRound(t, match, Paper, Rock)
		}
		require.True(t, match.IsFinished())

		// When: new names are submitted
		err := match.Start("m2", "Carol", "Dave")

		// Then: the game over error is returned and the result is kept
		require.ErrorIs(t, err, apperror.ErrMatchFinished)
		assert.Equal(t, "Alice", match.Winner)
		assert.Len(t, match.Rounds, RoundsPerMatch)
	})
}

func TestMatch_RecordChoice(t *testing.T) {
	t.Run("Rejects choices before the match starts", func(t *testing.T) {
		match := NewMatch(EntrySimultaneous)

		err := match.RecordChoice(Player1, Rock)

		require.ErrorIs(t, err, apperror.ErrMatchNotStarted)
	})

	t.Run("Rejects NoChoice", func(t *testing.T) {
		match := startedMatch(t, EntrySimultaneous)

		err := match.RecordChoice(Player1, NoChoice)

		require.ErrorIs(t, err, apperror.ErrInvalidChoice)
	})

	t.Run("Rejects an unknown slot", func(t *testing.T) {
		match := startedMatch(t, EntrySimultaneous)

		err := match.RecordChoice(Slot(3), Rock)

		require.ErrorIs(t, err, apperror.ErrInvalidPlayer)
	})

	t.Run("Simultaneous mode lets either player choose first and change", func(t *testing.T) {
		// Given: a simultaneous match
		match := startedMatch(t, EntrySimultaneous)

		// When: player 2 chooses first and player 1 changes their mind
		require.NoError(t, match.RecordChoice(Player2, Paper))
		require.NoError(t, match.RecordChoice(Player1, Rock))
		require.NoError(t, match.RecordChoice(Player1, Scissors))

		// Then: the latest choices are pending
		assert.Equal(t, Scissors, match.PendingChoice(Player1))
		assert.Equal(t, Paper, match.PendingChoice(Player2))
		assert.True(t, match.ReadyToResolve())
	})

	t.Run("Alternating mode requires player 1 first", func(t *testing.T) {
		// Given: an alternating match
		match := startedMatch(t, EntryAlternating)

		// When: player 2 tries to choose first
		err := match.RecordChoice(Player2, Rock)

		// Then: it is rejected and nothing is recorded
		require.ErrorIs(t, err, apperror.ErrNotYourTurn)
		assert.Equal(t, NoChoice, match.PendingChoice(Player2))
		assert.Equal(t, Player1, match.Turn())
	})

	t.Run("Alternating mode passes the turn to player 2", func(t *testing.T) {
		match := startedMatch(t, EntryAlternating)

		require.NoError(t, match.RecordChoice(Player1, Rock))

		assert.Equal(t, Player2, match.Turn())
		require.ErrorIs(t, match.RecordChoice(Player1, Paper), apperror.ErrNotYourTurn)
		require.NoError(t, match.RecordChoice(Player2, Paper))
	})
}

func TestMatch_ResolveRound(t *testing.T) {
	t.Run("Requires both choices", func(t *testing.T) {
		match := startedMatch(t, EntrySimultaneous)
		require.NoError(t, match.RecordChoice(Player1, Rock))

		_, err := match.ResolveRound()

		require.ErrorIs(t, err, apperror.ErrChoicesMissing)
		assert.Empty(t, match.Rounds)
		assert.Equal(t, 1, match.CurrentRound)
	})

	t.Run("Appends the round and advances", func(t *testing.T) {
		// Given: a started match
		match := startedMatch(t, EntrySimultaneous)

		// When: Rock meets Scissors
		round := playRound(t, match, Rock, Scissors)

		// Then: Alice wins round one and the choices are cleared
		expected := Round{
			Number:        1,
			Player1Choice: Rock,
			Player2Choice: Scissors,
			Outcome:       OutcomePlayer1,
			Winner:        "Alice",
		}
		assert.Equal(t, expected, round)
		assert.Equal(t, []Round{expected}, match.Rounds)
		assert.Equal(t, 2, match.CurrentRound)
		assert.Equal(t, NoChoice, match.Player1Choice)
		assert.Equal(t, NoChoice, match.Player2Choice)
	})

	t.Run("Equal choices tie", func(t *testing.T) {
		match := startedMatch(t, EntrySimultaneous)

		round := playRound(t, match, Paper, Paper)

		assert.True(t, round.IsTie())
		assert.Equal(t, TieLabel, round.Winner)
	})

	t.Run("Finishes after six rounds", func(t *testing.T) {
		// Given: a started match
		match := startedMatch(t, EntrySimultaneous)

		// When: six rounds are played
		for range RoundsPerMatch {
			playRound(t, match, Paper, Rock)
		}

		// Then: the match is finished with exactly six rounds
		assert.True(t, match.IsFinished())
		assert.Len(t, match.Rounds, RoundsPerMatch)
		assert.Equal(t, RoundsPerMatch, match.CurrentRound)
		assert.Equal(t, "Alice", match.Winner)
		assert.Equal(t, OutcomePlayer1, match.Result)

		// And: no more choices are accepted
		require.ErrorIs(t, match.RecordChoice(Player1, Rock), apperror.ErrMatchFinished)
	})
}

func TestMatch_Finalize(t *testing.T) {
	t.Run("Two-two-two scenario is a tie", func(t *testing.T) {
		// Given: Alice and Bob
		match := startedMatch(t, EntrySimultaneous)

		// When: they win two rounds each and tie twice
		rounds := [][2]Choice{
			{Rock, Scissors},
			{Paper, Paper},
			{Scissors, Rock},
			{Rock, Paper},
			{Paper, Scissors},
			{Scissors, Scissors},
		}
		winners := []string{"Alice", TieLabel, "Bob", "Bob", "Alice", TieLabel}

		for i, pair := range rounds {
			round := playRound(t, match, pair[0], pair[1])
			assert.Equal(t, winners[i], round.Winner)
		}

		// Then: the match winner is the tie label, not player 2
		player1Wins, player2Wins, ties := match.Tally()
		assert.Equal(t, 2, player1Wins)
		assert.Equal(t, 2, player2Wins)
		assert.Equal(t, 2, ties)
		assert.True(t, match.IsFinished())
		assert.Equal(t, TieLabel, match.Winner)
		assert.Equal(t, OutcomeTie, match.Result)
	})

	t.Run("Player with more wins takes the match", func(t *testing.T) {
		match := startedMatch(t, EntryAlternating)

		for _, pair := range [][2]Choice{
			{Rock, Paper}, {Rock, Paper}, {Rock, Rock},
			{Rock, Rock}, {Rock, Rock}, {Paper, Rock},
		} {
			playRound(t, match, pair[0], pair[1])
		}

		player1Wins, player2Wins, ties := match.Tally()
		assert.Equal(t, RoundsPerMatch, player1Wins+player2Wins+ties)
		assert.Equal(t, "Bob", match.Winner)
	})

	t.Run("Same names still tally by slot", func(t *testing.T) {
		match := NewMatch(EntrySimultaneous)
		require.NoError(t, match.Start("m1", "Sam", "Sam"))

		for range RoundsPerMatch {
			playRound(t, match, Scissors, Rock)
		}

		assert.Equal(t, OutcomePlayer2, match.Result)
	})
}

func TestMatch_Reset(t *testing.T) {
	// Given: a finished alternating match
	match := startedMatch(t, EntryAlternating)
	for range RoundsPerMatch {
		playRound(t, match, Rock, Rock)
	}
	require.True(t, match.IsFinished())

	// When: the match is reset
	match.Reset()

	// Then: it awaits names with no rounds, and keeps its entry mode
	assert.Equal(t, NewMatch(EntryAlternating), match)
	assert.True(t, match.IsAwaitingNames())
	assert.Empty(t, match.Rounds)
	assert.Empty(t, match.Player1Name)
	assert.Empty(t, match.Player2Name)
}

func TestMatch_ConfirmInProgress(t *testing.T) {
	t.Run("Returns error for unknown status", func(t *testing.T) {
		match := &Match{Status: "unknown"}

		err := match.ConfirmInProgress()

		require.ErrorIs(t, err, ErrUnknownMatchStatus)
	})
}

func TestNewMatch_DefaultsToSimultaneous(t *testing.T) {
	match := NewMatch("whatever")

	assert.Equal(t, EntrySimultaneous, match.EntryMode)
	assert.False(t, match.IsAlternating())
}
