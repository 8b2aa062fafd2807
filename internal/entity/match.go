package entity

import (
	"errors"
	"fmt"
	"strings"

	"github.com/rocketscienceinc/rockpaperscissors/internal/apperror"
)

const (
	StatusAwaitingNames = "awaiting_names"
	StatusInProgress    = "in_progress"
	StatusFinished      = "finished"

	RoundsPerMatch = 6

	TieLabel = "Tie"
)

const (
	EntrySimultaneous = "simultaneous"
	EntryAlternating  = "alternating"
)

var ErrUnknownMatchStatus = errors.New("unknown match status")

type Round struct {
	Number        int     `json:"round"`
	Player1Choice Choice  `json:"player1Choice"`
	Player2Choice Choice  `json:"player2Choice"`
	Outcome       Outcome `json:"outcome"`
	Winner        string  `json:"winner"`
}

func (that Round) IsTie() bool {
	return that.Outcome == OutcomeTie
}

type Match struct {
	ID          string `json:"id,omitempty"`
	Player1Name string `json:"player1_name"`
	Player2Name string `json:"player2_name"`
	Status      string `json:"status"`
	EntryMode   string `json:"entry_mode"`

	CurrentRound  int    `json:"current_round"`
	Player1Choice Choice `json:"player1_choice,omitempty"`
	Player2Choice Choice `json:"player2_choice,omitempty"`

	Rounds []Round `json:"rounds"`
	Result Outcome `json:"result"`
	Winner string  `json:"winner,omitempty"`
}

func NewMatch(entryMode string) *Match {
	if entryMode != EntryAlternating {
		entryMode = EntrySimultaneous
	}

	return &Match{
		Status:    StatusAwaitingNames,
		EntryMode: entryMode,
		Rounds:    []Round{},
	}
}

// Start - moves a match awaiting names into round 1. A finished match has to be reset first.
func (that *Match) Start(id, player1Name, player2Name string) error {
	if that.IsFinished() {
		return apperror.ErrMatchFinished
	}

	if !that.IsAwaitingNames() {
		return apperror.ErrMatchAlreadyStarted
	}

	player1Name = strings.TrimSpace(player1Name)
	player2Name = strings.TrimSpace(player2Name)

	if player1Name == "" || player2Name == "" {
		return apperror.ErrEmptyPlayerName
	}

	that.ID = id
	that.Player1Name = player1Name
	that.Player2Name = player2Name
	that.Status = StatusInProgress
	that.CurrentRound = 1
	that.Rounds = []Round{}

	return nil
}

// RecordChoice - sets the pending choice of a player for the current round.
func (that *Match) RecordChoice(slot Slot, choice Choice) error {
	if err := that.ConfirmInProgress(); err != nil {
		return err
	}

	if !choice.IsValid() {
		return fmt.Errorf("%w: %d", apperror.ErrInvalidChoice, choice)
	}

	if that.IsAlternating() && slot != that.Turn() {
		return apperror.ErrNotYourTurn
	}

	switch slot {
	case Player1:
		that.Player1Choice = choice
	case Player2:
		that.Player2Choice = choice
	default:
		return fmt.Errorf("%w: %d", apperror.ErrInvalidPlayer, slot)
	}

	return nil
}

// ReadyToResolve - reports whether both players have chosen in the current round.
func (that *Match) ReadyToResolve() bool {
	return that.IsInProgress() && that.Player1Choice.IsValid() && that.Player2Choice.IsValid()
}

// ResolveRound - plays the pending choices, appends the round and advances the match.
// After the last round the match is finalized.
func (that *Match) ResolveRound() (Round, error) {
	if err := that.ConfirmInProgress(); err != nil {
		return Round{}, err
	}

	if !that.ReadyToResolve() {
		return Round{}, apperror.ErrChoicesMissing
	}

	outcome := Play(that.Player1Choice, that.Player2Choice)
	round := Round{
		Number:        that.CurrentRound,
		Player1Choice: that.Player1Choice,
		Player2Choice: that.Player2Choice,
		Outcome:       outcome,
		Winner:        that.label(outcome),
	}

	that.Rounds = append(that.Rounds, round)
	that.Player1Choice = NoChoice
	that.Player2Choice = NoChoice

	if that.CurrentRound == RoundsPerMatch {
		that.Finalize()
		return round, nil
	}

	that.CurrentRound++

	return round, nil
}

// Finalize - computes the match winner. Equal round wins make the match a tie.
func (that *Match) Finalize() {
	player1Wins, player2Wins, _ := that.Tally()

	switch {
	case player1Wins > player2Wins:
		that.Result = OutcomePlayer1
	case player2Wins > player1Wins:
		that.Result = OutcomePlayer2
	default:
		that.Result = OutcomeTie
	}

	that.Winner = that.label(that.Result)
	that.Status = StatusFinished
}

// Reset - discards the players, the rounds and the pending choices.
func (that *Match) Reset() {
	*that = *NewMatch(that.EntryMode)
}

// Tally - counts round wins of each player and the ties.
func (that *Match) Tally() (int, int, int) {
	var player1Wins, player2Wins, ties int

	for _, round := range that.Rounds {
		switch round.Outcome {
		case OutcomePlayer1:
			player1Wins++
		case OutcomePlayer2:
			player2Wins++
		case OutcomeTie:
			ties++
		}
	}

	return player1Wins, player2Wins, ties
}

// Turn - returns the slot expected to choose next in alternating mode.
func (that *Match) Turn() Slot {
	if that.Player1Choice == NoChoice {
		return Player1
	}

	return Player2
}

func (that *Match) PendingChoice(slot Slot) Choice {
	if slot == Player1 {
		return that.Player1Choice
	}

	return that.Player2Choice
}

func (that *Match) PlayerName(slot Slot) string {
	if slot == Player1 {
		return that.Player1Name
	}

	return that.Player2Name
}

func (that *Match) IsAlternating() bool {
	return that.EntryMode == EntryAlternating
}

func (that *Match) IsAwaitingNames() bool {
	return that.Status == StatusAwaitingNames
}

func (that *Match) IsInProgress() bool {
	return that.Status == StatusInProgress
}

func (that *Match) IsFinished() bool {
	return that.Status == StatusFinished
}

func (that *Match) ConfirmInProgress() error {
	switch {
	case that.IsAwaitingNames():
		return apperror.ErrMatchNotStarted
	case that.IsFinished():
		return apperror.ErrMatchFinished
	case that.IsInProgress():
		return nil
	default:
		return fmt.Errorf("%w: %s", ErrUnknownMatchStatus, that.Status)
	}
}

func (that *Match) label(outcome Outcome) string {
	switch outcome {
	case OutcomePlayer1:
		return that.Player1Name
	case OutcomePlayer2:
		return that.Player2Name
	default:
		return TieLabel
	}
}
