package entity

import (
	"fmt"
	"strings"

	"github.com/rocketscienceinc/rockpaperscissors/internal/apperror"
)

type Choice int

const (
	NoChoice Choice = iota
	Rock
	Paper
	Scissors
)

// Choices - every playable choice, in the order they are shown to players.
var Choices = []Choice{Rock, Paper, Scissors}

var choiceNames = map[Choice]string{
	Rock:     "Rock",
	Paper:    "Paper",
	Scissors: "Scissors",
}

func (that Choice) String() string {
	return choiceNames[that]
}

func (that Choice) IsValid() bool {
	return that >= Rock && that <= Scissors
}

// ParseChoice - parses a choice name, ignoring case and surrounding spaces.
func ParseChoice(value string) (Choice, error) {
	for choice, name := range choiceNames {
		if strings.EqualFold(strings.TrimSpace(value), name) {
			return choice, nil
		}
	}

	return NoChoice, fmt.Errorf("%w: %q", apperror.ErrInvalidChoice, value)
}

func (that Choice) MarshalText() ([]byte, error) {
	return []byte(that.String()), nil
}

func (that *Choice) UnmarshalText(text []byte) error {
	if len(text) == 0 {
		*that = NoChoice
		return nil
	}

	choice, err := ParseChoice(string(text))
	if err != nil {
		return err
	}

	*that = choice

	return nil
}

type Slot int

const (
	Player1 Slot = iota + 1
	Player2
)

// ParseSlot - parses a player slot from its form value ("1" or "2").
func ParseSlot(value string) (Slot, error) {
	switch strings.TrimSpace(value) {
	case "1":
		return Player1, nil
	case "2":
		return Player2, nil
	default:
		return 0, fmt.Errorf("%w: %q", apperror.ErrInvalidPlayer, value)
	}
}

type Outcome int

const (
	OutcomeTie Outcome = iota
	OutcomePlayer1
	OutcomePlayer2
)

// outcomeTable is indexed by [player1 choice][player2 choice].
// Rock beats Scissors, Scissors beats Paper, Paper beats Rock.
var outcomeTable = [4][4]Outcome{
	Rock: {
		Rock:     OutcomeTie,
		Paper:    OutcomePlayer2,
		Scissors: OutcomePlayer1,
	},
	Paper: {
		Rock:     OutcomePlayer1,
		Paper:    OutcomeTie,
		Scissors: OutcomePlayer2,
	},
	Scissors: {
		Rock:     OutcomePlayer2,
		Paper:    OutcomePlayer1,
		Scissors: OutcomeTie,
	},
}

// Play - returns the outcome of a single exchange. Both choices must be valid.
func Play(player1, player2 Choice) Outcome {
	return outcomeTable[player1][player2]
}
