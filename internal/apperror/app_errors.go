package apperror

import "errors"

var (
	ErrEmptyPlayerName     = errors.New("player name is required")
	ErrMatchNotStarted     = errors.New("match is not started")
	ErrMatchAlreadyStarted = errors.New("match is already started")
	ErrMatchFinished       = errors.New("match is already finished")
	ErrNotYourTurn         = errors.New("it's not your turn")
	ErrInvalidChoice       = errors.New("invalid choice")
	ErrInvalidPlayer       = errors.New("invalid player slot")
	ErrChoicesMissing      = errors.New("both players must choose before the round is played")
)
