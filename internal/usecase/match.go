package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/rocketscienceinc/rockpaperscissors/internal/entity"
	"github.com/rocketscienceinc/rockpaperscissors/internal/pkg"
	"github.com/rocketscienceinc/rockpaperscissors/internal/repository"
)

type matchRepoDep interface {
	CreateOrUpdate(ctx context.Context, sessionID string, match *entity.Match) error
	GetBySession(ctx context.Context, sessionID string) (*entity.Match, error)
	DeleteBySession(ctx context.Context, sessionID string) error
}

type submitterDep interface {
	Submit(ctx context.Context, match *entity.Match) (<-chan *entity.Submission, error)
	Status(ctx context.Context, matchID string) (*entity.Submission, error)
}

// MatchUseCase drives the match of each browser session: every operation loads the
// session's match, applies one transition and stores the result.
type MatchUseCase struct {
	logger *slog.Logger

	matchRepo matchRepoDep
	submitter submitterDep
	entryMode string
}

func NewMatchUseCase(logger *slog.Logger, matchRepo matchRepoDep, submitter submitterDep, entryMode string) *MatchUseCase {
	return &MatchUseCase{
		logger: logger.With("component", "match"),

		matchRepo: matchRepo,
		submitter: submitter,
		entryMode: entryMode,
	}
}

// Current - returns the session's match, or a fresh one awaiting names.
func (that *MatchUseCase) Current(ctx context.Context, sessionID string) (*entity.Match, error) {
	match, err := that.matchRepo.GetBySession(ctx, sessionID)
	if errors.Is(err, repository.ErrMatchNotFound) {
		return entity.NewMatch(that.entryMode), nil
	}

	if err != nil {
		return nil, fmt.Errorf("failed to get match: %w", err)
	}

	return match, nil
}

func (that *MatchUseCase) Start(ctx context.Context, sessionID, player1Name, player2Name string) (*entity.Match, error) {
	match, err := that.Current(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	if err = match.Start(pkg.GenerateMatchID(), player1Name, player2Name); err != nil {
		return match, fmt.Errorf("failed to start match: %w", err)
	}

	if err = that.save(ctx, sessionID, match); err != nil {
		return nil, err
	}

	that.logger.Debug("match started", "match_id", match.ID)

	return match, nil
}

// Choose - records a player's choice and plays the round as soon as both players have chosen.
// The match is submitted once, when its last round is played.
func (that *MatchUseCase) Choose(ctx context.Context, sessionID string, slot entity.Slot, choice entity.Choice) (*entity.Match, error) {
	log := that.logger.With("method", "Choose")

	match, err := that.Current(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	if err = match.RecordChoice(slot, choice); err != nil {
		return match, fmt.Errorf("failed to record choice: %w", err)
	}

	if match.ReadyToResolve() {
		round, resolveErr := match.ResolveRound()
		if resolveErr != nil {
			return nil, fmt.Errorf("failed to resolve round: %w", resolveErr)
		}

		log.Debug("round played", "match_id", match.ID, "round", round.Number, "winner", round.Winner)
	}

	if err = that.save(ctx, sessionID, match); err != nil {
		return nil, err
	}

	if match.IsFinished() {
		_, err = that.submitter.Submit(ctx, match)
		switch {
		case errors.Is(err, ErrAlreadySubmitted):
			log.Debug("match already submitted", "match_id", match.ID)
		case err != nil:
			log.Error("failed to submit match", "match_id", match.ID, "error", err)
		}
	}

	return match, nil
}

// Restart - resets the session's match and drops it from the store.
func (that *MatchUseCase) Restart(ctx context.Context, sessionID string) (*entity.Match, error) {
	match, err := that.Current(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	match.Reset()

	err = that.matchRepo.DeleteBySession(ctx, sessionID)
	if err != nil && !errors.Is(err, repository.ErrMatchNotFound) {
		return nil, fmt.Errorf("failed to delete match: %w", err)
	}

	return match, nil
}

// Submission - returns the outcome of sending a finished match, nil when it is unknown.
func (that *MatchUseCase) Submission(ctx context.Context, match *entity.Match) *entity.Submission {
	if !match.IsFinished() {
		return nil
	}

	submission, err := that.submitter.Status(ctx, match.ID)
	if err != nil {
		if !errors.Is(err, repository.ErrSubmissionNotFound) {
			that.logger.Error("failed to get submission", "match_id", match.ID, "error", err)
		}

		return nil
	}

	return submission
}

func (that *MatchUseCase) save(ctx context.Context, sessionID string, match *entity.Match) error {
	if err := that.matchRepo.CreateOrUpdate(ctx, sessionID, match); err != nil {
		return fmt.Errorf("failed to save match: %w", err)
	}

	return nil
}
