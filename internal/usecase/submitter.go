package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/cenkalti/backoff/v4"

	"github.com/rocketscienceinc/rockpaperscissors/internal/entity"
)

type backendDep interface {
	SubmitMatch(ctx context.Context, match *entity.Match) error
}

type submissionRepoDep interface {
	Create(ctx context.Context, submission *entity.Submission) (bool, error)
	Save(ctx context.Context, submission *entity.Submission) error
	GetByMatchID(ctx context.Context, matchID string) (*entity.Submission, error)
}

var ErrAlreadySubmitted = errors.New("match already submitted")

// temporary is implemented by backend errors that know whether a retry can help.
type temporary interface {
	Temporary() bool
}

// Submitter sends finished matches to the backend in the background and records
// the outcome so that it can be shown to the players later.
type Submitter struct {
	ctx    context.Context
	logger *slog.Logger

	backend        backendDep
	submissionRepo submissionRepoDep

	attempts uint64
	interval time.Duration

	wg sync.WaitGroup
}

// NewSubmitter - ctx bounds the lifetime of all background submissions.
func NewSubmitter(ctx context.Context, logger *slog.Logger, backend backendDep, submissionRepo submissionRepoDep, attempts uint64, interval time.Duration) *Submitter {
	if attempts == 0 {
		attempts = 1
	}

	return &Submitter{
		ctx:    ctx,
		logger: logger.With("component", "submitter"),

		backend:        backend,
		submissionRepo: submissionRepo,

		attempts: attempts,
		interval: interval,
	}
}

// Submit - records a pending submission and sends the match in the background.
// The returned channel receives the final outcome once and is then closed.
// A match that already has a submission is not sent again, ErrAlreadySubmitted is returned instead.
func (that *Submitter) Submit(ctx context.Context, match *entity.Match) (<-chan *entity.Submission, error) {
	submission := &entity.Submission{
		MatchID:   match.ID,
		Status:    entity.SubmissionPending,
		UpdatedAt: time.Now().UTC(),
	}

	created, err := that.submissionRepo.Create(ctx, submission)
	if err != nil {
		return nil, fmt.Errorf("failed to save pending submission: %w", err)
	}

	if !created {
		return nil, fmt.Errorf("%w: %s", ErrAlreadySubmitted, match.ID)
	}

	snapshot := *match
	done := make(chan *entity.Submission, 1)

	that.wg.Add(1)
	go func() {
		defer that.wg.Done()
		defer close(done)

		done <- that.send(&snapshot)
	}()

	return done, nil
}

// Status - returns the last known outcome of the submission of a match.
func (that *Submitter) Status(ctx context.Context, matchID string) (*entity.Submission, error) {
	submission, err := that.submissionRepo.GetByMatchID(ctx, matchID)
	if err != nil {
		return nil, fmt.Errorf("failed to get submission: %w", err)
	}

	return submission, nil
}

// Wait - blocks until every background submission has finished.
func (that *Submitter) Wait() {
	that.wg.Wait()
}

func (that *Submitter) send(match *entity.Match) *entity.Submission {
	log := that.logger.With("method", "send", "match_id", match.ID)

	submission := &entity.Submission{MatchID: match.ID}

	operation := func() error {
		submission.Attempts++

		err := that.backend.SubmitMatch(that.ctx, match)
		if err == nil {
			return nil
		}

		log.Warn("submit attempt failed", "attempt", submission.Attempts, "error", err)

		var temp temporary
		if errors.As(err, &temp) && !temp.Temporary() {
			return backoff.Permanent(err)
		}

		return err
	}

	err := backoff.Retry(operation, backoff.WithContext(backoff.WithMaxRetries(that.newBackOff(), that.attempts-1), that.ctx))

	submission.UpdatedAt = time.Now().UTC()
	if err != nil {
		submission.Status = entity.SubmissionFailed
		submission.Error = err.Error()
		log.Error("could not save match", "attempts", submission.Attempts, "error", err)
	} else {
		submission.Status = entity.SubmissionSaved
		log.Info("match saved", "attempts", submission.Attempts)
	}

	// the outcome is stored even while shutting down.
	ctx, cancel := context.WithTimeout(context.WithoutCancel(that.ctx), 5*time.Second)
	defer cancel()

	if err = that.submissionRepo.Save(ctx, submission); err != nil {
		log.Error("failed to save submission outcome", "error", err)
	}

	return submission
}

func (that *Submitter) newBackOff() backoff.BackOff {
	policy := backoff.NewExponentialBackOff()
	policy.InitialInterval = that.interval
	policy.MaxElapsedTime = 0

	return policy
}
