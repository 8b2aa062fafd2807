package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/rocketscienceinc/rockpaperscissors/internal/entity"
)

type historyDep interface {
	ListMatches(ctx context.Context) ([]entity.GameRecord, error)
}

type HistoryUseCase struct {
	logger  *slog.Logger
	history historyDep
}

func NewHistoryUseCase(logger *slog.Logger, history historyDep) *HistoryUseCase {
	return &HistoryUseCase{
		logger:  logger.With("component", "history"),
		history: history,
	}
}

// List - returns the completed games in backend order.
func (that *HistoryUseCase) List(ctx context.Context) ([]entity.GameRecord, error) {
	records, err := that.history.ListMatches(ctx)
	if err != nil {
		that.logger.Error("failed to load game history", "error", err)
		return nil, fmt.Errorf("failed to load game history: %w", err)
	}

	that.logger.Debug("game history loaded", "games", len(records))

	return records, nil
}
