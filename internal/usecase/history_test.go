package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/rockpaperscissors/internal/entity"
	mockedUseCase "github.com/rocketscienceinc/rockpaperscissors/mocks/usecase"
	"github.com/rocketscienceinc/rockpaperscissors/testing/suite"
)

func TestHistoryUseCase_List(t *testing.T) {
	ctx := context.Background()

	t.Run("Returns the backend records", func(t *testing.T) {
		// Given: a backend with one game
		mockHistory := mockedUseCase.NewMockhistoryDep(t)
		useCaseInstance := NewHistoryUseCase(suite.NewLogger(), mockHistory)

		records := []entity.GameRecord{{ID: "1", Player1Name: "Alice", Player2Name: "Bob", Winner: "Bob"}}
		mockHistory.EXPECT().ListMatches(ctx).Return(records, nil).Once()

		// When: the history is listed
		actual, err := useCaseInstance.List(ctx)

		// Then: the same records are returned
		require.NoError(t, err)
		assert.Equal(t, records, actual)
	})

	t.Run("Surfaces backend failures", func(t *testing.T) {
		mockHistory := mockedUseCase.NewMockhistoryDep(t)
		useCaseInstance := NewHistoryUseCase(suite.NewLogger(), mockHistory)

		mockHistory.EXPECT().ListMatches(ctx).Return(([]entity.GameRecord)(nil), errBackendDown).Once()

		actual, err := useCaseInstance.List(ctx)

		require.ErrorIs(t, err, errBackendDown)
		assert.Nil(t, actual)
	})
}
