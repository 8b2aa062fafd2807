package repository

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/rockpaperscissors/internal/entity"
	"github.com/rocketscienceinc/rockpaperscissors/testing/suite"
)

func TestMatchRepository_CreateOrUpdate(t *testing.T) {
	ctx, st := suite.New(t)

	matchRepo := NewMatchRepository(st.Storage, time.Hour)

	// Given: a started match
	match := entity.NewMatch(entity.EntrySimultaneous)
	require.NoError(t, match.Start("m1", "Alice", "Bob"))

	// When: CreateOrUpdate is called
	err := matchRepo.CreateOrUpdate(ctx, "session-1", match)

	// Then: no error should be returned, and the key expires
	require.NoError(t, err)

	ttl, err := st.Storage.TTL(ctx, "match:session-1").Result()
	require.NoError(t, err)
	assert.Positive(t, ttl)
}

func TestMatchRepository_GetBySession(t *testing.T) {
	t.Run("GetBySession_Success", func(t *testing.T) {
		ctx, st := suite.New(t)

		matchRepo := NewMatchRepository(st.Storage, time.Hour)

		// Given: a match with one resolved round and a pending choice
		match := entity.NewMatch(entity.EntryAlternating)
		require.NoError(t, match.Start("m1", "Alice", "Bob"))
		require.NoError(t, match.RecordChoice(entity.Player1, entity.Rock))
		require.NoError(t, match.RecordChoice(entity.Player2, entity.Scissors))
		_, err := match.ResolveRound()
		require.NoError(t, err)
		require.NoError(t, match.RecordChoice(entity.Player1, entity.Paper))

		require.NoError(t, matchRepo.CreateOrUpdate(ctx, "session-1", match))

		// When: GetBySession is called
		retrieved, err := matchRepo.GetBySession(ctx, "session-1")

		// Then: the retrieved match equals the saved one
		require.NoError(t, err)
		assert.Equal(t, match, retrieved)
	})

	t.Run("GetBySession_NotFound", func(t *testing.T) {
		ctx, st := suite.New(t)

		matchRepo := NewMatchRepository(st.Storage, time.Hour)

		// When: GetBySession is called with an unknown session
		retrieved, err := matchRepo.GetBySession(ctx, "missing")

		// Then: an ErrMatchNotFound error should be returned
		require.ErrorIs(t, err, ErrMatchNotFound)
		assert.Nil(t, retrieved)
	})
}

func TestMatchRepository_DeleteBySession(t *testing.T) {
	t.Run("DeleteBySession_Success", func(t *testing.T) {
		ctx, st := suite.New(t)

		matchRepo := NewMatchRepository(st.Storage, time.Hour)

		// Given: a stored match
		require.NoError(t, matchRepo.CreateOrUpdate(ctx, "session-1", entity.NewMatch(entity.EntrySimultaneous)))

		// When: DeleteBySession is called
		err := matchRepo.DeleteBySession(ctx, "session-1")

		// Then: the match is gone
		require.NoError(t, err)

		_, err = matchRepo.GetBySession(ctx, "session-1")
		require.ErrorIs(t, err, ErrMatchNotFound)
	})

	t.Run("DeleteBySession_NotFound", func(t *testing.T) {
		ctx, st := suite.New(t)

		matchRepo := NewMatchRepository(st.Storage, time.Hour)

		err := matchRepo.DeleteBySession(ctx, "missing")

		require.ErrorIs(t, err, ErrMatchNotFound)
	})
}
