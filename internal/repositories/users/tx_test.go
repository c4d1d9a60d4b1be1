package users

import (
	"context"
	"errors"
	"testing"

	"github.com/huellitas-app/huellitas/internal/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInTx_CommitsOnSuccess(t *testing.T) {
	db := setupDB(t)
	ctx := context.Background()

	err := NewSQLiteTx(db).InTx(ctx, func(ctx context.Context, repo Repository) error {
		_, err := repo.Create(ctx, ana())
		return err
	})
	require.NoError(t, err)

	got, err := NewSQLiteRepository(db).GetByUsername(ctx, "ana_99")
	require.NoError(t, err)
	assert.Equal(t, "Ana", got.FirstName)
}

func TestInTx_RollbackOnError(t *testing.T) {
	db := setupDB(t)
	ctx := context.Background()

	boom := errors.New("boom")
	err := NewSQLiteTx(db).InTx(ctx, func(ctx context.Context, repo Repository) error {
		if _, err := repo.Create(ctx, ana()); err != nil {
			return err
		}
		return boom
	})
	assert.ErrorIs(t, err, boom)

	// the insert must not have survived
	_, err = NewSQLiteRepository(db).GetByUsername(ctx, "ana_99")
	assert.ErrorIs(t, err, common.ErrNotFound)
}

func TestInTx_ReadThenWriteIsAtomic(t *testing.T) {
	db := setupDB(t)
	ctx := context.Background()

	_, err := NewSQLiteRepository(db).Create(ctx, ana())
	require.NoError(t, err)

	err = NewSQLiteTx(db).InTx(ctx, func(ctx context.Context, repo Repository) error {
		current, err := repo.GetByUsername(ctx, "ana_99")
		if err != nil {
			return err
		}
		current.LastName = "Gomez"
		ok, err := repo.Update(ctx, current)
		if err != nil {
			return err
		}
		if !ok {
			return common.ErrNotFound
		}
		return nil
	})
	require.NoError(t, err)

	got, err := NewSQLiteRepository(db).GetByUsername(ctx, "ana_99")
	require.NoError(t, err)
	assert.Equal(t, "Gomez", got.LastName)
}
