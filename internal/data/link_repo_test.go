package data

import (
	"context"
	"testing"

	"go-shortlink/ent/enttest"
	"go-shortlink/internal/domain"

	"github.com/go-kratos/kratos/v2/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	_ "github.com/mattn/go-sqlite3"
)

func setupTestRepo(t *testing.T) (*linkRepo, func()) {
	client := enttest.Open(t, "sqlite3", "file:"+t.Name()+"?mode=memory&cache=shared&_fk=1")

	data := &Data{
		db:  client,
		rdb: nil,
	}

	repo := &linkRepo{
		data: data,
		log:  log.NewHelper(log.DefaultLogger),
	}

	cleanup := func() {
		client.Close()
	}

	return repo, cleanup
}

func mustCode(t *testing.T, code string) domain.ShortCode {
	t.Helper()
	sc, err := domain.NewShortCode(code)
	require.NoError(t, err)
	return sc
}

func TestLinkRepo_Save(t *testing.T) {
	repo, cleanup := setupTestRepo(t)
	defer cleanup()

	ctx := context.Background()

	l := domain.NewLink(mustCode(t, "test123"), "https://example.com")
	err := repo.Save(ctx, l)
	require.NoError(t, err)
	assert.NotZero(t, l.ID())
	assert.Equal(t, "test123", l.ShortCode().String())
	assert.Zero(t, l.ClickCount())
}

func TestLinkRepo_Save_Update(t *testing.T) {
	repo, cleanup := setupTestRepo(t)
	defer cleanup()

	ctx := context.Background()

	l := domain.NewLink(mustCode(t, "upd"), "https://example.com")
	require.NoError(t, repo.Save(ctx, l))

	l.Deactivate()
	require.NoError(t, repo.Save(ctx, l))

	found, err := repo.FindActiveByCode(ctx, l.ShortCode())
	require.NoError(t, err)
	assert.Nil(t, found, "deactivated link is no longer resolvable")
}

func TestLinkRepo_FindActiveByCode(t *testing.T) {
	repo, cleanup := setupTestRepo(t)
	defer cleanup()

	ctx := context.Background()

	l := domain.NewLink(mustCode(t, "findme"), "https://example.com")
	require.NoError(t, repo.Save(ctx, l))

	found, err := repo.FindActiveByCode(ctx, mustCode(t, "findme"))
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, l.ID(), found.ID())
	assert.Equal(t, "https://example.com", found.LongURL())
	assert.True(t, found.IsActive())
}

func TestLinkRepo_FindActiveByCode_NotFound(t *testing.T) {
	repo, cleanup := setupTestRepo(t)
	defer cleanup()

	found, err := repo.FindActiveByCode(context.Background(), mustCode(t, "missing"))
	require.NoError(t, err, "absence is not an error")
	assert.Nil(t, found)
}

func TestLinkRepo_FindActiveByCode_Inactive(t *testing.T) {
	repo, cleanup := setupTestRepo(t)
	defer cleanup()

	ctx := context.Background()

	l := domain.NewLink(mustCode(t, "inactive"), "https://example.com")
	l.Deactivate()
	require.NoError(t, repo.Save(ctx, l))

	found, err := repo.FindActiveByCode(ctx, mustCode(t, "inactive"))
	require.NoError(t, err)
	assert.Nil(t, found)
}

func TestLinkRepo_IncrementClick(t *testing.T) {
	repo, cleanup := setupTestRepo(t)
	defer cleanup()

	ctx := context.Background()

	l := domain.NewLink(mustCode(t, "clicks"), "https://example.com")
	require.NoError(t, repo.Save(ctx, l))

	require.NoError(t, repo.IncrementClick(ctx, l.ShortCode()))
	require.NoError(t, repo.IncrementClick(ctx, l.ShortCode()))

	found, err := repo.FindActiveByCode(ctx, l.ShortCode())
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, int64(2), found.ClickCount())
}
