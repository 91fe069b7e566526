package data

import (
	"context"
	"testing"
	"time"

	"go-shortlink/ent/enttest"
	"go-shortlink/ent/visit"
	"go-shortlink/internal/domain"

	"github.com/go-kratos/kratos/v2/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	_ "github.com/mattn/go-sqlite3"
)

func TestVisitRepo_Record(t *testing.T) {
	client := enttest.Open(t, "sqlite3", "file:"+t.Name()+"?mode=memory&cache=shared&_fk=1")
	defer client.Close()

	repo := &visitRepo{
		data: &Data{db: client},
		log:  log.NewHelper(log.DefaultLogger),
	}

	ctx := context.Background()
	visitedAt := time.Now().UTC().Truncate(time.Second)

	err := repo.Record(ctx, &domain.Visit{
		ShortCode: "aaa",
		LongURL:   "https://example.com",
		UserAgent: "Mozilla/5.0",
		IPAddress: "127.0.0.1",
		Referer:   "https://referrer.example",
		VisitedAt: visitedAt,
	})
	require.NoError(t, err)

	rows, err := client.Visit.Query().Where(visit.ShortCodeEQ("aaa")).All(ctx)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "https://example.com", rows[0].LongURL)
	assert.Equal(t, "Mozilla/5.0", rows[0].UserAgent)
	assert.Equal(t, "127.0.0.1", rows[0].IPAddress)
}

func TestVisitRepo_Record_MinimalFields(t *testing.T) {
	client := enttest.Open(t, "sqlite3", "file:"+t.Name()+"?mode=memory&cache=shared&_fk=1")
	defer client.Close()

	repo := &visitRepo{
		data: &Data{db: client},
		log:  log.NewHelper(log.DefaultLogger),
	}

	err := repo.Record(context.Background(), &domain.Visit{
		ShortCode: "bbb",
		LongURL:   "https://example.com",
	})
	require.NoError(t, err)
}
