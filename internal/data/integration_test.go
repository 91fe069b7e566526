package data

import (
	"context"
	"testing"
	"time"

	"go-shortlink/ent"
	"go-shortlink/internal/biz"
	"go-shortlink/internal/domain"

	"github.com/go-kratos/kratos/v2/log"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	tcredis "github.com/testcontainers/testcontainers-go/modules/redis"
	"github.com/testcontainers/testcontainers-go/wait"

	_ "github.com/lib/pq"
)

// IntegrationTestSuite exercises the real store and cache tiers through
// testcontainers.
type IntegrationTestSuite struct {
	suite.Suite
	ctx            context.Context
	pgContainer    *postgres.PostgresContainer
	redisContainer *tcredis.RedisContainer
	entClient      *ent.Client
	redisClient    *redis.Client
	data           *Data
	repo           domain.LinkRepository
	cache          domain.LinkCache
}

func TestIntegrationTestSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration tests in short mode")
	}
	suite.Run(t, new(IntegrationTestSuite))
}

func (s *IntegrationTestSuite) SetupSuite() {
	s.ctx = context.Background()

	// Start PostgreSQL container
	pgContainer, err := postgres.Run(s.ctx,
		"postgres:16-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("test"),
		postgres.WithPassword("test"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	require.NoError(s.T(), err)
	s.pgContainer = pgContainer

	// Start Redis container
	redisContainer, err := tcredis.Run(s.ctx,
		"redis:7-alpine",
		testcontainers.WithWaitStrategy(
			wait.ForLog("Ready to accept connections").
				WithStartupTimeout(30*time.Second),
		),
	)
	require.NoError(s.T(), err)
	s.redisContainer = redisContainer

	pgConnStr, err := pgContainer.ConnectionString(s.ctx, "sslmode=disable")
	require.NoError(s.T(), err)

	redisEndpoint, err := redisContainer.Endpoint(s.ctx, "")
	require.NoError(s.T(), err)

	s.entClient, err = ent.Open("postgres", pgConnStr)
	require.NoError(s.T(), err)

	err = s.entClient.Schema.Create(s.ctx)
	require.NoError(s.T(), err)

	s.redisClient = redis.NewClient(&redis.Options{
		Addr: redisEndpoint,
	})

	s.data = &Data{
		db:  s.entClient,
		rdb: s.redisClient,
	}
	s.repo = NewLinkRepo(s.data, log.DefaultLogger)
	s.cache = NewLinkCache(s.data, nil, log.DefaultLogger)
}

func (s *IntegrationTestSuite) TearDownSuite() {
	if s.entClient != nil {
		s.entClient.Close()
	}
	if s.redisClient != nil {
		s.redisClient.Close()
	}
	if s.redisContainer != nil {
		s.redisContainer.Terminate(s.ctx)
	}
	if s.pgContainer != nil {
		s.pgContainer.Terminate(s.ctx)
	}
}

func (s *IntegrationTestSuite) mustCode(code string) domain.ShortCode {
	sc, err := domain.NewShortCode(code)
	require.NoError(s.T(), err)
	return sc
}

func (s *IntegrationTestSuite) TestRepo_RoundTrip() {
	l := domain.NewLink(s.mustCode("it-roundtrip"), "https://example.com/docs")
	s.Require().NoError(s.repo.Save(s.ctx, l))

	found, err := s.repo.FindActiveByCode(s.ctx, s.mustCode("it-roundtrip"))
	s.Require().NoError(err)
	s.Require().NotNil(found)
	s.Equal("https://example.com/docs", found.LongURL())
}

func (s *IntegrationTestSuite) TestRepo_IncrementClick() {
	l := domain.NewLink(s.mustCode("it-clicks"), "https://example.com")
	s.Require().NoError(s.repo.Save(s.ctx, l))

	s.Require().NoError(s.repo.IncrementClick(s.ctx, l.ShortCode()))
	s.Require().NoError(s.repo.IncrementClick(s.ctx, l.ShortCode()))

	found, err := s.repo.FindActiveByCode(s.ctx, l.ShortCode())
	s.Require().NoError(err)
	s.Require().NotNil(found)
	s.Equal(int64(2), found.ClickCount())
}

func (s *IntegrationTestSuite) TestCache_MissThenHit() {
	code := s.mustCode("it-cache")

	_, hit, err := s.cache.Get(s.ctx, code)
	s.Require().NoError(err)
	s.False(hit)

	s.Require().NoError(s.cache.Set(s.ctx, code, "https://example.com/cached"))

	longURL, hit, err := s.cache.Get(s.ctx, code)
	s.Require().NoError(err)
	s.True(hit)
	s.Equal("https://example.com/cached", longURL)
}

func (s *IntegrationTestSuite) TestResolve_PopulatesCache() {
	l := domain.NewLink(s.mustCode("it-resolve"), "https://example.com/resolve")
	s.Require().NoError(s.repo.Save(s.ctx, l))

	uc := biz.NewRedirectUsecase(s.repo, s.cache, log.DefaultLogger)

	longURL, err := uc.Resolve(s.ctx, l.ShortCode())
	s.Require().NoError(err)
	s.Equal("https://example.com/resolve", longURL)

	// Subsequent identical requests resolve from cache.
	cached, hit, err := s.cache.Get(s.ctx, l.ShortCode())
	s.Require().NoError(err)
	s.True(hit)
	s.Equal("https://example.com/resolve", cached)
}
