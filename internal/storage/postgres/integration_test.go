//go:build integration

package postgres

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"portfolio_api/internal/domain"
)

type PostgresIntegrationSuite struct {
	suite.Suite
	ctx       context.Context
	container *postgres.PostgresContainer
	db        *sqlx.DB
}

func (s *PostgresIntegrationSuite) SetupSuite() {
	s.ctx = context.Background()

	migrationsPath, err := filepath.Abs("../../../migrations")
	s.Require().NoError(err)

	container, err := postgres.Run(s.ctx,
		"postgres:16-alpine",
		postgres.WithDatabase("test_db"),
		postgres.WithUsername("test"),
		postgres.WithPassword("test"),
		postgres.WithInitScripts(
			filepath.Join(migrationsPath, "001_create_blog_lgtm.up.sql"),
			filepath.Join(migrationsPath, "002_create_blog_archive.up.sql"),
		),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	s.Require().NoError(err)
	s.container = container

	connStr, err := container.ConnectionString(s.ctx, "sslmode=disable")
	s.Require().NoError(err)

	db, err := sqlx.Connect("postgres", connStr)
	s.Require().NoError(err)
	s.db = db
}

func (s *PostgresIntegrationSuite) TearDownSuite() {
	if s.db != nil {
		s.db.Close()
	}
	if s.container != nil {
		_ = s.container.Terminate(s.ctx)
	}
}

func (s *PostgresIntegrationSuite) SetupTest() {
	_, _ = s.db.ExecContext(s.ctx, "DELETE FROM blog_lgtm")
	_, _ = s.db.ExecContext(s.ctx, "DELETE FROM blog_monthly_archive")
	_, _ = s.db.ExecContext(s.ctx, "DELETE FROM blog_tag_archive")
}

func TestPostgresIntegrationSuite(t *testing.T) {
	suite.Run(t, new(PostgresIntegrationSuite))
}

func (s *PostgresIntegrationSuite) TestLgtmStore_CreateIfAbsent() {
	store := NewLgtmStore(s.db)

	err := store.CreateIfAbsent(s.ctx, "b1")
	s.Require().NoError(err)

	count, err := store.Get(s.ctx, "b1")
	s.Require().NoError(err)
	s.Equal(0, count.Good)
	s.Equal(0, count.Bad)
}

func (s *PostgresIntegrationSuite) TestLgtmStore_CreateIfAbsent_KeepsMovedCounts() {
	store := NewLgtmStore(s.db)

	s.Require().NoError(store.CreateIfAbsent(s.ctx, "b1"))
	s.Require().NoError(store.Increment(s.ctx, "b1", domain.LgtmGood, 5))

	// Redelivered create webhooks must not reset counters.
	s.Require().NoError(store.CreateIfAbsent(s.ctx, "b1"))

	count, err := store.Get(s.ctx, "b1")
	s.Require().NoError(err)
	s.Equal(5, count.Good)
}

func (s *PostgresIntegrationSuite) TestLgtmStore_Increment() {
	store := NewLgtmStore(s.db)
	s.Require().NoError(store.CreateIfAbsent(s.ctx, "b1"))

	for i := 0; i < 4; i++ {
		s.Require().NoError(store.Increment(s.ctx, "b1", domain.LgtmGood, 1))
	}
	s.Require().NoError(store.Increment(s.ctx, "b1", domain.LgtmGood, -1))
	s.Require().NoError(store.Increment(s.ctx, "b1", domain.LgtmBad, 1))

	count, err := store.Get(s.ctx, "b1")
	s.Require().NoError(err)
	s.Equal(3, count.Good)
	s.Equal(1, count.Bad)
}

func (s *PostgresIntegrationSuite) TestLgtmStore_Increment_MissingRecord() {
	store := NewLgtmStore(s.db)

	err := store.Increment(s.ctx, "nope", domain.LgtmGood, 1)
	s.Require().Error(err)
	s.Equal(domain.KindNotFound, domain.KindOf(err))
}

func (s *PostgresIntegrationSuite) TestLgtmStore_Get_MissingRecord() {
	store := NewLgtmStore(s.db)

	_, err := store.Get(s.ctx, "nope")
	s.Require().Error(err)
	s.Equal(domain.KindNotFound, domain.KindOf(err))
}

func (s *PostgresIntegrationSuite) TestArchiveStore_PutMonthly_Overwrites() {
	store := NewArchiveStore(s.db)

	s.Require().NoError(store.PutMonthly(s.ctx, "2024-03", 2))
	s.Require().NoError(store.PutMonthly(s.ctx, "2024-03", 5))
	s.Require().NoError(store.PutMonthly(s.ctx, "2024-04", 1))

	archives, err := store.ListMonthly(s.ctx)
	s.Require().NoError(err)

	s.Equal([]domain.MonthlyArchive{
		{Month: "2024-04", Count: 1},
		{Month: "2024-03", Count: 5},
	}, archives)
}

func (s *PostgresIntegrationSuite) TestArchiveStore_PutTag_Overwrites() {
	store := NewArchiveStore(s.db)

	s.Require().NoError(store.PutTag(s.ctx, "go", 1, 10))
	s.Require().NoError(store.PutTag(s.ctx, "go", 3, 33))
	s.Require().NoError(store.PutTag(s.ctx, "db", 3, 33))
	s.Require().NoError(store.PutTag(s.ctx, "web", 6, 66))

	archives, err := store.ListTags(s.ctx)
	s.Require().NoError(err)

	s.Equal([]domain.TagArchive{
		{CategoryID: "web", Count: 6, Percent: 66},
		{CategoryID: "db", Count: 3, Percent: 33},
		{CategoryID: "go", Count: 3, Percent: 33},
	}, archives)
}

func (s *PostgresIntegrationSuite) TestArchiveStore_EmptyLists() {
	store := NewArchiveStore(s.db)

	monthly, err := store.ListMonthly(s.ctx)
	s.Require().NoError(err)
	s.NotNil(monthly)
	s.Empty(monthly)

	tags, err := store.ListTags(s.ctx)
	s.Require().NoError(err)
	s.NotNil(tags)
	s.Empty(tags)
}
