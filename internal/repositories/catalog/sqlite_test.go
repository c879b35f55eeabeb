package catalog_test

import (
	"context"
	"fmt"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/suite"
	"golang.org/x/sync/errgroup"

	"github.com/KirkDiggler/rpg-gearset/internal/entities/gear"
	"github.com/KirkDiggler/rpg-gearset/internal/errors"
	"github.com/KirkDiggler/rpg-gearset/internal/repositories/catalog"
	"github.com/KirkDiggler/rpg-gearset/internal/testutils"
	"github.com/KirkDiggler/rpg-gearset/internal/testutils/builders"
)

type SQLiteRepositoryTestSuite struct {
	suite.Suite
	path string
	repo *catalog.SQLiteRepository
	ctx  context.Context
}

func TestSQLiteRepositorySuite(t *testing.T) {
	suite.Run(t, new(SQLiteRepositoryTestSuite))
}

func (s *SQLiteRepositoryTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.path = filepath.Join(s.T().TempDir(), "catalog.db")

	repo, err := catalog.NewSQLite(s.ctx, &catalog.SQLiteConfig{Path: s.path})
	s.Require().NoError(err)
	s.repo = repo
}

func (s *SQLiteRepositoryTestSuite) TearDownTest() {
	s.NoError(s.repo.Close())
}

func (s *SQLiteRepositoryTestSuite) TestConfigValidation() {
	_, err := catalog.NewSQLite(s.ctx, nil)
	s.True(errors.IsInvalidArgument(err))

	_, err = catalog.NewSQLite(s.ctx, &catalog.SQLiteConfig{Path: "  "})
	s.True(errors.IsInvalidArgument(err))
}

func (s *SQLiteRepositoryTestSuite) TestPutThenGet() {
	out, err := s.repo.Put(s.ctx, catalog.PutInput{
		Name:  testutils.SampleCatalogName,
		Items: testutils.SampleCatalog(),
	})
	s.Require().NoError(err)
	s.Equal(len(testutils.SampleCatalog()), out.Count)

	got, err := s.repo.Get(s.ctx, catalog.GetInput{Name: testutils.SampleCatalogName})
	s.Require().NoError(err)
	s.Equal(testutils.SampleCatalog(), got.Items)
}

func (s *SQLiteRepositoryTestSuite) TestExtremeStatsSurvive() {
	items := []gear.Item{
		builders.NewItemBuilder("cursed").In(gear.Aura).
			WithLevel(255).WithHP(-128).WithMana(127).WithSpellSave(127).
			ForbidAlign(gear.Good, gear.Evil).ForbidClass(gear.Cleric).Build(),
	}
	_, err := s.repo.Put(s.ctx, catalog.PutInput{Name: "edge", Items: items})
	s.Require().NoError(err)

	got, err := s.repo.Get(s.ctx, catalog.GetInput{Name: "edge"})
	s.Require().NoError(err)
	s.Equal(items, got.Items)
}

func (s *SQLiteRepositoryTestSuite) TestPutReplacesAndIsolatesCatalogs() {
	_, err := s.repo.Put(s.ctx, catalog.PutInput{Name: "a", Items: testutils.SampleCatalog()})
	s.Require().NoError(err)
	_, err = s.repo.Put(s.ctx, catalog.PutInput{Name: "b", Items: testutils.SampleCatalog()[:1]})
	s.Require().NoError(err)
	_, err = s.repo.Put(s.ctx, catalog.PutInput{Name: "a", Items: testutils.SampleCatalog()[5:7]})
	s.Require().NoError(err)

	a, err := s.repo.Get(s.ctx, catalog.GetInput{Name: "a"})
	s.Require().NoError(err)
	s.Equal(testutils.SampleCatalog()[5:7], a.Items)

	b, err := s.repo.Get(s.ctx, catalog.GetInput{Name: "b"})
	s.Require().NoError(err)
	s.Len(b.Items, 1)
}

func (s *SQLiteRepositoryTestSuite) TestReopenAppliesMigrationsOnce() {
	_, err := s.repo.Put(s.ctx, catalog.PutInput{Name: "kept", Items: testutils.SampleCatalog()})
	s.Require().NoError(err)
	s.Require().NoError(s.repo.Close())

	repo, err := catalog.NewSQLite(s.ctx, &catalog.SQLiteConfig{Path: s.path})
	s.Require().NoError(err)
	s.repo = repo

	got, err := s.repo.Get(s.ctx, catalog.GetInput{Name: "kept"})
	s.Require().NoError(err)
	s.Len(got.Items, len(testutils.SampleCatalog()))
}

func (s *SQLiteRepositoryTestSuite) TestGetErrors() {
	_, err := s.repo.Get(s.ctx, catalog.GetInput{})
	s.True(errors.IsInvalidArgument(err))

	_, err = s.repo.Get(s.ctx, catalog.GetInput{Name: "missing"})
	s.True(errors.IsNotFound(err))
}

func (s *SQLiteRepositoryTestSuite) TestPutRejectsInvalidRecords() {
	_, err := s.repo.Put(s.ctx, catalog.PutInput{Name: "bad", Items: []gear.Item{{Locations: []gear.Location{gear.Head}}}})
	s.True(errors.IsInvalidArgument(err))

	_, err = s.repo.Get(s.ctx, catalog.GetInput{Name: "bad"})
	s.True(errors.IsNotFound(err))
}

func (s *SQLiteRepositoryTestSuite) TestList() {
	out, err := s.repo.List(s.ctx, catalog.ListInput{})
	s.Require().NoError(err)
	s.Empty(out.Names)

	for _, name := range []string{"winter", "autumn"} {
		_, err := s.repo.Put(s.ctx, catalog.PutInput{Name: name, Items: testutils.SampleCatalog()})
		s.Require().NoError(err)
	}

	out, err = s.repo.List(s.ctx, catalog.ListInput{})
	s.Require().NoError(err)
	s.Equal([]string{"autumn", "winter"}, out.Names)
}

func (s *SQLiteRepositoryTestSuite) TestEmptyCatalogRoundTrips() {
	out, err := s.repo.Put(s.ctx, catalog.PutInput{Name: "empty"})
	s.Require().NoError(err)
	s.Zero(out.Count)

	got, err := s.repo.Get(s.ctx, catalog.GetInput{Name: "empty"})
	s.Require().NoError(err)
	s.Equal("empty", got.Name)
	s.Empty(got.Items)

	names, err := s.repo.List(s.ctx, catalog.ListInput{})
	s.Require().NoError(err)
	s.Equal([]string{"empty"}, names.Names)
}

func (s *SQLiteRepositoryTestSuite) TestEmptyingACatalogKeepsIt() {
	_, err := s.repo.Put(s.ctx, catalog.PutInput{Name: "shrinking", Items: testutils.SampleCatalog()})
	s.Require().NoError(err)
	_, err = s.repo.Put(s.ctx, catalog.PutInput{Name: "shrinking", Items: []gear.Item{}})
	s.Require().NoError(err)

	got, err := s.repo.Get(s.ctx, catalog.GetInput{Name: "shrinking"})
	s.Require().NoError(err)
	s.Empty(got.Items)
}

func (s *SQLiteRepositoryTestSuite) TestConcurrentOpens() {
	dir := s.T().TempDir()

	var g errgroup.Group
	for i := range 4 {
		g.Go(func() error {
			repo, err := catalog.NewSQLite(s.ctx, &catalog.SQLiteConfig{
				Path: filepath.Join(dir, fmt.Sprintf("store-%d.db", i)),
			})
			if err != nil {
				return err
			}
			defer func() { _ = repo.Close() }()

			_, err = repo.Put(s.ctx, catalog.PutInput{Name: "shared", Items: testutils.SampleCatalog()})
			return err
		})
	}
	s.NoError(g.Wait())
}
