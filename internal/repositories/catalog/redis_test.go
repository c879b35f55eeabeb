package catalog_test

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/rpg-gearset/internal/errors"
	"github.com/KirkDiggler/rpg-gearset/internal/repositories/catalog"
	"github.com/KirkDiggler/rpg-gearset/internal/testutils"
)

type RedisRepositoryTestSuite struct {
	suite.Suite
	mr      *miniredis.Miniredis
	cleanup func()
	repo    catalog.Repository
	ctx     context.Context
}

func TestRedisRepositorySuite(t *testing.T) {
	suite.Run(t, new(RedisRepositoryTestSuite))
}

func (s *RedisRepositoryTestSuite) SetupTest() {
	client, mr, cleanup := testutils.CreateTestRedisServer(s.T())
	s.mr = mr
	s.cleanup = cleanup
	s.ctx = context.Background()

	repo, err := catalog.NewRedis(&catalog.RedisConfig{Client: client})
	s.Require().NoError(err)
	s.repo = repo
}

func (s *RedisRepositoryTestSuite) TearDownTest() {
	s.cleanup()
}

func (s *RedisRepositoryTestSuite) TestNewRedis() {
	testCases := []struct {
		name   string
		config *catalog.RedisConfig
		errMsg string
	}{
		{name: "nil config", config: nil, errMsg: "config cannot be nil"},
		{name: "nil client", config: &catalog.RedisConfig{}, errMsg: "client cannot be nil"},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			repo, err := catalog.NewRedis(tc.config)
			s.Nil(repo)
			s.Require().Error(err)
			s.Contains(err.Error(), tc.errMsg)
		})
	}
}

func (s *RedisRepositoryTestSuite) TestPutThenGet() {
	out, err := s.repo.Put(s.ctx, catalog.PutInput{
		Name:  testutils.SampleCatalogName,
		Items: testutils.SampleCatalog(),
	})
	s.Require().NoError(err)
	s.Equal(testutils.SampleCatalogName, out.Name)
	s.True(s.mr.Exists(catalog.GetKey(testutils.SampleCatalogName)))

	got, err := s.repo.Get(s.ctx, catalog.GetInput{Name: testutils.SampleCatalogName})
	s.Require().NoError(err)
	s.Equal(testutils.SampleCatalog(), got.Items)
}

func (s *RedisRepositoryTestSuite) TestPutReplaces() {
	_, err := s.repo.Put(s.ctx, catalog.PutInput{Name: "c", Items: testutils.SampleCatalog()})
	s.Require().NoError(err)
	_, err = s.repo.Put(s.ctx, catalog.PutInput{Name: "c", Items: testutils.SampleCatalog()[:2]})
	s.Require().NoError(err)

	got, err := s.repo.Get(s.ctx, catalog.GetInput{Name: "c"})
	s.Require().NoError(err)
	s.Len(got.Items, 2)
}

func (s *RedisRepositoryTestSuite) TestGetMissing() {
	_, err := s.repo.Get(s.ctx, catalog.GetInput{Name: "missing"})
	s.True(errors.IsNotFound(err))

	_, err = s.repo.Get(s.ctx, catalog.GetInput{})
	s.True(errors.IsInvalidArgument(err))
}

func (s *RedisRepositoryTestSuite) TestGetCorruptData() {
	s.Require().NoError(s.mr.Set(catalog.GetKey("corrupt"), "not json"))
	_, err := s.repo.Get(s.ctx, catalog.GetInput{Name: "corrupt"})
	s.Equal(errors.CodeDataLoss, errors.GetCode(err))

	s.Require().NoError(s.mr.Set(catalog.GetKey("invalid"), `{"name":"invalid","items":[{"name":""}]}`))
	_, err = s.repo.Get(s.ctx, catalog.GetInput{Name: "invalid"})
	s.Equal(errors.CodeDataLoss, errors.GetCode(err))
}

func (s *RedisRepositoryTestSuite) TestUnavailable() {
	s.mr.Close()

	_, err := s.repo.Get(s.ctx, catalog.GetInput{Name: "sample"})
	s.Require().Error(err)
	s.False(errors.IsNotFound(err))
}

func (s *RedisRepositoryTestSuite) TestList() {
	for _, name := range []string{"winter", "autumn"} {
		_, err := s.repo.Put(s.ctx, catalog.PutInput{Name: name, Items: testutils.SampleCatalog()})
		s.Require().NoError(err)
	}
	s.Require().NoError(s.mr.Set("unrelated", "x"))

	out, err := s.repo.List(s.ctx, catalog.ListInput{})
	s.Require().NoError(err)
	s.Equal([]string{"autumn", "winter"}, out.Names)
}
