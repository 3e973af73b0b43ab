package kvstore_test

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/rpg-sheet/internal/errors"
	"github.com/KirkDiggler/rpg-sheet/internal/repositories/kvstore"
	"github.com/KirkDiggler/rpg-sheet/internal/testutils"
)

type RedisStoreTestSuite struct {
	suite.Suite
	mr    *miniredis.Miniredis
	store kvstore.Store
	ctx   context.Context
}

func (s *RedisStoreTestSuite) SetupTest() {
	client, mr := testutils.CreateTestRedisClient(s.T())
	s.mr = mr
	s.ctx = context.Background()

	store, err := kvstore.NewRedis(&kvstore.RedisConfig{Client: client})
	s.Require().NoError(err)
	s.store = store
}

func (s *RedisStoreTestSuite) TestNewRedis() {
	_, err := kvstore.NewRedis(nil)
	s.Error(err)
	s.True(errors.IsInvalidArgument(err))

	_, err = kvstore.NewRedis(&kvstore.RedisConfig{})
	s.Error(err)
	s.Contains(err.Error(), "client cannot be nil")
}

func (s *RedisStoreTestSuite) TestSetGet() {
	s.Require().NoError(s.store.Set(s.ctx, "sheet:default:level", []byte("5")))

	got, err := s.store.Get(s.ctx, "sheet:default:level")
	s.Require().NoError(err)
	s.Equal("5", string(got))

	raw, err := s.mr.Get("sheet:default:level")
	s.Require().NoError(err)
	s.Equal("5", raw)
}

func (s *RedisStoreTestSuite) TestGetMissing() {
	_, err := s.store.Get(s.ctx, "sheet:default:gear")
	s.Error(err)
	s.True(errors.IsNotFound(err))
}

func (s *RedisStoreTestSuite) TestEmptyKey() {
	_, err := s.store.Get(s.ctx, "")
	s.True(errors.IsInvalidArgument(err))
	s.True(errors.IsInvalidArgument(s.store.Set(s.ctx, "", []byte("x"))))
}

func (s *RedisStoreTestSuite) TestDelete() {
	s.Require().NoError(s.store.Set(s.ctx, "a", []byte("1")))
	s.Require().NoError(s.store.Set(s.ctx, "b", []byte("2")))

	s.Require().NoError(s.store.Delete(s.ctx, "a", "b", "missing"))
	s.False(s.mr.Exists("a"))
	s.False(s.mr.Exists("b"))

	s.NoError(s.store.Delete(s.ctx))
}

func TestRedisStoreSuite(t *testing.T) {
	suite.Run(t, new(RedisStoreTestSuite))
}
