package kvstore_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/rpg-sheet/internal/errors"
	"github.com/KirkDiggler/rpg-sheet/internal/repositories/kvstore"
)

type SQLiteStoreTestSuite struct {
	suite.Suite
	path  string
	store *kvstore.SQLiteStore
	ctx   context.Context
}

func (s *SQLiteStoreTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.path = filepath.Join(s.T().TempDir(), "sheet.db")

	store, err := kvstore.NewSQLite(s.ctx, &kvstore.SQLiteConfig{Path: s.path})
	s.Require().NoError(err)
	s.store = store
}

func (s *SQLiteStoreTestSuite) TearDownTest() {
	s.NoError(s.store.Close())
}

func (s *SQLiteStoreTestSuite) TestNewSQLiteRequiresPath() {
	_, err := kvstore.NewSQLite(s.ctx, &kvstore.SQLiteConfig{})
	s.Error(err)
	s.True(errors.IsInvalidArgument(err))
}

func (s *SQLiteStoreTestSuite) TestUpsert() {
	s.Require().NoError(s.store.Set(s.ctx, "sheet:default:notes", []byte(`"first"`)))
	s.Require().NoError(s.store.Set(s.ctx, "sheet:default:notes", []byte(`"second"`)))

	got, err := s.store.Get(s.ctx, "sheet:default:notes")
	s.Require().NoError(err)
	s.Equal(`"second"`, string(got))
}

func (s *SQLiteStoreTestSuite) TestGetMissing() {
	_, err := s.store.Get(s.ctx, "nope")
	s.True(errors.IsNotFound(err))
}

func (s *SQLiteStoreTestSuite) TestDelete() {
	for _, k := range []string{"a", "b", "c"} {
		s.Require().NoError(s.store.Set(s.ctx, k, []byte(k)))
	}

	s.Require().NoError(s.store.Delete(s.ctx, "a", "c"))

	_, err := s.store.Get(s.ctx, "a")
	s.True(errors.IsNotFound(err))
	got, err := s.store.Get(s.ctx, "b")
	s.Require().NoError(err)
	s.Equal("b", string(got))
}

func (s *SQLiteStoreTestSuite) TestPersistsAcrossReopen() {
	s.Require().NoError(s.store.Set(s.ctx, "sheet:default:level", []byte("7")))
	s.Require().NoError(s.store.Close())

	reopened, err := kvstore.NewSQLite(s.ctx, &kvstore.SQLiteConfig{Path: s.path})
	s.Require().NoError(err)
	s.store = reopened

	got, err := s.store.Get(s.ctx, "sheet:default:level")
	s.Require().NoError(err)
	s.Equal("7", string(got))
}

func TestSQLiteStoreSuite(t *testing.T) {
	suite.Run(t, new(SQLiteStoreTestSuite))
}
