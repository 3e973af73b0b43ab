package rolllog_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/rpg-sheet/internal/errors"
	"github.com/KirkDiggler/rpg-sheet/internal/pkg/clock"
	rolllog "github.com/KirkDiggler/rpg-sheet/internal/repositories/roll_log"
	"github.com/KirkDiggler/rpg-sheet/internal/testutils"
)

const (
	testCharID = "char_rolls"
	testKey    = "roll_log:char_rolls"
)

type RollLogTestSuite struct {
	suite.Suite
	ctx   context.Context
	mr    *miniredis.Miniredis
	clock *clock.Fixed
	repo  rolllog.Repository
}

func (s *RollLogTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.clock = clock.NewFixed(time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC))

	client, mr := testutils.CreateTestRedisClient(s.T())
	s.mr = mr

	repo, err := rolllog.NewRedisRepository(&rolllog.Config{
		Client:     client,
		Clock:      s.clock,
		TTL:        time.Hour,
		MaxEntries: 3,
	})
	s.Require().NoError(err)
	s.repo = repo
}

func (s *RollLogTestSuite) appendRoll(total int) {
	_, err := s.repo.Append(s.ctx, rolllog.AppendInput{
		CharacterID: testCharID,
		Roll: rolllog.Roll{
			ID:    fmt.Sprintf("roll_%d", total),
			Kind:  rolllog.KindCheck,
			Check: "perception",
			Total: total,
		},
	})
	s.Require().NoError(err)
}

func (s *RollLogTestSuite) TestNewRedisRepository() {
	testCases := []struct {
		name string
		cfg  *rolllog.Config
	}{
		{name: "nil config", cfg: nil},
		{name: "missing client", cfg: &rolllog.Config{Clock: s.clock}},
		{name: "missing client and clock", cfg: &rolllog.Config{}},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			_, err := rolllog.NewRedisRepository(tc.cfg)
			s.Error(err)
			s.True(errors.IsInvalidArgument(err))
		})
	}
}

func (s *RollLogTestSuite) TestAppendStampsTimeAndExpiry() {
	out, err := s.repo.Append(s.ctx, rolllog.AppendInput{
		CharacterID: testCharID,
		Roll:        rolllog.Roll{ID: "roll_1", Kind: rolllog.KindDamage, Check: "horn", Total: 9},
	})
	s.Require().NoError(err)
	s.Equal(s.clock.Now(), out.Roll.RolledAt)

	s.True(s.mr.Exists(testKey))
	s.Equal(time.Hour, s.mr.TTL(testKey))
}

func (s *RollLogTestSuite) TestListNewestFirstAndTrimmed() {
	for total := 1; total <= 5; total++ {
		s.appendRoll(total)
	}

	out, err := s.repo.List(s.ctx, rolllog.ListInput{CharacterID: testCharID})
	s.Require().NoError(err)
	s.Require().Len(out.Rolls, 3)
	s.Equal(5, out.Rolls[0].Total)
	s.Equal(4, out.Rolls[1].Total)
	s.Equal(3, out.Rolls[2].Total)

	limited, err := s.repo.List(s.ctx, rolllog.ListInput{CharacterID: testCharID, Limit: 1})
	s.Require().NoError(err)
	s.Require().Len(limited.Rolls, 1)
	s.Equal(5, limited.Rolls[0].Total)
}

func (s *RollLogTestSuite) TestListSkipsMalformedEntries() {
	s.appendRoll(1)
	_, err := s.mr.Lpush(testKey, "garbage")
	s.Require().NoError(err)

	out, err := s.repo.List(s.ctx, rolllog.ListInput{CharacterID: testCharID})
	s.Require().NoError(err)
	s.Require().Len(out.Rolls, 1)
	s.Equal(1, out.Rolls[0].Total)
}

func (s *RollLogTestSuite) TestExpiredLogIsEmpty() {
	s.appendRoll(1)
	s.mr.FastForward(2 * time.Hour)

	out, err := s.repo.List(s.ctx, rolllog.ListInput{CharacterID: testCharID})
	s.Require().NoError(err)
	s.Empty(out.Rolls)
}

func (s *RollLogTestSuite) TestClear() {
	s.appendRoll(1)
	s.appendRoll(2)

	out, err := s.repo.Clear(s.ctx, rolllog.ClearInput{CharacterID: testCharID})
	s.Require().NoError(err)
	s.Equal(2, out.Cleared)
	s.False(s.mr.Exists(testKey))

	out, err = s.repo.Clear(s.ctx, rolllog.ClearInput{CharacterID: testCharID})
	s.Require().NoError(err)
	s.Equal(0, out.Cleared)
}

func (s *RollLogTestSuite) TestEmptyCharacterID() {
	_, err := s.repo.Append(s.ctx, rolllog.AppendInput{})
	s.True(errors.IsInvalidArgument(err))
	_, err = s.repo.List(s.ctx, rolllog.ListInput{})
	s.True(errors.IsInvalidArgument(err))
	_, err = s.repo.Clear(s.ctx, rolllog.ClearInput{})
	s.True(errors.IsInvalidArgument(err))
}

func TestRollLogSuite(t *testing.T) {
	suite.Run(t, new(RollLogTestSuite))
}
