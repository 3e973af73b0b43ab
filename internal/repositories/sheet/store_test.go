package sheet_test

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	entity "github.com/KirkDiggler/rpg-sheet/internal/entities/sheet"
	"github.com/KirkDiggler/rpg-sheet/internal/errors"
	"github.com/KirkDiggler/rpg-sheet/internal/pkg/idgen"
	"github.com/KirkDiggler/rpg-sheet/internal/repositories/kvstore"
	kvstoremock "github.com/KirkDiggler/rpg-sheet/internal/repositories/kvstore/mock"
	"github.com/KirkDiggler/rpg-sheet/internal/repositories/sheet"
	"github.com/KirkDiggler/rpg-sheet/internal/rules"
	"github.com/KirkDiggler/rpg-sheet/internal/testutils"
	"github.com/KirkDiggler/rpg-sheet/internal/testutils/builders"
)

const testCharID = "char_repo"

type SheetRepositoryTestSuite struct {
	suite.Suite
	ctx    context.Context
	mr     *miniredis.Miniredis
	tables *rules.Tables
	repo   sheet.Repository
}

func (s *SheetRepositoryTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.tables = testutils.Tables(s.T())

	client, mr := testutils.CreateTestRedisClient(s.T())
	s.mr = mr

	store, err := kvstore.NewRedis(&kvstore.RedisConfig{Client: client})
	s.Require().NoError(err)

	repo, err := sheet.New(&sheet.Config{
		Store:    store,
		Defaults: s.tables.Defaults,
		IDGen:    idgen.NewSequential("gear"),
	})
	s.Require().NoError(err)
	s.repo = repo
}

func (s *SheetRepositoryTestSuite) TestNewValidatesConfig() {
	_, err := sheet.New(nil)
	s.True(errors.IsInvalidArgument(err))

	_, err = sheet.New(&sheet.Config{})
	s.Require().Error(err)
	s.Contains(err.Error(), "store")
	s.Contains(err.Error(), "defaults")
}

func (s *SheetRepositoryTestSuite) TestLoadEmptyCharacterID() {
	_, err := s.repo.Load(s.ctx, sheet.LoadInput{})
	s.True(errors.IsInvalidArgument(err))
}

func (s *SheetRepositoryTestSuite) TestLoadFreshCharacterUsesDefaults() {
	out, err := s.repo.Load(s.ctx, sheet.LoadInput{CharacterID: testCharID})
	s.Require().NoError(err)

	s.True(out.IsNew())
	s.Equal(testCharID, out.State.CharacterID)
	s.Equal(s.tables.Defaults.Name, out.State.Profile.Name)
	s.Equal(18, out.State.Abilities[rules.Strength])
	s.Len(out.State.Gear, len(s.tables.Defaults.Gear))
	s.Equal("gear_1", out.State.Gear[0].ID)
	s.Equal(rules.FontHeal, out.State.Spells.Font.Choice)
}

func (s *SheetRepositoryTestSuite) TestSaveLoadRoundTrip() {
	state := builders.NewStateBuilder().
		WithCharacterID(testCharID).
		WithLevel(7).
		WithHP(40, 80).
		WithAbilities(19, 12, 16, 10, 19, 14).
		WithEquipped("Full Plate", "full-plate", entity.SlotArmor).
		WithPrepared(1, "heal", "heal").
		WithSkill("religion", rules.Expert).
		WithFeat(1, "ancestry", "Horns").
		WithNotes("owes the smith 3 gp").
		Build()

	out, err := s.repo.Save(s.ctx, sheet.SaveInput{CharacterID: testCharID, State: state})
	s.Require().NoError(err)
	s.Equal(sheet.AllSlices, out.Written)

	loaded, err := s.repo.Load(s.ctx, sheet.LoadInput{CharacterID: testCharID})
	s.Require().NoError(err)
	s.Empty(loaded.Defaulted)
	s.False(loaded.IsNew())

	got := loaded.State
	s.Equal(7, got.Level)
	s.Equal(entity.HitPoints{Current: 40, Max: 80}, got.HP)
	s.Equal(19, got.Abilities[rules.Wisdom])
	s.Equal(state.Gear, got.Gear)
	s.Len(got.Spells.PreparedAt(1), 2)
	s.Equal(rules.Expert, got.SkillRank("religion"))
	s.Equal(state.Feats, got.Feats)
	s.Equal("owes the smith 3 gp", got.Notes)
}

func (s *SheetRepositoryTestSuite) TestSaveOnlyNamedSlices() {
	state := builders.NewStateBuilder().WithCharacterID(testCharID).WithLevel(3).WithNotes("x").Build()

	out, err := s.repo.Save(s.ctx, sheet.SaveInput{
		CharacterID: testCharID,
		State:       state,
		Slices:      []sheet.Slice{sheet.SliceLevel},
	})
	s.Require().NoError(err)
	s.Equal([]sheet.Slice{sheet.SliceLevel}, out.Written)

	s.True(s.mr.Exists(sheet.Key(testCharID, sheet.SliceLevel)))
	s.False(s.mr.Exists(sheet.Key(testCharID, sheet.SliceNotes)))
}

func (s *SheetRepositoryTestSuite) TestMalformedSliceFallsBackAlone() {
	s.Require().NoError(s.mr.Set(sheet.Key(testCharID, sheet.SliceLevel), "9"))
	s.Require().NoError(s.mr.Set(sheet.Key(testCharID, sheet.SliceGear), "{not json"))
	s.Require().NoError(s.mr.Set(sheet.Key(testCharID, sheet.SliceNotes), `"kept"`))

	out, err := s.repo.Load(s.ctx, sheet.LoadInput{CharacterID: testCharID})
	s.Require().NoError(err)

	s.True(out.IsDefaulted(sheet.SliceGear))
	s.False(out.IsDefaulted(sheet.SliceLevel))
	s.False(out.IsDefaulted(sheet.SliceNotes))
	s.Equal(9, out.State.Level)
	s.Equal("kept", out.State.Notes)
	s.Len(out.State.Gear, len(s.tables.Defaults.Gear))
}

func (s *SheetRepositoryTestSuite) TestSemanticallyInvalidSlicesDefault() {
	testCases := []struct {
		name  string
		slice sheet.Slice
		raw   string
	}{
		{name: "negative hp", slice: sheet.SliceHP, raw: `{"current":-3,"max":10}`},
		{name: "gear without id", slice: sheet.SliceGear, raw: `[{"name":"Rope"}]`},
		{name: "unknown skill rank", slice: sheet.SliceSkills, raw: `{"religion":{"rank":"godlike"}}`},
		{name: "unknown ability", slice: sheet.SliceAbilities, raw: `{"luck":18}`},
		{name: "wrong type", slice: sheet.SliceLevel, raw: `"five"`},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			s.mr.FlushAll()
			s.Require().NoError(s.mr.Set(sheet.Key(testCharID, tc.slice), tc.raw))

			out, err := s.repo.Load(s.ctx, sheet.LoadInput{CharacterID: testCharID})
			s.Require().NoError(err)
			s.True(out.IsDefaulted(tc.slice))
		})
	}
}

func (s *SheetRepositoryTestSuite) TestOutOfRangeLevelIsClamped() {
	s.Require().NoError(s.mr.Set(sheet.Key(testCharID, sheet.SliceLevel), "42"))

	out, err := s.repo.Load(s.ctx, sheet.LoadInput{CharacterID: testCharID})
	s.Require().NoError(err)
	s.Equal(entity.MaxLevel, out.State.Level)
	s.False(out.IsDefaulted(sheet.SliceLevel))
}

func (s *SheetRepositoryTestSuite) TestMissingAbilitiesFillWithTen() {
	s.Require().NoError(s.mr.Set(sheet.Key(testCharID, sheet.SliceAbilities), `{"str":16}`))

	out, err := s.repo.Load(s.ctx, sheet.LoadInput{CharacterID: testCharID})
	s.Require().NoError(err)
	s.Equal(16, out.State.Abilities[rules.Strength])
	s.Equal(10, out.State.Abilities[rules.Charisma])
}

func (s *SheetRepositoryTestSuite) TestDelete() {
	state := builders.NewStateBuilder().WithCharacterID(testCharID).Build()
	_, err := s.repo.Save(s.ctx, sheet.SaveInput{CharacterID: testCharID, State: state})
	s.Require().NoError(err)

	_, err = s.repo.Delete(s.ctx, sheet.DeleteInput{CharacterID: testCharID})
	s.Require().NoError(err)

	for _, slice := range sheet.AllSlices {
		s.False(s.mr.Exists(sheet.Key(testCharID, slice)), string(slice))
	}

	out, err := s.repo.Load(s.ctx, sheet.LoadInput{CharacterID: testCharID})
	s.Require().NoError(err)
	s.True(out.IsNew())
}

func (s *SheetRepositoryTestSuite) TestSaveRequiresState() {
	_, err := s.repo.Save(s.ctx, sheet.SaveInput{CharacterID: testCharID})
	s.True(errors.IsInvalidArgument(err))
}

func (s *SheetRepositoryTestSuite) TestParseKey() {
	testCases := []struct {
		name   string
		key    string
		charID string
		slice  sheet.Slice
		ok     bool
	}{
		{name: "round trip", key: sheet.Key("char_1", sheet.SliceGear), charID: "char_1", slice: sheet.SliceGear, ok: true},
		{name: "colon in id", key: "sheet:party:ilse:hp", charID: "party:ilse", slice: sheet.SliceHP, ok: true},
		{name: "other prefix", key: "rolls:char_1"},
		{name: "unknown slice", key: "sheet:char_1:pets"},
		{name: "no id", key: "sheet::hp"},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			charID, slice, ok := sheet.ParseKey(tc.key)
			s.Equal(tc.ok, ok)
			s.Equal(tc.charID, charID)
			s.Equal(tc.slice, slice)
		})
	}
}

func (s *SheetRepositoryTestSuite) TestValidateSlice() {
	s.NoError(sheet.ValidateSlice(sheet.SliceHP, []byte(`{"current":3,"max":20}`)))
	s.Error(sheet.ValidateSlice(sheet.SliceHP, []byte(`{"current":-1,"max":20}`)))
	s.Error(sheet.ValidateSlice(sheet.SliceGear, []byte(`[{"name":"Rope"}]`)))
	s.Error(sheet.ValidateSlice(sheet.SliceLevel, []byte(`"three"`)))
}

func TestSheetRepositorySuite(t *testing.T) {
	suite.Run(t, new(SheetRepositoryTestSuite))
}

type SheetRepositoryStoreErrorTestSuite struct {
	suite.Suite
	ctrl      *gomock.Controller
	mockStore *kvstoremock.MockStore
	repo      sheet.Repository
	ctx       context.Context
}

func (s *SheetRepositoryStoreErrorTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockStore = kvstoremock.NewMockStore(s.ctrl)
	s.ctx = context.Background()

	repo, err := sheet.New(&sheet.Config{
		Store:    s.mockStore,
		Defaults: testutils.Tables(s.T()).Defaults,
		IDGen:    idgen.NewSequential("gear"),
	})
	s.Require().NoError(err)
	s.repo = repo
}

func (s *SheetRepositoryStoreErrorTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *SheetRepositoryStoreErrorTestSuite) TestLoadPropagatesStoreFailure() {
	s.mockStore.EXPECT().
		Get(s.ctx, sheet.Key(testCharID, sheet.SliceLevel)).
		Return(nil, errors.Unavailable("connection refused"))

	_, err := s.repo.Load(s.ctx, sheet.LoadInput{CharacterID: testCharID})
	s.Require().Error(err)
	s.True(errors.IsUnavailable(err))
}

func (s *SheetRepositoryStoreErrorTestSuite) TestSaveStopsAtFirstFailure() {
	state := builders.NewStateBuilder().Build()

	gomock.InOrder(
		s.mockStore.EXPECT().Set(s.ctx, sheet.Key(testCharID, sheet.SliceLevel), []byte("1")).Return(nil),
		s.mockStore.EXPECT().Set(s.ctx, sheet.Key(testCharID, sheet.SliceHP), gomock.Any()).
			Return(errors.Internal("disk full")),
	)

	out, err := s.repo.Save(s.ctx, sheet.SaveInput{
		CharacterID: testCharID,
		State:       state,
		Slices:      []sheet.Slice{sheet.SliceLevel, sheet.SliceHP, sheet.SliceNotes},
	})
	s.Require().Error(err)
	s.Equal([]sheet.Slice{sheet.SliceLevel}, out.Written)
}

func (s *SheetRepositoryStoreErrorTestSuite) TestDeleteRemovesEveryKey() {
	keys := make([]any, 0, len(sheet.AllSlices))
	for _, slice := range sheet.AllSlices {
		keys = append(keys, sheet.Key(testCharID, slice))
	}
	s.mockStore.EXPECT().Delete(s.ctx, keys...).Return(nil)

	_, err := s.repo.Delete(s.ctx, sheet.DeleteInput{CharacterID: testCharID})
	s.NoError(err)
}

func TestSheetRepositoryStoreErrorSuite(t *testing.T) {
	suite.Run(t, new(SheetRepositoryStoreErrorTestSuite))
}
