package chronicle_test

import (
	"context"
	"sync"
	"testing"
	"time"

	rpgevents "github.com/KirkDiggler/rpg-toolkit/events"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/rpg-sheet/internal/clients/narrative"
	narrativemock "github.com/KirkDiggler/rpg-sheet/internal/clients/narrative/mock"
	"github.com/KirkDiggler/rpg-sheet/internal/errors"
	"github.com/KirkDiggler/rpg-sheet/internal/events"
	"github.com/KirkDiggler/rpg-sheet/internal/orchestrators/chronicle"
	"github.com/KirkDiggler/rpg-sheet/internal/orchestrators/sheet"
	sheetmock "github.com/KirkDiggler/rpg-sheet/internal/orchestrators/sheet/mock"
	"github.com/KirkDiggler/rpg-sheet/internal/testutils/builders"
)

type OrchestratorTestSuite struct {
	suite.Suite
	ctx           context.Context
	ctrl          *gomock.Controller
	bus           rpgevents.EventBus
	mockSheets    *sheetmock.MockService
	mockNarrative *narrativemock.MockClient
	orchestrator  chronicle.Service
}

func (s *OrchestratorTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.ctrl = gomock.NewController(s.T())
	s.bus = rpgevents.NewBus()
	s.mockSheets = sheetmock.NewMockService(s.ctrl)
	s.mockNarrative = narrativemock.NewMockClient(s.ctrl)
	s.orchestrator = s.newChronicle(time.Hour)
}

func (s *OrchestratorTestSuite) TearDownTest() {
	s.orchestrator.Stop()
	s.ctrl.Finish()
}

func (s *OrchestratorTestSuite) newChronicle(window time.Duration) chronicle.Service {
	c, err := chronicle.NewOrchestrator(&chronicle.Config{
		EventBus:        s.bus,
		SheetService:    s.mockSheets,
		NarrativeClient: s.mockNarrative,
		Window:          window,
	})
	s.Require().NoError(err)
	s.Require().NoError(c.Start(s.ctx))
	return c
}

func (s *OrchestratorTestSuite) publish(characterID, action, description string) {
	s.Require().NoError(s.bus.Publish(s.ctx, events.NewActionEvent(characterID, action, description)))
}

func (s *OrchestratorTestSuite) expectSheet(characterID string) {
	state := builders.NewStateBuilder().
		WithCharacterID(characterID).
		WithHP(12, 20).
		Build()
	state.Profile.Name = "Sister Ilse"

	s.mockSheets.EXPECT().
		GetSheet(gomock.Any(), &sheet.GetSheetInput{CharacterID: characterID}).
		Return(&sheet.SheetOutput{State: state}, nil)
}

func (s *OrchestratorTestSuite) TestConfigValidation() {
	testCases := []struct {
		name   string
		config *chronicle.Config
	}{
		{name: "nil config", config: nil},
		{name: "missing bus", config: &chronicle.Config{SheetService: s.mockSheets, NarrativeClient: s.mockNarrative}},
		{name: "missing sheets", config: &chronicle.Config{EventBus: s.bus, NarrativeClient: s.mockNarrative}},
		{name: "missing narrative", config: &chronicle.Config{EventBus: s.bus, SheetService: s.mockSheets}},
		{name: "negative window", config: &chronicle.Config{
			EventBus: s.bus, SheetService: s.mockSheets, NarrativeClient: s.mockNarrative, Window: -time.Second,
		}},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			_, err := chronicle.NewOrchestrator(tc.config)
			s.Require().Error(err)
			s.True(errors.IsInvalidArgument(err))
		})
	}
}

func (s *OrchestratorTestSuite) TestStartTwiceFails() {
	err := s.orchestrator.Start(s.ctx)
	s.Require().Error(err)
	s.True(errors.IsFailedPrecondition(err))
}

func (s *OrchestratorTestSuite) TestFlushBatchesActionsIntoOneStoryLine() {
	s.publish("char_1", events.ActionCast, "Cast heal")
	s.publish("char_1", events.ActionHitPoints, "Took 4 damage")

	s.expectSheet("char_1")
	s.mockNarrative.EXPECT().
		Generate(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, in *narrative.GenerateInput) (*narrative.GenerateOutput, error) {
			s.Equal([]string{"Cast heal", "Took 4 damage"}, in.Actions)
			s.Equal("Sister Ilse", in.Character.Name)
			s.Equal(12, in.Character.HP)
			s.Equal(20, in.Character.MaxHP)
			return &narrative.GenerateOutput{Text: "Ilse mended herself mid-fight."}, nil
		})
	s.mockSheets.EXPECT().
		AppendStoryLog(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, in *sheet.AppendStoryLogInput) (*sheet.AppendStoryLogOutput, error) {
			s.Equal("char_1", in.CharacterID)
			s.Equal("Ilse mended herself mid-fight.", in.Log.Text)
			s.Equal([]string{"Cast heal", "Took 4 damage"}, in.Log.Actions)
			s.False(in.Log.Fallback)
			return &sheet.AppendStoryLogOutput{Log: in.Log}, nil
		})

	s.Require().NoError(s.orchestrator.Flush(s.ctx))
}

func (s *OrchestratorTestSuite) TestQuietActionsAreIgnored() {
	s.publish("char_1", events.ActionNotes, "Updated notes")
	s.publish("char_1", events.ActionStoryCleared, "Cleared the story log")

	// no GetSheet or Generate expected
	s.Require().NoError(s.orchestrator.Flush(s.ctx))
}

func (s *OrchestratorTestSuite) TestFallbackIsStored() {
	s.publish("char_1", events.ActionRest, "Rested and prayed for a new day of spells")

	s.expectSheet("char_1")
	s.mockNarrative.EXPECT().
		Generate(gomock.Any(), gomock.Any()).
		Return(&narrative.GenerateOutput{Text: "Rested and prayed for a new day of spells.", Fallback: true}, nil)
	s.mockSheets.EXPECT().
		AppendStoryLog(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, in *sheet.AppendStoryLogInput) (*sheet.AppendStoryLogOutput, error) {
			s.True(in.Log.Fallback)
			return &sheet.AppendStoryLogOutput{Log: in.Log}, nil
		})

	s.Require().NoError(s.orchestrator.Flush(s.ctx))
}

func (s *OrchestratorTestSuite) TestEachCharacterGetsItsOwnLine() {
	s.publish("char_1", events.ActionCast, "Cast heal")
	s.publish("char_2", events.ActionGearAdded, "Picked up Rope")
	s.publish("char_1", events.ActionRest, "Rested")

	s.expectSheet("char_1")
	s.expectSheet("char_2")

	generated := map[string][]string{}
	s.mockNarrative.EXPECT().
		Generate(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, in *narrative.GenerateInput) (*narrative.GenerateOutput, error) {
			return &narrative.GenerateOutput{Text: in.Actions[0]}, nil
		}).
		Times(2)
	s.mockSheets.EXPECT().
		AppendStoryLog(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, in *sheet.AppendStoryLogInput) (*sheet.AppendStoryLogOutput, error) {
			generated[in.CharacterID] = in.Log.Actions
			return &sheet.AppendStoryLogOutput{Log: in.Log}, nil
		}).
		Times(2)

	s.Require().NoError(s.orchestrator.Flush(s.ctx))
	s.Equal([]string{"Cast heal", "Rested"}, generated["char_1"])
	s.Equal([]string{"Picked up Rope"}, generated["char_2"])
}

func (s *OrchestratorTestSuite) TestBatchFiresAfterQuietWindow() {
	s.orchestrator.Stop()
	s.orchestrator = s.newChronicle(20 * time.Millisecond)

	stored := make(chan string, 1)
	s.expectSheet("char_1")
	s.mockNarrative.EXPECT().
		Generate(gomock.Any(), gomock.Any()).
		Return(&narrative.GenerateOutput{Text: "Ilse reached level 2."}, nil)
	s.mockSheets.EXPECT().
		AppendStoryLog(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, in *sheet.AppendStoryLogInput) (*sheet.AppendStoryLogOutput, error) {
			stored <- in.Log.Text
			return &sheet.AppendStoryLogOutput{Log: in.Log}, nil
		})

	s.publish("char_1", events.ActionLevel, "Reached level 2")

	select {
	case text := <-stored:
		s.Equal("Ilse reached level 2.", text)
	case <-time.After(2 * time.Second):
		s.Fail("batch never fired")
	}
}

func (s *OrchestratorTestSuite) TestNewerBatchSupersedesInFlightRequest() {
	started := make(chan struct{})

	s.mockSheets.EXPECT().
		GetSheet(gomock.Any(), &sheet.GetSheetInput{CharacterID: "char_1"}).
		Return(&sheet.SheetOutput{State: builders.NewStateBuilder().WithCharacterID("char_1").Build()}, nil).
		Times(2)
	s.mockNarrative.EXPECT().
		Generate(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, in *narrative.GenerateInput) (*narrative.GenerateOutput, error) {
			if len(in.Actions) == 1 {
				close(started)
				<-ctx.Done()
				return nil, errors.WrapWithCode(ctx.Err(), errors.CodeCanceled, "narrative request abandoned")
			}
			return &narrative.GenerateOutput{Text: "Ilse cast and then rested."}, nil
		}).
		Times(2)
	s.mockSheets.EXPECT().
		AppendStoryLog(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, in *sheet.AppendStoryLogInput) (*sheet.AppendStoryLogOutput, error) {
			s.Equal([]string{"Cast heal", "Rested"}, in.Log.Actions)
			return &sheet.AppendStoryLogOutput{Log: in.Log}, nil
		})

	s.publish("char_1", events.ActionCast, "Cast heal")

	firstDone := make(chan error, 1)
	go func() {
		firstDone <- s.orchestrator.Flush(s.ctx)
	}()

	select {
	case <-started:
	case <-time.After(2 * time.Second):
		s.FailNow("first request never started")
	}

	s.publish("char_1", events.ActionRest, "Rested")
	s.Require().NoError(s.orchestrator.Flush(s.ctx))

	select {
	case err := <-firstDone:
		s.NoError(err)
	case <-time.After(2 * time.Second):
		s.Fail("superseded request never returned")
	}
}

func (s *OrchestratorTestSuite) TestSupersededStoreNeitherRepeatsNorLosesActions() {
	appendStarted := make(chan struct{})
	var (
		mu     sync.Mutex
		calls  int
		stored [][]string
	)

	s.mockSheets.EXPECT().
		GetSheet(gomock.Any(), &sheet.GetSheetInput{CharacterID: "char_1"}).
		Return(&sheet.SheetOutput{State: builders.NewStateBuilder().WithCharacterID("char_1").Build()}, nil).
		Times(3)
	s.mockNarrative.EXPECT().
		Generate(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, in *narrative.GenerateInput) (*narrative.GenerateOutput, error) {
			return &narrative.GenerateOutput{Text: in.Actions[0]}, nil
		}).
		Times(3)
	s.mockSheets.EXPECT().
		AppendStoryLog(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, in *sheet.AppendStoryLogInput) (*sheet.AppendStoryLogOutput, error) {
			mu.Lock()
			calls++
			first := calls == 1
			if !first {
				stored = append(stored, in.Log.Actions)
			}
			mu.Unlock()

			if first {
				// held open until the next batch cancels it
				close(appendStarted)
				<-ctx.Done()
				return nil, errors.WrapWithCode(ctx.Err(), errors.CodeCanceled, "store interrupted")
			}
			return &sheet.AppendStoryLogOutput{Log: in.Log}, nil
		}).
		Times(3)

	s.publish("char_1", events.ActionCast, "Cast heal")

	firstDone := make(chan error, 1)
	go func() {
		firstDone <- s.orchestrator.Flush(s.ctx)
	}()

	select {
	case <-appendStarted:
	case <-time.After(2 * time.Second):
		s.FailNow("first store never started")
	}

	s.publish("char_1", events.ActionRest, "Rested")
	s.Require().NoError(s.orchestrator.Flush(s.ctx))

	select {
	case err := <-firstDone:
		s.NoError(err)
	case <-time.After(2 * time.Second):
		s.FailNow("superseded store never returned")
	}

	// the interrupted line comes back in the next batch
	s.Require().NoError(s.orchestrator.Flush(s.ctx))

	mu.Lock()
	defer mu.Unlock()
	s.Equal([][]string{{"Rested"}, {"Cast heal"}}, stored)
}

func (s *OrchestratorTestSuite) TestFlushHonorsContext() {
	ctx, cancel := context.WithCancel(s.ctx)

	s.mockSheets.EXPECT().
		GetSheet(gomock.Any(), gomock.Any()).
		Return(&sheet.SheetOutput{State: builders.NewStateBuilder().Build()}, nil)
	s.mockNarrative.EXPECT().
		Generate(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, _ *narrative.GenerateInput) (*narrative.GenerateOutput, error) {
			cancel()
			<-ctx.Done()
			return nil, errors.WrapWithCode(ctx.Err(), errors.CodeCanceled, "narrative request abandoned")
		})

	s.publish("char_1", events.ActionRest, "Rested")

	// Stop cancels the in-flight request so the flush goroutine can finish
	go func() {
		<-ctx.Done()
		s.orchestrator.Stop()
	}()

	err := s.orchestrator.Flush(ctx)
	s.Require().Error(err)
	s.Equal(errors.CodeCanceled, errors.GetCode(err))
}

func (s *OrchestratorTestSuite) TestStopDropsPendingActions() {
	s.publish("char_1", events.ActionRest, "Rested")
	s.orchestrator.Stop()

	// unsubscribed, so this never reaches the batcher
	s.publish("char_1", events.ActionCast, "Cast heal")
	s.Require().NoError(s.orchestrator.Flush(s.ctx))
}

func TestOrchestratorTestSuite(t *testing.T) {
	suite.Run(t, new(OrchestratorTestSuite))
}
