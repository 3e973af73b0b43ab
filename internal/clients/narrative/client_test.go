package narrative_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/rpg-sheet/internal/clients/narrative"
	"github.com/KirkDiggler/rpg-sheet/internal/errors"
)

type NarrativeClientTestSuite struct {
	suite.Suite
	ctx   context.Context
	input *narrative.GenerateInput
}

func (s *NarrativeClientTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.input = &narrative.GenerateInput{
		Character: narrative.Character{
			Name:     "Korgrim",
			Gender:   "male",
			Ancestry: "Minotaur",
			Class:    "Cleric",
			Level:    3,
			HP:       20,
			MaxHP:    38,
			Equipped: []string{"Scale Mail", "Steel Shield"},
		},
		Actions: []string{"Cast heal"},
	}
}

func (s *NarrativeClientTestSuite) newClient(url string) narrative.Client {
	c, err := narrative.New(&narrative.Config{
		BaseURL: url,
		APIKey:  "test-key",
		Model:   "test-model",
		Timeout: time.Second,
	})
	s.Require().NoError(err)
	return c
}

func (s *NarrativeClientTestSuite) TestGenerateSuccess() {
	var got map[string]any
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.Equal("/chat/completions", r.URL.Path)
		s.Equal("Bearer test-key", r.Header.Get("Authorization"))
		s.NoError(json.NewDecoder(r.Body).Decode(&got))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"choices":[{"message":{"role":"assistant","content":"\"Korgrim called down Gorum's mercy on his own wounds.\"\nExtra"}}]}`))
	}))
	defer server.Close()

	out, err := s.newClient(server.URL).Generate(s.ctx, s.input)
	s.Require().NoError(err)
	s.False(out.Fallback)
	s.Equal("Korgrim called down Gorum's mercy on his own wounds.", out.Text)

	s.Equal("test-model", got["model"])
	messages, ok := got["messages"].([]any)
	s.Require().True(ok)
	s.Len(messages, 2)
	user := messages[1].(map[string]any)
	s.Equal("user", user["role"])
	s.Contains(user["content"], "Korgrim (male), level 3 Minotaur Cleric")
	s.Contains(user["content"], "Hit points: 20 of 38")
	s.Contains(user["content"], "Cast heal")
}

func (s *NarrativeClientTestSuite) TestFallbackOnFailure() {
	testCases := []struct {
		name    string
		handler http.HandlerFunc
	}{
		{
			name: "server error",
			handler: func(w http.ResponseWriter, _ *http.Request) {
				http.Error(w, "overloaded", http.StatusServiceUnavailable)
			},
		},
		{
			name: "empty content",
			handler: func(w http.ResponseWriter, _ *http.Request) {
				_, _ = w.Write([]byte(`{"choices":[]}`))
			},
		},
		{
			name: "not json",
			handler: func(w http.ResponseWriter, _ *http.Request) {
				_, _ = w.Write([]byte(`<html>`))
			},
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			server := httptest.NewServer(tc.handler)
			defer server.Close()

			out, err := s.newClient(server.URL).Generate(s.ctx, s.input)
			s.Require().NoError(err)
			s.True(out.Fallback)
			s.Equal(narrative.FallbackSentence, out.Text)
		})
	}
}

func (s *NarrativeClientTestSuite) TestFallbackWithoutAPIKey() {
	c, err := narrative.New(&narrative.Config{BaseURL: "http://127.0.0.1:1"})
	s.Require().NoError(err)

	out, err := c.Generate(s.ctx, s.input)
	s.Require().NoError(err)
	s.True(out.Fallback)
}

func (s *NarrativeClientTestSuite) TestTimeoutFallsBack() {
	server := httptest.NewServer(http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	}))
	defer server.Close()

	c, err := narrative.New(&narrative.Config{BaseURL: server.URL, APIKey: "k", Timeout: 50 * time.Millisecond})
	s.Require().NoError(err)

	out, err := c.Generate(s.ctx, s.input)
	s.Require().NoError(err)
	s.True(out.Fallback)
}

func (s *NarrativeClientTestSuite) TestCancelledContextIsAnError() {
	server := httptest.NewServer(http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	}))
	defer server.Close()

	ctx, cancel := context.WithCancel(s.ctx)
	go func() {
		time.Sleep(20 * time.Millisecond)
		cancel()
	}()

	_, err := s.newClient(server.URL).Generate(ctx, s.input)
	s.Require().Error(err)
	s.Equal(errors.CodeCanceled, errors.GetCode(err))
	s.ErrorIs(err, context.Canceled)
}

func (s *NarrativeClientTestSuite) TestRequiresActions() {
	_, err := s.newClient("http://unused").Generate(s.ctx, &narrative.GenerateInput{})
	s.True(errors.IsInvalidArgument(err))
}

func (s *NarrativeClientTestSuite) TestBuildUserPromptBatch() {
	s.input.Actions = []string{"Equipped Steel Shield", "Rested"}
	prompt := narrative.BuildUserPrompt(s.input)
	s.Contains(prompt, "1. Equipped Steel Shield\n2. Rested")
	s.Contains(prompt, "single sentence")
}

func TestNarrativeClientSuite(t *testing.T) {
	suite.Run(t, new(NarrativeClientTestSuite))
}
