package portrait_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/rpg-sheet/internal/clients/portrait"
	"github.com/KirkDiggler/rpg-sheet/internal/errors"
)

type PortraitClientTestSuite struct {
	suite.Suite
	ctx context.Context
}

func (s *PortraitClientTestSuite) SetupTest() {
	s.ctx = context.Background()
}

func (s *PortraitClientTestSuite) TestGenerateSuccess() {
	var got map[string]any
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.Equal("/images/generations", r.URL.Path)
		s.Equal("Bearer key", r.Header.Get("Authorization"))
		s.NoError(json.NewDecoder(r.Body).Decode(&got))
		_, _ = w.Write([]byte(`{"created":1,"data":[{"url":"https://img.example/korgrim.png"}]}`))
	}))
	defer server.Close()

	c, err := portrait.New(&portrait.Config{BaseURL: server.URL + "/", APIKey: "key", Size: "512x512"})
	s.Require().NoError(err)

	out, err := c.Generate(s.ctx, &portrait.GenerateInput{Prompt: "a minotaur"})
	s.Require().NoError(err)
	s.Equal("https://img.example/korgrim.png", out.URL)
	s.Equal("a minotaur", got["prompt"])
	s.Equal("512x512", got["size"])
	s.EqualValues(1, got["n"])
	s.Equal("dall-e-3", got["model"])
}

func (s *PortraitClientTestSuite) TestGenerateFailures() {
	testCases := []struct {
		name    string
		handler http.HandlerFunc
	}{
		{
			name: "rate limited",
			handler: func(w http.ResponseWriter, _ *http.Request) {
				http.Error(w, `{"error":"rate limit"}`, http.StatusTooManyRequests)
			},
		},
		{
			name: "missing url",
			handler: func(w http.ResponseWriter, _ *http.Request) {
				_, _ = w.Write([]byte(`{"data":[]}`))
			},
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			server := httptest.NewServer(tc.handler)
			defer server.Close()

			c, err := portrait.New(&portrait.Config{BaseURL: server.URL, APIKey: "key"})
			s.Require().NoError(err)

			_, err = c.Generate(s.ctx, &portrait.GenerateInput{Prompt: "a minotaur"})
			s.Require().Error(err)
			s.True(errors.IsUnavailable(err))
		})
	}
}

func (s *PortraitClientTestSuite) TestNotConfigured() {
	c, err := portrait.New(&portrait.Config{})
	s.Require().NoError(err)

	_, err = c.Generate(s.ctx, &portrait.GenerateInput{Prompt: "a minotaur"})
	s.True(errors.IsUnavailable(err))
}

func (s *PortraitClientTestSuite) TestEmptyPrompt() {
	c, err := portrait.New(&portrait.Config{APIKey: "key"})
	s.Require().NoError(err)

	_, err = c.Generate(s.ctx, &portrait.GenerateInput{Prompt: "  "})
	s.True(errors.IsInvalidArgument(err))
}

func TestPortraitClientSuite(t *testing.T) {
	suite.Run(t, new(PortraitClientTestSuite))
}
