package idgen_test

import (
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/rpg-sheet/internal/pkg/idgen"
)

type IDGenTestSuite struct {
	suite.Suite
}

func TestIDGenSuite(t *testing.T) {
	suite.Run(t, new(IDGenTestSuite))
}

func (s *IDGenTestSuite) TestUUIDWithPrefix() {
	gen := idgen.NewUUID("gear")

	first := gen.Generate()
	second := gen.Generate()

	s.True(strings.HasPrefix(first, "gear_"))
	s.Len(first, len("gear_")+36)
	s.NotEqual(first, second)
}

func (s *IDGenTestSuite) TestUUIDWithoutPrefix() {
	s.Len(idgen.NewUUID("").Generate(), 36)
}

func (s *IDGenTestSuite) TestSequential() {
	gen := idgen.NewSequential("spell")
	s.Equal("spell_1", gen.Generate())
	s.Equal("spell_2", gen.Generate())

	bare := idgen.NewSequential("")
	s.Equal("1", bare.Generate())
}

func (s *IDGenTestSuite) TestSequentialConcurrent() {
	gen := idgen.NewSequential("roll")
	seen := sync.Map{}

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, dup := seen.LoadOrStore(gen.Generate(), true)
			s.False(dup)
		}()
	}
	wg.Wait()
}
