package main

import (
	"io"
	"testing"
	"time"

	"ring-queue/ring"

	"github.com/benbjohnson/clock"
	"github.com/sirupsen/logrus"
	hooks "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/suite"
	"go.uber.org/goleak"
)

type DemoTestSuite struct {
	suite.Suite

	clock *clock.Mock
	hook  *hooks.Hook
	demo  *demo
}

func TestDemoTestSuite(t *testing.T) {
	suite.Run(t, new(DemoTestSuite))
}

func (s *DemoTestSuite) SetupTest() {
	logger := logrus.New()
	logger.SetOutput(io.Discard)

	s.hook = hooks.NewLocal(logger)
	s.clock = clock.NewMock()
	s.demo = &demo{
		log:      logrus.NewEntry(logger),
		clock:    s.clock,
		capacity: ring.DefaultCapacity,
	}
}

func (s *DemoTestSuite) TearDownTest() {
	defer goleak.VerifyNone(s.T())
	s.hook.Reset()
}

func (s *DemoTestSuite) TestRunAll() {
	err := s.demo.run([]string{"all"})
	s.Require().NoError(err)

	finished := 0
	for _, e := range s.hook.AllEntries() {
		if e.Message == "scenario finished" {
			finished++
		}
	}
	s.Equal(len(catalogue), finished)
}

func (s *DemoTestSuite) TestRunSelection() {
	err := s.demo.run([]string{"basic", " rotation"}) // spaces are trimmed
	s.Require().NoError(err)

	var names []string
	for _, e := range s.hook.AllEntries() {
		if e.Message == "scenario finished" {
			names = append(names, e.Data["scenario"].(string))
		}
	}
	s.Equal([]string{"basic", "rotation"}, names)
}

func (s *DemoTestSuite) TestRunUnknownScenario() {
	err := s.demo.run([]string{"basic", "nope"})
	s.Require().Error(err)
	s.Contains(err.Error(), `unknown scenario "nope"`)
}

func (s *DemoTestSuite) TestBasic() {
	summary := s.demo.basic(s.demo.log)

	s.Equal([]int64{20, 30}, summary.Contents)
	s.Equal(2, summary.Len)

	s.Require().NotNil(summary.Front)
	s.Equal(int64(20), *summary.Front)
}

func (s *DemoTestSuite) TestBulk() {
	summary := s.demo.bulk(s.demo.log)

	// The scenario ends on a cleared queue.
	s.Zero(summary.Len)
	s.Nil(summary.Front)

	var batch any
	for _, e := range s.hook.AllEntries() {
		if b, ok := e.Data["batch"]; ok {
			batch = b
		}
	}
	s.Equal([]int64{1, 2, 3, 4, 5}, batch)
}

func (s *DemoTestSuite) TestSearch() {
	summary := s.demo.search(s.demo.log)
	s.Equal(10, summary.Len)

	var positions []int
	for _, e := range s.hook.AllEntries() {
		if p, ok := e.Data["position"]; ok {
			positions = append(positions, p.(int))
		}
	}
	s.Equal([]int{4, -1}, positions)
}

func (s *DemoTestSuite) TestRotation() {
	summary := s.demo.rotation(s.demo.log)

	// 1..5 rotated by 2, then one effective step more. The negative
	// rotation changes nothing.
	s.Equal([]int64{4, 5, 1, 2, 3}, summary.Contents)
}

func (s *DemoTestSuite) TestBounds() {
	summary := s.demo.bounds(s.demo.log)
	s.Equal(3, summary.Len)

	var kinds []string
	for _, e := range s.hook.AllEntries() {
		if e.Message == "operation refused" {
			kinds = append(kinds, e.Data["kind"].(string))
		}
	}
	s.Equal([]string{"empty queue", "out of range", "out of range"}, kinds)
}

func (s *DemoTestSuite) TestCopying() {
	summary := s.demo.copying(s.demo.log)

	// After reassignment the clone mirrors the mutated original.
	s.Equal([]int64{4, 5, 6, 7}, summary.Contents)
}

func (s *DemoTestSuite) TestGrowth() {
	summary := s.demo.growth(s.demo.log)

	s.Equal(4*ring.DefaultCapacity, summary.Cap)
	s.Equal(2*ring.DefaultCapacity+1, summary.Len)

	s.Require().NotNil(summary.Front)
	s.Equal(int64(1), *summary.Front)
}

func (s *DemoTestSuite) TestPauseWaitsForClock() {
	s.demo.delay = time.Second

	done := make(chan struct{})
	go func() {
		defer close(done)
		s.demo.pause()
	}()

	time.Sleep(50 * time.Millisecond) // let pause reach the clock
	s.clock.Add(time.Second)

	select {
	case <-done:
	case <-time.After(time.Second):
		s.FailNow("pause did not return")
	}
}

func (s *DemoTestSuite) TestPauseZeroDelay() {
	// Returning at all is the assertion: with no delay configured,
	// pause must not touch the clock, and the mock never advances.
	s.demo.pause()
}
