package pool

import (
	"testing"

	"github.com/KirkDiggler/prizedraw/internal/models"
	"github.com/stretchr/testify/suite"
)

type PoolTestSuite struct {
	suite.Suite
	pool *Pool
}

func (s *PoolTestSuite) SetupTest() {
	p, err := New([]models.Prize{
		{ID: "p1", Name: "A"},
		{ID: "p2", Name: "B"},
		{ID: "p3", Name: "C"},
	})
	s.Require().NoError(err)
	s.pool = p
}

func TestPoolTestSuite(t *testing.T) {
	suite.Run(t, new(PoolTestSuite))
}

func (s *PoolTestSuite) TestNewRejectsDuplicateIDs() {
	_, err := New([]models.Prize{{ID: "x", Name: "A"}, {ID: "x", Name: "B"}})
	s.ErrorIs(err, ErrDuplicateID)
}

func (s *PoolTestSuite) TestDuplicateNamesAreDistinctPrizes() {
	p, err := New([]models.Prize{{ID: "x", Name: "Mug"}, {ID: "y", Name: "Mug"}})
	s.Require().NoError(err)
	s.Equal(2, p.AvailableCount())
}

func (s *PoolTestSuite) TestMarkDrawnRemovesFromAvailable() {
	s.Require().NoError(s.pool.MarkDrawn("p2"))

	available := s.pool.Available()
	s.Len(available, 2)
	s.Equal("p1", available[0].ID)
	s.Equal("p3", available[1].ID)
	s.Equal(1, s.pool.DrawnCount())
	s.Equal(3, s.pool.Len())
}

func (s *PoolTestSuite) TestMarkDrawnTwiceFails() {
	s.Require().NoError(s.pool.MarkDrawn("p1"))
	s.ErrorIs(s.pool.MarkDrawn("p1"), ErrAlreadyDrawn)
}

func (s *PoolTestSuite) TestMarkDrawnUnknownID() {
	s.ErrorIs(s.pool.MarkDrawn("nope"), ErrPrizeNotFound)
}

func (s *PoolTestSuite) TestClearDrawnKeepsMembership() {
	s.Require().NoError(s.pool.MarkDrawn("p1"))
	s.Require().NoError(s.pool.MarkDrawn("p3"))

	s.pool.ClearDrawn()

	s.Equal(3, s.pool.AvailableCount())
	records := s.pool.Records()
	s.Equal([]string{"A", "B", "C"}, []string{records[0].Name, records[1].Name, records[2].Name})
}

func (s *PoolTestSuite) TestReplaceDiscardsPreviousPool() {
	s.Require().NoError(s.pool.MarkDrawn("p1"))

	s.Require().NoError(s.pool.Replace([]models.Prize{{ID: "q1", Name: "Z"}}))

	s.Equal(1, s.pool.Len())
	s.ErrorIs(s.pool.MarkDrawn("p1"), ErrPrizeNotFound)
	s.NoError(s.pool.MarkDrawn("q1"))
}

func (s *PoolTestSuite) TestRecordsAreCopies() {
	records := s.pool.Records()
	records[0].Drawn = true

	s.Equal(3, s.pool.AvailableCount())
}
