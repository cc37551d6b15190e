package ledger

import (
	"testing"
	"time"

	"github.com/KirkDiggler/prizedraw/internal/models"
	"github.com/stretchr/testify/suite"
)

type LedgerTestSuite struct {
	suite.Suite
	ledger  *Ledger
	testNow time.Time
}

func (s *LedgerTestSuite) SetupTest() {
	s.ledger = New("")
	s.testNow = time.Date(2025, 4, 5, 10, 0, 0, 0, time.UTC)
}

func TestLedgerTestSuite(t *testing.T) {
	suite.Run(t, new(LedgerTestSuite))
}

func (s *LedgerTestSuite) TestAppendNumbersAndPrepends() {
	first := s.ledger.Append(models.Prize{ID: "p1", Name: "A"}, s.testNow)
	second := s.ledger.Append(models.Prize{ID: "p2", Name: "B"}, s.testNow.Add(3*time.Second))

	s.Equal(1, first.Sequence)
	s.Equal(2, second.Sequence)
	s.Equal("10:00:03", second.Time)

	entries := s.ledger.Entries()
	s.Require().Len(entries, 2)
	s.Equal("B", entries[0].PrizeName)
	s.Equal("A", entries[1].PrizeName)
	s.Equal(2, s.ledger.Count())
}

func (s *LedgerTestSuite) TestClearResetsCounter() {
	s.ledger.Append(models.Prize{ID: "p1", Name: "A"}, s.testNow)
	s.ledger.Append(models.Prize{ID: "p2", Name: "B"}, s.testNow)

	s.ledger.Clear()

	s.Equal(0, s.ledger.Count())
	s.Equal(0, s.ledger.Len())
	s.Empty(s.ledger.Entries())

	entry := s.ledger.Append(models.Prize{ID: "p3", Name: "C"}, s.testNow)
	s.Equal(1, entry.Sequence)
}

func (s *LedgerTestSuite) TestCustomLayout() {
	l := New(time.Kitchen)
	entry := l.Append(models.Prize{ID: "p1", Name: "A"}, s.testNow)
	s.Equal("10:00AM", entry.Time)
}

func (s *LedgerTestSuite) TestEntriesAreCopies() {
	s.ledger.Append(models.Prize{ID: "p1", Name: "A"}, s.testNow)
	entries := s.ledger.Entries()
	entries[0].PrizeName = "changed"

	s.Equal("A", s.ledger.Entries()[0].PrizeName)
}
