package pool

import (
	"fmt"

	"github.com/KirkDiggler/prizedraw/internal/models"
)

// Pool is the authoritative list of prizes and their drawn status.
// It is not safe for concurrent use; the board serializes access.
type Pool struct {
	prizes []models.Prize
	index  map[string]int
}

// New creates a pool from records. Duplicate ids are rejected.
func New(records []models.Prize) (*Pool, error) {
	p := &Pool{}
	if err := p.Replace(records); err != nil {
		return nil, err
	}
	return p, nil
}

// Replace installs a new set of records, discarding the previous pool
func (p *Pool) Replace(records []models.Prize) error {
	index := make(map[string]int, len(records))
	prizes := make([]models.Prize, len(records))
	for i, r := range records {
		if _, ok := index[r.ID]; ok {
			return fmt.Errorf("%w: %s", ErrDuplicateID, r.ID)
		}
		index[r.ID] = i
		prizes[i] = r
	}
	p.prizes = prizes
	p.index = index
	return nil
}

// Records returns a copy of every prize in load order
func (p *Pool) Records() []models.Prize {
	out := make([]models.Prize, len(p.prizes))
	copy(out, p.prizes)
	return out
}

// Available returns copies of the prizes that have not been drawn, in load order
func (p *Pool) Available() []models.Prize {
	out := make([]models.Prize, 0, len(p.prizes))
	for _, prize := range p.prizes {
		if prize.IsAvailable() {
			out = append(out, prize)
		}
	}
	return out
}

// AvailableCount returns the number of undrawn prizes
func (p *Pool) AvailableCount() int {
	count := 0
	for _, prize := range p.prizes {
		if prize.IsAvailable() {
			count++
		}
	}
	return count
}

// DrawnCount returns the number of drawn prizes
func (p *Pool) DrawnCount() int {
	return len(p.prizes) - p.AvailableCount()
}

// Len returns the size of the pool
func (p *Pool) Len() int {
	return len(p.prizes)
}

// MarkDrawn flags the prize with the given id as drawn
func (p *Pool) MarkDrawn(id string) error {
	i, ok := p.index[id]
	if !ok {
		return fmt.Errorf("%w: %s", ErrPrizeNotFound, id)
	}
	if p.prizes[i].Drawn {
		return fmt.Errorf("%w: %s", ErrAlreadyDrawn, id)
	}
	p.prizes[i].Drawn = true
	return nil
}

// ClearDrawn makes every prize available again. Membership is unchanged.
func (p *Pool) ClearDrawn() {
	for i := range p.prizes {
		p.prizes[i].Drawn = false
	}
}
