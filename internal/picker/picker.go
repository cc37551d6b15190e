package picker

import (
	cryptoRand "crypto/rand"
	"math/big"
	"math/rand/v2"
	"sync"
)

//go:generate mockgen -package=mocks -destination=mocks/mock_picker.go github.com/KirkDiggler/prizedraw/internal/picker Picker

// Picker chooses uniformly among n candidates
type Picker interface {
	// Intn returns a uniformly random index in [0, n). It returns 0 when n <= 0.
	Intn(n int) int
}

// Config for the picker
type Config struct {
	// Optional seed for reproducible draws. Zero means crypto randomness.
	Seed uint64
}

// New creates a picker. Without a seed it reads from crypto/rand.
func New(cfg *Config) Picker {
	if cfg != nil && cfg.Seed != 0 {
		return &seededPicker{
			random: rand.New(rand.NewPCG(cfg.Seed, 0)),
		}
	}
	return cryptoPicker{}
}

type cryptoPicker struct{}

func (cryptoPicker) Intn(n int) int {
	if n <= 1 {
		return 0
	}
	v, err := cryptoRand.Int(cryptoRand.Reader, big.NewInt(int64(n)))
	if err != nil {
		// fall back to the runtime-seeded generator
		return rand.IntN(n)
	}
	return int(v.Int64())
}

// seededPicker is safe for concurrent use; rand.Rand is not
type seededPicker struct {
	mu     sync.Mutex
	random *rand.Rand
}

func (p *seededPicker) Intn(n int) int {
	if n <= 1 {
		return 0
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.random.IntN(n)
}
