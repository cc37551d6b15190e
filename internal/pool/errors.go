package pool

// PoolError is a custom error type for prize pool errors
type PoolError string

// Error implements the error interface
func (e PoolError) Error() string {
	return string(e)
}

const (
	ErrPrizeNotFound PoolError = "prize not found in pool"
	ErrAlreadyDrawn  PoolError = "prize has already been drawn"
	ErrDuplicateID   PoolError = "duplicate prize id in pool"
)
