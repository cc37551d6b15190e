package board

// BoardError is a custom error type for board errors
type BoardError string

// Error implements the error interface
func (e BoardError) Error() string {
	return string(e)
}

// Define errors
const (
	ErrDrawInProgress BoardError = "a draw is in progress"
	ErrNilConfirmer   BoardError = "confirmer cannot be nil"
	ErrNilConfig      BoardError = "config cannot be nil"
	ErrNilLoader      BoardError = "loader cannot be nil"
	ErrNilMessages    BoardError = "messaging service cannot be nil"
	ErrNilPicker      BoardError = "picker cannot be nil"
	ErrNilClock       BoardError = "clock cannot be nil"
	ErrNilScheduler   BoardError = "scheduler cannot be nil"
	ErrNilUUID        BoardError = "UUID generator cannot be nil"
	ErrNilPublisher   BoardError = "publisher cannot be nil"
	ErrInvalidWinTone BoardError = "unknown win tone"
)
