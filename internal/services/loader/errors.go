package loader

// LoaderError is a custom error type for configuration loading errors
type LoaderError string

// Error implements the error interface
func (e LoaderError) Error() string {
	return string(e)
}

// Define errors
const (
	ErrLoadFailed LoaderError = "failed to load prize configuration"
	ErrNilConfig  LoaderError = "config cannot be nil"
	ErrNilSource  LoaderError = "source cannot be nil"
	ErrNilUUID    LoaderError = "UUID generator cannot be nil"
)
