package driving

import "context"

// InputDownloader fetches puzzle inputs and stores them locally.
type InputDownloader interface {
	// Download fetches the input for a day and writes it to the
	// conventional per-day location, returning the path written.
	// An existing file is left untouched unless force is set.
	Download(ctx context.Context, day int, force bool) (string, error)
}
