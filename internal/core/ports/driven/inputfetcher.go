package driven

import "context"

// InputFetcher downloads puzzle inputs from the puzzle site.
// Implementations own transport concerns such as rate limiting and
// authentication; callers just name the event day they want.
type InputFetcher interface {
	// FetchInput downloads the personal input for the given event year
	// and day using the supplied session token.
	// Returns domain.ErrSessionInvalid when the site rejects the token
	// and domain.ErrPuzzleUnavailable when the day has no input yet.
	FetchInput(ctx context.Context, session string, year, day int) (string, error)
}
