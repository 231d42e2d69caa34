package driven

// InputSource loads puzzle input text from a backing store.
// The core runner stays unaware of where inputs live; the filesystem
// adapter is the usual implementation.
type InputSource interface {
	// Load reads the input at path and returns its text unmodified.
	// A missing file is reported as domain.ErrInputNotFound and an
	// unreadable one as domain.ErrInputUnreadable.
	Load(path string) (string, error)
}

// InputStore persists downloaded inputs alongside reading them.
type InputStore interface {
	InputSource

	// Exists reports whether an input is already present at path.
	Exists(path string) bool

	// Save writes input text to path, creating parent directories
	// as needed.
	Save(path, text string) error
}
