package domain

// DefaultYear is the Advent of Code event this binary targets.
const DefaultYear = 2023

// DefaultInputsDir is where downloaded puzzle inputs are stored.
const DefaultInputsDir = "inputs"

// Settings holds the persisted application configuration.
type Settings struct {
	// Session is the adventofcode.com session cookie used to download
	// personal puzzle inputs. Empty when not logged in.
	Session string `toml:"session"`

	// Year selects which event inputs are downloaded from.
	Year int `toml:"year"`

	// InputsDir is the directory downloaded inputs are written to.
	InputsDir string `toml:"inputs_dir"`
}

// DefaultSettings returns the configuration used before anything is saved.
func DefaultSettings() Settings {
	return Settings{
		Year:      DefaultYear,
		InputsDir: DefaultInputsDir,
	}
}

// HasSession reports whether a session token is configured.
func (s Settings) HasSession() bool {
	return s.Session != ""
}

// InputPathFor returns the conventional input path for a day under the
// configured inputs directory.
func (s Settings) InputPathFor(day int) string {
	dir := s.InputsDir
	if dir == "" {
		dir = DefaultInputsDir
	}
	return InputPathIn(dir, day)
}
