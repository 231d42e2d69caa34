package services

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Gisleburt/advent-of-code-2023/internal/adapters/driven/storage/memory"
	"github.com/Gisleburt/advent-of-code-2023/internal/core/domain"
)

// stubFetcher returns a canned input and records what was asked for.
type stubFetcher struct {
	input   string
	err     error
	fetches int

	session string
	year    int
	day     int
}

func (s *stubFetcher) FetchInput(_ context.Context, session string, year, day int) (string, error) {
	s.fetches++
	s.session, s.year, s.day = session, year, day
	if s.err != nil {
		return "", s.err
	}
	return s.input, nil
}

// stubInputStore keeps inputs in a map.
type stubInputStore struct {
	files map[string]string
	saves int
}

func newStubInputStore() *stubInputStore {
	return &stubInputStore{files: map[string]string{}}
}

func (s *stubInputStore) Load(path string) (string, error) {
	text, ok := s.files[path]
	if !ok {
		return "", domain.ErrInputNotFound
	}
	return text, nil
}

func (s *stubInputStore) Exists(path string) bool {
	_, ok := s.files[path]
	return ok
}

func (s *stubInputStore) Save(path, text string) error {
	s.saves++
	s.files[path] = text
	return nil
}

func newTestDownloader(t *testing.T, session string, fetcher *stubFetcher, store *stubInputStore) *InputDownloader {
	t.Helper()
	settings := NewSettingsService(memory.NewSettingsStore())
	if session != "" {
		require.NoError(t, settings.SetSession(session))
	}
	return NewInputDownloader(settings, fetcher, store)
}

func TestInputDownloader_Download(t *testing.T) {
	fetcher := &stubFetcher{input: "1721\n979\n366\n"}
	store := newStubInputStore()
	downloader := newTestDownloader(t, "tok", fetcher, store)

	path, err := downloader.Download(context.Background(), 7, false)

	require.NoError(t, err)
	assert.Equal(t, filepath.Join("inputs", "d07.txt"), path)
	assert.Equal(t, "1721\n979\n366\n", store.files[path])
	assert.Equal(t, "tok", fetcher.session)
	assert.Equal(t, domain.DefaultYear, fetcher.year)
	assert.Equal(t, 7, fetcher.day)
}

func TestInputDownloader_Download_NoSession(t *testing.T) {
	fetcher := &stubFetcher{input: "x"}
	downloader := newTestDownloader(t, "", fetcher, newStubInputStore())

	_, err := downloader.Download(context.Background(), 7, false)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrNoSession)
	assert.Zero(t, fetcher.fetches)
}

func TestInputDownloader_Download_DayOutOfRange(t *testing.T) {
	fetcher := &stubFetcher{input: "x"}
	downloader := newTestDownloader(t, "tok", fetcher, newStubInputStore())

	for _, day := range []int{0, -1, 26, 99} {
		_, err := downloader.Download(context.Background(), day, false)

		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrInvalidArgument)
	}
	assert.Zero(t, fetcher.fetches)
}

func TestInputDownloader_Download_ExistingFileSkipsFetch(t *testing.T) {
	fetcher := &stubFetcher{input: "fresh"}
	store := newStubInputStore()
	store.files[filepath.Join("inputs", "d07.txt")] = "already here"
	downloader := newTestDownloader(t, "tok", fetcher, store)

	path, err := downloader.Download(context.Background(), 7, false)

	require.NoError(t, err)
	assert.Equal(t, "already here", store.files[path])
	assert.Zero(t, fetcher.fetches)
}

func TestInputDownloader_Download_ForceRefetches(t *testing.T) {
	fetcher := &stubFetcher{input: "fresh"}
	store := newStubInputStore()
	store.files[filepath.Join("inputs", "d07.txt")] = "stale"
	downloader := newTestDownloader(t, "tok", fetcher, store)

	path, err := downloader.Download(context.Background(), 7, true)

	require.NoError(t, err)
	assert.Equal(t, "fresh", store.files[path])
	assert.Equal(t, 1, fetcher.fetches)
}

func TestInputDownloader_Download_FetchError(t *testing.T) {
	fetcher := &stubFetcher{err: domain.ErrSessionInvalid}
	store := newStubInputStore()
	downloader := newTestDownloader(t, "tok", fetcher, store)

	_, err := downloader.Download(context.Background(), 7, false)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrSessionInvalid)
	assert.Zero(t, store.saves)
}
