// Package wordlist streams lower-cased words, one per line, from a local
// file or an HTTP(S) URL.
package wordlist

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"

	"github.com/standardbeagle/wordnum/internal/debug"
	"github.com/standardbeagle/wordnum/internal/errors"
)

// Source is a lazy, finite word stream. It is not restartable; recreate it
// with Open to read the words again.
type Source struct {
	name    string
	closer  io.Closer
	scanner *bufio.Scanner
}

// IsURL reports whether source names a network resource rather than a local
// file path.
func IsURL(source string) bool {
	return strings.HasPrefix(source, "http://") || strings.HasPrefix(source, "https://")
}

// Open creates a Source for an HTTP(S) URL or a local file path. Failures
// surface as an InputSourceError; the caller decides whether to retry by
// reopening, the source itself never does.
func Open(ctx context.Context, source string) (*Source, error) {
	if IsURL(source) {
		return openURL(ctx, source)
	}
	return openFile(source)
}

func openFile(path string) (*Source, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.NewInputSourceError("open", path, err)
	}
	debug.LogInput("reading words from file %s\n", path)
	return newSource(path, f), nil
}

func openURL(ctx context.Context, url string) (*Source, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, errors.NewInputSourceError("request", url, err)
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return nil, errors.NewInputSourceError("fetch", url, err)
	}
	if resp.StatusCode != http.StatusOK {
		resp.Body.Close()
		return nil, errors.NewInputSourceError("fetch", url,
			fmt.Errorf("unexpected status %s", resp.Status))
	}
	debug.LogInput("reading words from %s\n", url)
	return newSource(url, resp.Body), nil
}

func newSource(name string, rc io.ReadCloser) *Source {
	return &Source{
		name:    name,
		closer:  rc,
		scanner: bufio.NewScanner(rc),
	}
}

// Name returns the identifier the source was opened from.
func (s *Source) Name() string {
	return s.name
}

// Next returns the next word: the line trimmed and lower-cased. Blank lines
// are skipped. ok is false once the stream is exhausted.
func (s *Source) Next() (string, bool, error) {
	for s.scanner.Scan() {
		word := strings.ToLower(strings.TrimSpace(s.scanner.Text()))
		if word == "" {
			continue
		}
		return word, true, nil
	}
	if err := s.scanner.Err(); err != nil {
		return "", false, errors.NewInputSourceError("read", s.name, err)
	}
	return "", false, nil
}

// Close releases the underlying file or response body.
func (s *Source) Close() error {
	return s.closer.Close()
}
