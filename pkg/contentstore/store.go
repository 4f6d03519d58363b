// Package contentstore persists fetched article bodies as JSON documents on
// the local filesystem, partitioned by symbol and publication date. The
// database keeps only the relative file path; the store owns the layout.
package contentstore

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// ErrNotFound indicates the document does not exist on disk.
var ErrNotFound = errors.New("content document not found")

const dateLayout = "2006-01-02"

// Document is the stored representation of one fetched article body.
type Document struct {
	ArticleID string    `json:"article_id"`
	Symbol    string    `json:"symbol"`
	Market    string    `json:"market"`
	Source    string    `json:"source"`
	URL       string    `json:"url"`
	Title     string    `json:"title"`
	Text      string    `json:"text"`
	Authors   []string  `json:"authors,omitempty"`
	Keywords  []string  `json:"keywords,omitempty"`
	Language  string    `json:"language,omitempty"`
	Provider  string    `json:"provider"`
	Partial   bool      `json:"partial"`
	FetchedAt time.Time `json:"fetched_at"`
}

// Store reads and writes content documents under a single root directory.
// Layout: <root>/<symbol>/<YYYY-MM-DD>/<article_id>.json
type Store struct {
	root string
}

// NewStore creates a store rooted at dir, creating it if needed.
func NewStore(dir string) (*Store, error) {
	if dir == "" {
		return nil, errors.New("content root must not be empty")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create content root: %w", err)
	}
	return &Store{root: dir}, nil
}

// Root returns the store's root directory.
func (s *Store) Root() string {
	return s.root
}

// Save writes the document and returns its path relative to the root. The
// write goes to a temp file first and is renamed into place, so readers
// never observe a half-written document.
func (s *Store) Save(doc *Document) (string, error) {
	if doc.ArticleID == "" {
		return "", errors.New("document has no article_id")
	}

	rel := s.relPath(doc)
	abs := filepath.Join(s.root, rel)
	if err := os.MkdirAll(filepath.Dir(abs), 0o755); err != nil {
		return "", fmt.Errorf("create partition dir: %w", err)
	}

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshal document: %w", err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(abs), ".tmp-*.json")
	if err != nil {
		return "", fmt.Errorf("create temp file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return "", fmt.Errorf("write document: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return "", fmt.Errorf("close document: %w", err)
	}
	if err := os.Rename(tmpName, abs); err != nil {
		os.Remove(tmpName)
		return "", fmt.Errorf("publish document: %w", err)
	}

	return rel, nil
}

// Read loads a document by its relative path.
func (s *Store) Read(relPath string) (*Document, error) {
	abs, err := s.resolve(relPath)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(abs)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, relPath)
		}
		return nil, fmt.Errorf("read document: %w", err)
	}

	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("decode document %s: %w", relPath, err)
	}
	return &doc, nil
}

// Delete removes a document. Missing files are not an error; deletion is
// idempotent because the cleanup loop and manual deletion can race.
func (s *Store) Delete(relPath string) error {
	abs, err := s.resolve(relPath)
	if err != nil {
		return err
	}
	if err := os.Remove(abs); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("delete document: %w", err)
	}
	return nil
}

// OwnerCheck reports, per article ID, whether the owning article no longer
// needs its content file (status deleted/failed/blocked, or no row at all).
// IDs missing from the returned map are treated as not removable.
type OwnerCheck func(articleIDs []string) (map[string]bool, error)

// Sweep removes documents whose partition date is older than cutoff AND whose
// owner releases them per the check; a live article keeps its file no matter
// how old. A nil check removes by age alone. Directories left empty are
// pruned. Returns the number of files removed.
func (s *Store) Sweep(cutoff time.Time, removable OwnerCheck) (int, error) {
	removed := 0
	cutoffDay := cutoff.UTC().Format(dateLayout)

	symbols, err := os.ReadDir(s.root)
	if err != nil {
		return 0, fmt.Errorf("list content root: %w", err)
	}

	for _, sym := range symbols {
		if !sym.IsDir() {
			continue
		}
		symDir := filepath.Join(s.root, sym.Name())

		days, err := os.ReadDir(symDir)
		if err != nil {
			slog.Warn("Failed to list symbol partition", "symbol", sym.Name(), "error", err)
			continue
		}

		for _, day := range days {
			if !day.IsDir() {
				continue
			}
			// Lexicographic compare works because the layout is YYYY-MM-DD.
			if day.Name() >= cutoffDay {
				continue
			}

			dayDir := filepath.Join(symDir, day.Name())
			n, err := s.sweepPartition(dayDir, removable)
			if err != nil {
				slog.Warn("Failed to sweep partition", "dir", dayDir, "error", err)
				continue
			}
			removed += n

			if remaining, err := os.ReadDir(dayDir); err == nil && len(remaining) == 0 {
				os.Remove(dayDir)
			}
		}

		// Prune the symbol dir if the sweep emptied it.
		if remaining, err := os.ReadDir(symDir); err == nil && len(remaining) == 0 {
			os.Remove(symDir)
		}
	}

	return removed, nil
}

// sweepPartition removes the files in one day directory whose owners release
// them. Filenames are <article_id>.json, so the owner set comes straight from
// the directory listing.
func (s *Store) sweepPartition(dayDir string, removable OwnerCheck) (int, error) {
	entries, err := os.ReadDir(dayDir)
	if err != nil {
		return 0, err
	}

	var ids []string
	for _, e := range entries {
		if !e.IsDir() && strings.HasSuffix(e.Name(), ".json") {
			ids = append(ids, strings.TrimSuffix(e.Name(), ".json"))
		}
	}
	if len(ids) == 0 {
		return 0, nil
	}

	released := make(map[string]bool, len(ids))
	if removable == nil {
		for _, id := range ids {
			released[id] = true
		}
	} else {
		released, err = removable(ids)
		if err != nil {
			return 0, fmt.Errorf("owner check: %w", err)
		}
	}

	removed := 0
	for _, id := range ids {
		if !released[id] {
			continue
		}
		if err := os.Remove(filepath.Join(dayDir, id+".json")); err != nil {
			slog.Warn("Failed to remove content file", "dir", dayDir, "article_id", id, "error", err)
			continue
		}
		removed++
	}
	return removed, nil
}

func (s *Store) relPath(doc *Document) string {
	symbol := doc.Symbol
	if symbol == "" {
		symbol = "_unassigned"
	}
	day := doc.FetchedAt
	if day.IsZero() {
		day = time.Now()
	}
	return filepath.Join(sanitize(symbol), day.UTC().Format(dateLayout), doc.ArticleID+".json")
}

// resolve joins and confines the relative path under the root. Paths that
// escape the root are rejected.
func (s *Store) resolve(relPath string) (string, error) {
	if relPath == "" {
		return "", errors.New("empty content path")
	}
	abs := filepath.Join(s.root, relPath)
	rootAbs, err := filepath.Abs(s.root)
	if err != nil {
		return "", err
	}
	absClean, err := filepath.Abs(abs)
	if err != nil {
		return "", err
	}
	if absClean != rootAbs && !strings.HasPrefix(absClean, rootAbs+string(os.PathSeparator)) {
		return "", fmt.Errorf("content path escapes root: %s", relPath)
	}
	return absClean, nil
}

func sanitize(name string) string {
	return strings.Map(func(r rune) rune {
		switch r {
		case '/', '\\', ':', '*', '?', '"', '<', '>', '|':
			return '_'
		}
		return r
	}, name)
}
