package corpus

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"

	"github.com/mckinzey/atrium/pkg/formatting"
	"github.com/mckinzey/atrium/pkg/lifecycle"
)

// System defines the public contract for corpus operations.
type System interface {
	Handler() *Handler

	List(ctx context.Context) ([]Document, error)
	Find(ctx context.Context, identifier string) (*Document, error)
	Extract(ctx context.Context, identifier string) (string, error)
	Start(lc *lifecycle.Coordinator) error
}

type system struct {
	root    string
	maxSize int64
	logger  *slog.Logger
}

// New creates a corpus System rooted at the given folder. Documents larger
// than maxSize bytes are excluded from the corpus.
func New(root string, maxSize int64, logger *slog.Logger) System {
	return &system{
		root:    root,
		maxSize: maxSize,
		logger:  logger.With("system", "corpus"),
	}
}

// Handler creates an HTTP handler for corpus endpoints.
func (s *system) Handler() *Handler {
	return NewHandler(s, s.logger)
}

// Start registers a startup check that the corpus folder is readable.
// A missing folder is not fatal; the corpus is simply empty until
// documents appear.
func (s *system) Start(lc *lifecycle.Coordinator) error {
	lc.OnStartup(func() {
		info, err := os.Stat(s.root)
		if err != nil {
			s.logger.Warn("corpus folder unavailable", "path", s.root, "error", err)
			return
		}
		if !info.IsDir() {
			s.logger.Error("corpus path is not a directory", "path", s.root)
			return
		}
		s.logger.Info("corpus folder ready", "path", s.root)
	})
	return nil
}

// List scans the corpus folder and returns all supported documents sorted
// by identifier. The folder is re-read on every call so documents can be
// added or removed without a restart.
func (s *system) List(ctx context.Context) ([]Document, error) {
	entries, err := os.ReadDir(s.root)
	if err != nil {
		if os.IsNotExist(err) {
			return []Document{}, nil
		}
		return nil, fmt.Errorf("scan corpus folder: %w", err)
	}

	docs := make([]Document, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}

		format, ok := FormatForExtension(filepath.Ext(entry.Name()))
		if !ok {
			continue
		}

		info, err := entry.Info()
		if err != nil {
			s.logger.Warn("stat document failed", "file", entry.Name(), "error", err)
			continue
		}

		if info.Size() > s.maxSize {
			s.logger.Warn("document exceeds size limit",
				"file", entry.Name(),
				"size", formatting.FormatBytes(info.Size(), 0),
				"limit", formatting.FormatBytes(s.maxSize, 0),
			)
			continue
		}

		identifier := Identify(entry.Name())
		docs = append(docs, Document{
			Identifier:  identifier,
			DisplayName: DisplayName(identifier),
			Filename:    entry.Name(),
			Format:      format,
			SizeBytes:   info.Size(),
			Modified:    info.ModTime(),
		})
	}

	sort.Slice(docs, func(i, j int) bool {
		return docs[i].Identifier < docs[j].Identifier
	})

	return docs, nil
}

// Find returns the document with the given identifier.
func (s *system) Find(ctx context.Context, identifier string) (*Document, error) {
	docs, err := s.List(ctx)
	if err != nil {
		return nil, err
	}

	for i := range docs {
		if docs[i].Identifier == identifier {
			return &docs[i], nil
		}
	}

	return nil, ErrNotFound
}

// Extract returns the plain text of the document with the given identifier.
// Unlike List, Extract resolves oversize files so it can report
// ErrFileTooLarge instead of a misleading not-found.
func (s *system) Extract(ctx context.Context, identifier string) (string, error) {
	filename, format, size, err := s.locate(identifier)
	if err != nil {
		return "", err
	}

	if size > s.maxSize {
		return "", fmt.Errorf("%w: %s is %s, limit %s",
			ErrFileTooLarge,
			filename,
			formatting.FormatBytes(size, 0),
			formatting.FormatBytes(s.maxSize, 0),
		)
	}

	data, err := os.ReadFile(filepath.Join(s.root, filename))
	if err != nil {
		return "", fmt.Errorf("read document %s: %w", filename, err)
	}

	text, err := extractText(data, format)
	if err != nil {
		return "", fmt.Errorf("%w: %s: %v", ErrExtractionFailed, filename, err)
	}

	return text, nil
}

// locate resolves an identifier to a file in the corpus folder without
// applying the size filter.
func (s *system) locate(identifier string) (string, Format, int64, error) {
	entries, err := os.ReadDir(s.root)
	if err != nil {
		if os.IsNotExist(err) {
			return "", "", 0, ErrNotFound
		}
		return "", "", 0, fmt.Errorf("scan corpus folder: %w", err)
	}

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}

		format, ok := FormatForExtension(filepath.Ext(entry.Name()))
		if !ok {
			continue
		}

		if Identify(entry.Name()) != identifier {
			continue
		}

		info, err := entry.Info()
		if err != nil {
			return "", "", 0, fmt.Errorf("stat document %s: %w", entry.Name(), err)
		}
		return entry.Name(), format, info.Size(), nil
	}

	return "", "", 0, ErrNotFound
}
