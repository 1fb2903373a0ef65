package storage

import (
	"context"
	"errors"

	"github.com/charmbracelet/log"
	"github.com/pageza/recipebook/internal/logger"
	"github.com/pageza/recipebook/internal/model"
)

// Gateway persists a whole recipe book at a location. Load never fails
// structurally: every problem degrades to an empty book plus a diagnostic.
type Gateway interface {
	Save(ctx context.Context, location string, book *model.RecipeBook) (*SaveReport, error)
	Load(ctx context.Context, location string) *LoadResult
}

// SaveReport summarizes a successful save.
type SaveReport struct {
	Location string
	Saved    int
	Skipped  []SkippedEntry
}

// LoadResult is the outcome of a load. Book is never nil. Err wraps ErrIO or
// ErrParse when the stored document could not be used at all.
type LoadResult struct {
	Book    *model.RecipeBook
	Skipped []SkippedEntry
	Err     error
}

// BlobStore moves raw documents to and from a backing store. ReadBlob
// returns ErrNotExist when nothing is stored at location.
type BlobStore interface {
	ReadBlob(ctx context.Context, location string) ([]byte, error)
	WriteBlob(ctx context.Context, location string, data []byte) error
}

// DocumentGateway stores books as JSON documents in a BlobStore.
type DocumentGateway struct {
	blobs BlobStore
}

// NewDocumentGateway creates a gateway over blobs.
func NewDocumentGateway(blobs BlobStore) *DocumentGateway {
	return &DocumentGateway{blobs: blobs}
}

// Save writes every recipe with a non-blank name. Write failures wrap ErrIO
// and are not retried.
func (g *DocumentGateway) Save(ctx context.Context, location string, book *model.RecipeBook) (*SaveReport, error) {
	data, skipped, err := EncodeDocument(book.List())
	if err != nil {
		return nil, ioError("encode", location, err)
	}
	logSkipped("recipe was invalid and will not be saved", skipped)

	if err := g.blobs.WriteBlob(ctx, location, data); err != nil {
		storageLog().Error("error saving recipe data", "location", location, "err", err)
		return nil, ioError("write", location, err)
	}

	report := &SaveReport{
		Location: location,
		Saved:    book.Len() - len(skipped),
		Skipped:  skipped,
	}
	storageLog().Info("recipe data saved", "location", location, "recipes", report.Saved)
	return report, nil
}

// Load reads the document at location. A missing document is an empty book
// without a diagnostic.
func (g *DocumentGateway) Load(ctx context.Context, location string) *LoadResult {
	data, err := g.blobs.ReadBlob(ctx, location)
	if errors.Is(err, ErrNotExist) {
		storageLog().Debug("no recipe data found, starting empty", "location", location)
		return &LoadResult{Book: model.NewRecipeBook()}
	}
	if err != nil {
		storageLog().Error("error loading recipe data", "location", location, "err", err)
		return &LoadResult{Book: model.NewRecipeBook(), Err: ioError("read", location, err)}
	}

	book, skipped, err := DecodeDocument(data)
	if err != nil {
		storageLog().Error("error deserializing recipe data", "location", location, "err", err)
		return &LoadResult{Book: model.NewRecipeBook(), Err: parseError(location, err)}
	}
	logSkipped("recipe was skipped while loading", skipped)

	return &LoadResult{Book: book, Skipped: skipped}
}

// storageLog is resolved per call so it follows logger.Configure.
func storageLog() *log.Logger {
	return logger.WithPrefix("storage")
}

func logSkipped(msg string, skipped []SkippedEntry) {
	for _, s := range skipped {
		storageLog().Warn(msg, "index", s.Index, "name", s.Name, "reason", s.Reason)
	}
}
