package ingestion

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/jonathan/cv-composer/internal/corpus"
	"github.com/jonathan/cv-composer/internal/embedding"
	"github.com/jonathan/cv-composer/internal/schemas"
	"github.com/jonathan/cv-composer/internal/types"
)

const (
	// embedBatchSize caps how many texts go into one embedding request.
	embedBatchSize = 50
	// embedConcurrency bounds how many embedding batches run at once.
	embedConcurrency = 4
	// defaultConfidence is used for imported entries without an explicit score.
	defaultConfidence = 0.8
)

// Importer loads corpus entries from JSON dumps and PDF resumes,
// embeds them, and writes them to the store.
type Importer struct {
	store    corpus.Store
	embedder embedding.Embedder
}

// NewImporter creates an Importer backed by the given store and embedder.
func NewImporter(store corpus.Store, embedder embedding.Embedder) *Importer {
	return &Importer{store: store, embedder: embedder}
}

// ImportReport summarizes an import run. Failed entries are dropped, not
// inserted; their errors are collected so callers can surface them.
type ImportReport struct {
	Imported int
	Skipped  int
	Failed   int
	Errors   []string
}

// importEntry mirrors the JSON import file shape defined by
// schemas/corpus_entries.schema.json.
type importEntry struct {
	Title          string  `json:"title"`
	Content        string  `json:"content"`
	Profession     string  `json:"profession,omitempty"`
	Section        string  `json:"section,omitempty"`
	Category       string  `json:"category,omitempty"`
	Industry       string  `json:"industry,omitempty"`
	Confidence     float64 `json:"confidence,omitempty"`
	SourceDocument string  `json:"source_document,omitempty"`
}

// ImportJSON validates a JSON corpus file against the import schema, embeds
// every entry, and inserts the results. Entries with missing facets are
// classified from their text.
func (imp *Importer) ImportJSON(ctx context.Context, jsonPath string) (*ImportReport, error) {
	schemaPath := schemas.ResolveSchemaPath(schemas.CorpusEntriesSchema)
	if schemaPath == "" {
		return nil, fmt.Errorf("import schema not found: %s", schemas.CorpusEntriesSchema)
	}
	if err := schemas.ValidateFile(schemaPath, jsonPath); err != nil {
		return nil, fmt.Errorf("corpus file %s rejected: %w", jsonPath, err)
	}

	data, err := os.ReadFile(jsonPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read corpus file %s: %w", jsonPath, err)
	}
	var raw []importEntry
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse corpus file %s: %w", jsonPath, err)
	}

	report := &ImportReport{}
	entries := make([]types.CorpusEntry, 0, len(raw))
	for _, item := range raw {
		if strings.TrimSpace(item.Content) == "" {
			report.Skipped++
			continue
		}
		entries = append(entries, imp.buildEntry(item, filepath.Base(jsonPath)))
	}

	return imp.embedAndInsert(ctx, entries, report)
}

// ImportPDF extracts text from one PDF resume, parses it into corpus entries
// under the given category, embeds them, and inserts the results.
func (imp *Importer) ImportPDF(ctx context.Context, path, category string) (*ImportReport, error) {
	text, err := ExtractPDFText(path)
	if err != nil {
		return nil, err
	}

	entries := EntriesFromResumeText(text, category, filepath.Base(path))
	report := &ImportReport{}
	if len(entries) == 0 {
		report.Skipped++
		return report, nil
	}
	for i := range entries {
		entries[i].ID = uuid.New()
		entries[i].CreatedAt = time.Now().UTC()
	}
	return imp.embedAndInsert(ctx, entries, report)
}

// ImportPDFDir imports every PDF under dir. Immediate subdirectory names
// become entry categories; PDFs directly under dir use the directory name.
func (imp *Importer) ImportPDFDir(ctx context.Context, dir string) (*ImportReport, error) {
	total := &ImportReport{}
	err := filepath.WalkDir(dir, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.EqualFold(filepath.Ext(path), ".pdf") {
			return nil
		}
		category := filepath.Base(filepath.Dir(path))
		report, err := imp.ImportPDF(ctx, path, category)
		if err != nil {
			total.Failed++
			total.Errors = append(total.Errors, fmt.Sprintf("%s: %v", path, err))
			return nil
		}
		total.merge(report)
		return nil
	})
	if err != nil {
		return total, fmt.Errorf("failed to walk %s: %w", dir, err)
	}
	return total, nil
}

func (imp *Importer) buildEntry(item importEntry, source string) types.CorpusEntry {
	profession := types.ParseProfession(item.Profession)
	if profession == "" || profession == types.ProfessionUnrecognized {
		profession = ClassifyProfession(item.Title, item.Content)
	}
	section := types.ParseSection(item.Section)
	if section == "" || section == types.SectionUnrecognized {
		section = ClassifySection(item.Title, item.Content)
	}
	confidence := item.Confidence
	if confidence == 0 {
		confidence = defaultConfidence
	}
	if item.SourceDocument != "" {
		source = item.SourceDocument
	}

	wordCount := CountWords(item.Content)
	return types.CorpusEntry{
		ID:             uuid.New(),
		Title:          item.Title,
		Content:        item.Content,
		Profession:     profession,
		Section:        section,
		Category:       item.Category,
		Industry:       item.Industry,
		ContentKind:    ClassifyContentKind(wordCount),
		Confidence:     confidence,
		WordCount:      wordCount,
		SourceDocument: source,
		CreatedAt:      time.Now().UTC(),
	}
}

// embedAndInsert embeds entries in bounded-concurrency batches and inserts
// the ones that succeeded. A failed batch fails only its own entries.
func (imp *Importer) embedAndInsert(ctx context.Context, entries []types.CorpusEntry, report *ImportReport) (*ImportReport, error) {
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(embedConcurrency)

	var mu sync.Mutex
	embedded := make([]types.CorpusEntry, 0, len(entries))

	for start := 0; start < len(entries); start += embedBatchSize {
		batch := entries[start:min(start+embedBatchSize, len(entries))]
		g.Go(func() error {
			texts := make([]string, len(batch))
			for i, entry := range batch {
				texts[i] = entry.Content
			}

			vectors, err := imp.embedder.EmbedBatch(gctx, texts)
			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				report.Failed += len(batch)
				report.Errors = append(report.Errors, fmt.Sprintf("embedding batch failed: %v", err))
				return nil
			}
			for i, entry := range batch {
				entry.Embedding = vectors[i]
				embedded = append(embedded, entry)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return report, err
	}
	if err := ctx.Err(); err != nil {
		return report, err
	}

	if len(embedded) > 0 {
		if err := imp.store.InsertEntries(ctx, embedded); err != nil {
			return report, fmt.Errorf("failed to insert corpus entries: %w", err)
		}
	}
	report.Imported += len(embedded)
	return report, nil
}

func (r *ImportReport) merge(other *ImportReport) {
	r.Imported += other.Imported
	r.Skipped += other.Skipped
	r.Failed += other.Failed
	r.Errors = append(r.Errors, other.Errors...)
}
