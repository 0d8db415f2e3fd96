// Package importers implements bulk CSV ingestion of catalog listings.
//
// The pipeline gives at-least-effort import semantics: each row is
// validated on its own and a bad row is skipped with a warning instead of
// aborting the run. Accepted rows are staged and committed in fixed-size
// batches so peak memory stays bounded for arbitrarily large files.
package importers

import (
	"encoding/csv"
	"fmt"
	"io"
	"log"
	"strings"

	"github.com/google/uuid"

	"github.com/avolkov/rentals/internal/entities"
	"github.com/avolkov/rentals/internal/services"
	"github.com/avolkov/rentals/internal/validation"
)

const defaultBatchSize = 20

// consumedFields are the logical CSV columns mapped onto a listing.
// Header order is irrelevant; columns are matched by name.
var consumedFields = []string{"name", "description", "price", "location"}

// Result summarizes an import run. Warnings carry the line numbers and
// reasons for every skipped row.
type Result struct {
	RunID    string
	Imported int
	Skipped  int
	Warnings []string
}

// Pipeline reads a delimited source, validates each row and persists
// accepted rows in batches through a BatchStore.
type Pipeline struct {
	store     services.BatchStore
	validator *validation.Validator
	batchSize int

	// OnProgress, if set, is called after each accepted row with the
	// running accepted count. Advisory only.
	OnProgress func(accepted int)
}

func NewPipeline(store services.BatchStore, validator *validation.Validator, batchSize int) *Pipeline {
	if batchSize <= 0 {
		batchSize = defaultBatchSize
	}
	return &Pipeline{
		store:     store,
		validator: validator,
		batchSize: batchSize,
	}
}

// Run imports listings from a CSV source whose first line is a header.
//
// A missing or unreadable header fails the whole run before any row is
// processed. After that, a malformed or invalid row only skips itself.
// A storage failure aborts the remaining rows; batches committed before
// the failure stay persisted and are reflected in the returned counts.
func (p *Pipeline) Run(r io.Reader) (Result, error) {
	result := Result{RunID: uuid.NewString()}

	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1 // field counts are checked per row below

	header, err := reader.Read()
	if err != nil {
		return result, fmt.Errorf("failed to read CSV header: %w", err)
	}

	headerIndex := make(map[string]int)
	for i, h := range header {
		headerIndex[strings.ToLower(strings.TrimSpace(h))] = i
	}

	var staged []entities.Listing
	accepted := 0
	lineNum := 1 // the header was line 1

	for {
		lineNum++
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			p.warn(&result, lineNum, fmt.Sprintf("malformed row: %v", err))
			continue
		}
		if len(record) != len(header) {
			p.warn(&result, lineNum, fmt.Sprintf("malformed row: %d fields, header has %d", len(record), len(header)))
			continue
		}

		candidate := services.BuildListing(rowFields(record, headerIndex))

		if violations := p.validator.Validate(candidate); len(violations) > 0 {
			p.warn(&result, lineNum, "validation failed: "+violations.String())
			continue
		}

		staged = append(staged, *candidate)
		accepted++

		if p.OnProgress != nil {
			p.OnProgress(accepted)
		}

		if accepted%p.batchSize == 0 {
			if err := p.store.CreateBatch(staged); err != nil {
				result.Imported = accepted - len(staged)
				return result, fmt.Errorf("failed to commit batch ending at line %d: %w", lineNum, err)
			}
			result.Imported = accepted
			staged = nil
		}
	}

	if len(staged) > 0 {
		if err := p.store.CreateBatch(staged); err != nil {
			result.Imported = accepted - len(staged)
			return result, fmt.Errorf("failed to commit final batch: %w", err)
		}
	}
	result.Imported = accepted

	return result, nil
}

func (p *Pipeline) warn(result *Result, lineNum int, reason string) {
	warning := fmt.Sprintf("Line %d: %s", lineNum, reason)
	log.Printf("Skipping CSV row. %s", warning)
	result.Warnings = append(result.Warnings, warning)
	result.Skipped++
}

// rowFields maps a record onto the consumed logical fields by header
// name. A column missing from the header stays absent so the builder
// applies its defaults.
func rowFields(record []string, headerIndex map[string]int) map[string]any {
	fields := make(map[string]any, len(consumedFields))
	for _, name := range consumedFields {
		if idx, ok := headerIndex[name]; ok && idx < len(record) {
			fields[name] = strings.TrimSpace(record[idx])
		}
	}
	return fields
}
