package services

import (
	"context"
)

// UploadedFile is one file of an upload batch: its original name plus the
// raw spreadsheet bytes. Report kind detection uses only the name.
type UploadedFile struct {
	Filename string
	Content  []byte
}

// IngestionSvcFacade drives one upload batch: detect each file's report
// kind, parse it, stamp the batch period onto every record and bulk-insert.
type IngestionSvcFacade interface {
	// IngestBatch processes the files for the (month, year) reporting period
	// and returns the total number of rows inserted across all files.
	// Unrecognized filenames are silently skipped; an unreadable file or a
	// failed insert fails the whole batch.
	IngestBatch(ctx context.Context, files []UploadedFile, month, year int) (int64, error)
}
