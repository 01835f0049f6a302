package dto

// UploadResponse reports how many rows an upload batch inserted across all
// of its files.
type UploadResponse struct {
	RowsInserted int64 `json:"rowsInserted"`
}
