package domain

import "encoding/json"

// FileChange describes one changed file in a pull request preview
type FileChange struct {
	Additions int    `json:"additions"`
	Deletions int    `json:"deletions"`
	Filename  string `json:"filename"`
	Patch     string `json:"patch"`
	Status    string `json:"status"`
}

// Preview is the loosely structured payload returned by the backend
// preview endpoint. Raw preserves the full response body so it can be
// shown when the structured file list is absent.
type Preview struct {
	Body  string          `json:"body"`
	Files []FileChange    `json:"files"`
	Title string          `json:"title"`
	Raw   json.RawMessage `json:"-"`
}
