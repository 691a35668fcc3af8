package batch

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
)

// ErrInvalidBatch is returned for input that does not decode to a batch.
var ErrInvalidBatch = errors.New("batch: invalid record")

// Decode reads one JSON batch record from r. It checks that the document is
// well formed and that the batch carries an identifier; field values are not
// validated further.
func Decode(r io.Reader) (*Batch, error) {
	dec := json.NewDecoder(r)
	var b Batch
	if err := dec.Decode(&b); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidBatch, err)
	}
	if dec.More() {
		return nil, fmt.Errorf("%w: trailing data after batch object", ErrInvalidBatch)
	}
	if b.BatchID == "" {
		return nil, fmt.Errorf("%w: missing batchID", ErrInvalidBatch)
	}
	return &b, nil
}

// DecodeFile reads a JSON batch record from path.
func DecodeFile(path string) (*Batch, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	b, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return b, nil
}
