package mapper

import "fmt"

// MappingError reports which record and predicate a conversion failed on.
// It unwraps to the rdf sentinel (rdf.ErrInvalidIRI, rdf.ErrUnknownPrefix,
// rdf.ErrInvalidTriplePosition).
type MappingError struct {
	Path      string // record path, e.g. actions[0].hasSample.hasSample[1]
	Predicate string // prefixed predicate being emitted, if known
	Err       error
}

func (e *MappingError) Error() string {
	if e.Predicate != "" {
		return fmt.Sprintf("mapper: %s %s: %v", e.Path, e.Predicate, e.Err)
	}
	return fmt.Sprintf("mapper: %s: %v", e.Path, e.Err)
}

func (e *MappingError) Unwrap() error { return e.Err }
