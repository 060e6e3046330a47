package mock

import "github.com/fwojciec/particledocs"

var _ particledocs.Extractor = (*Extractor)(nil)

// Extractor is a mock implementation of particledocs.Extractor.
type Extractor struct {
	ExtractFn func(html string) (*particledocs.ExtractResult, error)
}

func (e *Extractor) Extract(html string) (*particledocs.ExtractResult, error) {
	return e.ExtractFn(html)
}
