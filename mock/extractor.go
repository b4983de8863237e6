package mock

import (
	"context"

	"github.com/fwojciec/parcontact"
)

var _ parcontact.ContactExtractor = (*ContactExtractor)(nil)

// ContactExtractor is a mock implementation of parcontact.ContactExtractor.
type ContactExtractor struct {
	ExtractContactsFn func(ctx context.Context, row parcontact.Row) (*parcontact.Result, error)
}

func (e *ContactExtractor) ExtractContacts(ctx context.Context, row parcontact.Row) (*parcontact.Result, error) {
	return e.ExtractContactsFn(ctx, row)
}
