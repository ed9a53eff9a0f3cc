package memory

import (
	"context"

	"github.com/cockroachdb/errors"
	"github.com/heroarena/ledger/modules/ledger/datagateway"
)

var ErrTxAlreadyExists = errors.New("transaction already exists. Call Commit() or Rollback() first.")

func (r *Repository) BeginLedgerTx(ctx context.Context) (datagateway.LedgerDataGatewayWithTx, error) {
	if r.pending != nil {
		return nil, errors.WithStack(ErrTxAlreadyExists)
	}
	// Exclusive writer lock held until Commit or Rollback: the first admitted
	// intent wins, all others observe its committed result.
	r.store.writer.Lock()
	return &Repository{
		store:   r.store,
		pending: r.store.snapshot(),
	}, nil
}

func (r *Repository) Commit(_ context.Context) error {
	if r.pending == nil {
		return nil
	}
	r.store.mu.Lock()
	r.store.committed = r.pending
	r.store.mu.Unlock()
	r.pending = nil
	r.store.writer.Unlock()
	return nil
}

func (r *Repository) Rollback(_ context.Context) error {
	if r.pending == nil {
		return nil
	}
	r.pending = nil
	r.store.writer.Unlock()
	return nil
}
