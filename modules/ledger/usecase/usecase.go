package usecase

import (
	"time"

	"github.com/google/uuid"
	"github.com/heroarena/ledger/modules/ledger/datagateway"
)

// Usecase implements the ledger state machine. Every write intent runs inside
// a single datagateway transaction: it either fully commits or leaves no
// partial side effects.
type Usecase struct {
	dg  datagateway.LedgerDataGateway
	now func() time.Time
}

func New(dg datagateway.LedgerDataGateway) *Usecase {
	return &Usecase{
		dg:  dg,
		now: time.Now,
	}
}

func newID() string {
	return uuid.NewString()
}
