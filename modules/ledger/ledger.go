package ledger

import (
	"context"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/gofiber/fiber/v2"
	"github.com/heroarena/ledger/common/errs"
	"github.com/heroarena/ledger/internal/config"
	"github.com/heroarena/ledger/internal/postgres"
	ledgerapi "github.com/heroarena/ledger/modules/ledger/api"
	ledgerdatagateway "github.com/heroarena/ledger/modules/ledger/datagateway"
	"github.com/heroarena/ledger/modules/ledger/internal/entity"
	ledgermemory "github.com/heroarena/ledger/modules/ledger/repository/memory"
	ledgerpostgres "github.com/heroarena/ledger/modules/ledger/repository/postgres"
	ledgerusecase "github.com/heroarena/ledger/modules/ledger/usecase"
	"github.com/heroarena/ledger/pkg/logger"
	"github.com/samber/do/v2"
	"github.com/samber/lo"
)

const Version = "v0.1.0"

// Ledger wires storage, the state machine and the API surface together.
type Ledger struct {
	usecase      *ledgerusecase.Usecase
	cleanupFuncs []func(context.Context) error
}

func New(injector do.Injector) (*Ledger, error) {
	ctx := do.MustInvoke[context.Context](injector)
	conf := do.MustInvoke[config.Config](injector)

	var ledgerDg ledgerdatagateway.LedgerDataGateway
	var cleanupFuncs []func(context.Context) error
	switch strings.ToLower(conf.Modules.Ledger.Database) {
	case "", "memory":
		ledgerDg = ledgermemory.NewRepository()
	case "postgresql", "postgres", "pg":
		pg, err := postgres.NewPool(ctx, conf.Modules.Ledger.Postgres)
		if err != nil {
			return nil, errors.Wrap(err, "can't create Postgres connection pool")
		}
		cleanupFuncs = append(cleanupFuncs, func(ctx context.Context) error {
			pg.Close()
			return nil
		})
		ledgerDg = ledgerpostgres.NewRepository(pg)
	default:
		return nil, errors.Wrapf(errs.Unsupported, "%q database for ledger is not supported", conf.Modules.Ledger.Database)
	}

	// Seed the admin capability on first start. The capability is created once
	// at bootstrap and only moves by transfer afterwards.
	if admin := conf.Modules.Ledger.BootstrapAdmin; admin != "" {
		if err := ledgerDg.InitAdminHolder(ctx, entity.Account(admin)); err != nil {
			return nil, errors.Wrap(err, "can't seed admin capability holder")
		}
	}

	usecase := ledgerusecase.New(ledgerDg)

	// Mount API
	apiHandlers := conf.Modules.Ledger.APIHandlers
	if len(apiHandlers) == 0 {
		apiHandlers = []string{"http"}
	}
	for _, handler := range lo.Uniq(apiHandlers) {
		switch handler {
		case "http":
			httpServer := do.MustInvoke[*fiber.App](injector)
			httpHandler := ledgerapi.NewHTTPHandler(usecase)
			if err := httpHandler.Mount(httpServer); err != nil {
				return nil, errors.Wrap(err, "can't mount ledger API")
			}
			logger.InfoContext(ctx, "Mounted HTTP handler")
		default:
			return nil, errors.Wrapf(errs.Unsupported, "%q API handler is not supported", handler)
		}
	}

	return &Ledger{
		usecase:      usecase,
		cleanupFuncs: cleanupFuncs,
	}, nil
}

func (l *Ledger) Usecase() *ledgerusecase.Usecase {
	return l.usecase
}

// Shutdown releases storage resources. Implements do.Shutdownable.
func (l *Ledger) Shutdown() error {
	ctx := context.Background()
	for _, cleanup := range l.cleanupFuncs {
		if err := cleanup(ctx); err != nil {
			return errors.WithStack(err)
		}
	}
	return nil
}
