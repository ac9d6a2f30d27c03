package cmd

import (
	"log/slog"
	"os"

	"renthub/internal/adapters/out/contract"
	"renthub/internal/adapters/out/postgres"
	"renthub/internal/core/application/usecases/commands"
	"renthub/internal/core/application/usecases/queries"
	"renthub/internal/core/domain/services"
	"renthub/internal/jobs"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	config       Config
	gormDB       *gorm.DB
	uowFactory   postgres.GormUnitOfWorkFactory
	leaseFactory services.LeaseFactory
	renderer     *contract.PDFRenderer
	logger       *slog.Logger
}

func NewCompositionRoot(config Config, gormDB *gorm.DB) CompositionRoot {
	return CompositionRoot{
		config:       config,
		gormDB:       gormDB,
		uowFactory:   *postgres.NewGormUnitOfWorkFactory(gormDB),
		leaseFactory: services.NewLeaseFactory(config.LeaseTermMonths),
		renderer:     contract.NewPDFRenderer(config.ContractDir),
		logger:       slog.New(slog.NewJSONHandler(os.Stdout, nil)),
	}
}

func (c *CompositionRoot) Logger() *slog.Logger {
	return c.logger
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	var f commands.CreateOrderUoWFactory = FuncCreateOrderUoWFactory(func() commands.CreateOrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateOrderCommandHandler(f)
}

func (c *CompositionRoot) CreatePayOrderCommandHandler() commands.PayOrderCommandHandler {
	var f commands.SettlementUoWFactory = FuncSettlementUoWFactory(func() commands.SettlementUoW {
		return c.uowFactory.Create()
	})
	return commands.NewPayOrderCommandHandler(f)
}

func (c *CompositionRoot) CreateConfirmOrderCommandHandler() commands.ConfirmOrderCommandHandler {
	var f commands.ConfirmOrderUoWFactory = FuncConfirmOrderUoWFactory(func() commands.ConfirmOrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewConfirmOrderCommandHandler(
		f, c.leaseFactory, c.renderer, c.config.RenderTimeout, c.logger)
}

func (c *CompositionRoot) CreateCancelOrderCommandHandler() commands.CancelOrderCommandHandler {
	var f commands.CancelOrderUoWFactory = FuncCancelOrderUoWFactory(func() commands.CancelOrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCancelOrderCommandHandler(f)
}

func (c *CompositionRoot) CreateRefundOrderCommandHandler() commands.RefundOrderCommandHandler {
	var f commands.SettlementUoWFactory = FuncSettlementUoWFactory(func() commands.SettlementUoW {
		return c.uowFactory.Create()
	})
	return commands.NewRefundOrderCommandHandler(f)
}

func (c *CompositionRoot) CreateSubmitEvaluationCommandHandler() commands.SubmitEvaluationCommandHandler {
	var f commands.LeaseUoWFactory = FuncLeaseUoWFactory(func() commands.LeaseUoW {
		return c.uowFactory.Create()
	})
	return commands.NewSubmitEvaluationCommandHandler(f)
}

func (c *CompositionRoot) CreateRegenerateContractCommandHandler() commands.RegenerateContractCommandHandler {
	var f commands.ContractUoWFactory = FuncContractUoWFactory(func() commands.ContractUoW {
		return c.uowFactory.Create()
	})
	return commands.NewRegenerateContractCommandHandler(f, c.renderer, c.config.RenderTimeout)
}

func (c *CompositionRoot) CreateCompleteExpiredLeasesCommandHandler() commands.CompleteExpiredLeasesCommandHandler {
	var f commands.LeaseUoWFactory = FuncLeaseUoWFactory(func() commands.LeaseUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCompleteExpiredLeasesCommandHandler(f, c.logger)
}

func (c *CompositionRoot) CreateBackfillContractsCommandHandler() commands.BackfillContractsCommandHandler {
	var f commands.ContractUoWFactory = FuncContractUoWFactory(func() commands.ContractUoW {
		return c.uowFactory.Create()
	})
	return commands.NewBackfillContractsCommandHandler(f, c.renderer, c.config.RenderTimeout, c.logger)
}

func (c *CompositionRoot) CreateGetUserLedgerQueryHandler() queries.GetUserLedgerQueryHandler {
	return queries.NewGetUserLedgerQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetLeaseByOrderQueryHandler() queries.GetLeaseByOrderQueryHandler {
	return queries.NewGetLeaseByOrderQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(
		c.CreateCompleteExpiredLeasesCommandHandler(),
		c.CreateBackfillContractsCommandHandler(),
		c.logger,
	)
}

type FuncCreateOrderUoWFactory func() commands.CreateOrderUoW

func (f FuncCreateOrderUoWFactory) Create() commands.CreateOrderUoW {
	return f()
}

type FuncSettlementUoWFactory func() commands.SettlementUoW

func (f FuncSettlementUoWFactory) Create() commands.SettlementUoW {
	return f()
}

type FuncCancelOrderUoWFactory func() commands.CancelOrderUoW

func (f FuncCancelOrderUoWFactory) Create() commands.CancelOrderUoW {
	return f()
}

type FuncConfirmOrderUoWFactory func() commands.ConfirmOrderUoW

func (f FuncConfirmOrderUoWFactory) Create() commands.ConfirmOrderUoW {
	return f()
}

type FuncLeaseUoWFactory func() commands.LeaseUoW

func (f FuncLeaseUoWFactory) Create() commands.LeaseUoW {
	return f()
}

type FuncContractUoWFactory func() commands.ContractUoW

func (f FuncContractUoWFactory) Create() commands.ContractUoW {
	return f()
}
