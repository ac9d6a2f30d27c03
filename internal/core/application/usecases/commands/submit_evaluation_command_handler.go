package commands

import (
	"context"
	"time"

	"renthub/internal/core/domain/model/lease"
	"renthub/internal/pkg/errs"
)

// SubmitEvaluationCommandHandler records the tenant's evaluation of a lease.
type SubmitEvaluationCommandHandler struct {
	uowFactory LeaseUoWFactory
}

// NewSubmitEvaluationCommandHandler creates a handler for lease evaluation.
func NewSubmitEvaluationCommandHandler(uowFactory LeaseUoWFactory) SubmitEvaluationCommandHandler {
	return SubmitEvaluationCommandHandler{uowFactory: uowFactory}
}

// Handle stores the evaluation on the lease. Only the lease's tenant may
// evaluate; resubmission overwrites the prior evaluation.
func (h *SubmitEvaluationCommandHandler) Handle(
	ctx context.Context,
	cmd SubmitEvaluationCommand,
) (*lease.LeaseRecord, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	l, err := uow.LeaseRepository().Get(ctx, cmd.LeaseID())
	if err != nil {
		return nil, err
	}

	if !cmd.Actor().Is(l.TenantID()) {
		return nil, errs.NewPermissionError("evaluate lease", cmd.Actor().UserID().String())
	}

	if err = l.SubmitEvaluation(cmd.Score(), cmd.Content(), time.Now().UTC()); err != nil {
		return nil, err
	}

	if err = uow.LeaseRepository().Update(ctx, l); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return l, nil
}
