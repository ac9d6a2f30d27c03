package commands

import (
	"errors"

	"renthub/internal/core/domain/model/kernel"
	"renthub/internal/core/domain/model/lease"
	"renthub/internal/pkg/errs"
	"renthub/internal/pkg/guard"
)

var ErrSubmitEvaluationCommandIsNotConstructed = errors.New(
	"SubmitEvaluationCommand must be created via NewSubmitEvaluationCommand constructor",
)

// SubmitEvaluationCommand represents the tenant's evaluation of a lease.
type SubmitEvaluationCommand struct {
	leaseID kernel.UUID
	actor   kernel.Actor
	score   int
	content string

	guard guard.ConstructorGuard
}

// NewSubmitEvaluationCommand creates an evaluation command. The score is
// range-checked here so malformed input fails at the boundary.
func NewSubmitEvaluationCommand(
	leaseID kernel.UUID,
	actor kernel.Actor,
	score int,
	content string,
) (SubmitEvaluationCommand, error) {
	if err := leaseID.Validate(); err != nil {
		return SubmitEvaluationCommand{}, err
	}
	if err := actor.Validate(); err != nil {
		return SubmitEvaluationCommand{}, err
	}
	if score < lease.MinEvaluationScore || score > lease.MaxEvaluationScore {
		return SubmitEvaluationCommand{}, errs.NewValueIsOutOfRangeError(
			"evaluation score", score, lease.MinEvaluationScore, lease.MaxEvaluationScore)
	}

	return SubmitEvaluationCommand{
		leaseID: leaseID,
		actor:   actor,
		score:   score,
		content: content,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c SubmitEvaluationCommand) Validate() error {
	return c.guard.Validate(ErrSubmitEvaluationCommandIsNotConstructed)
}

// LeaseID returns the lease being evaluated.
func (c SubmitEvaluationCommand) LeaseID() kernel.UUID {
	return c.leaseID
}

// Actor returns the requesting party.
func (c SubmitEvaluationCommand) Actor() kernel.Actor {
	return c.actor
}

// Score returns the evaluation score.
func (c SubmitEvaluationCommand) Score() int {
	return c.score
}

// Content returns the free-text evaluation.
func (c SubmitEvaluationCommand) Content() string {
	return c.content
}
