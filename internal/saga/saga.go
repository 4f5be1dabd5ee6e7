package saga

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"
)

// Step is one unit of a saga. Compensate may be nil when the step has
// nothing to undo.
type Step struct {
	Name       string
	Execute    func(ctx context.Context) error
	Compensate func(ctx context.Context) error
}

// StepError reports which step aborted a saga. Err is the step's own error;
// CompensationErr joins any failures while rolling back.
type StepError struct {
	Saga            string
	Step            string
	Err             error
	CompensationErr error
}

func (e *StepError) Error() string {
	return fmt.Sprintf("saga '%s' failed at step '%s': %v", e.Saga, e.Step, e.Err)
}

func (e *StepError) Unwrap() error { return e.Err }

// Saga runs steps in order and, on the first failure, compensates the
// completed ones in reverse.
type Saga struct {
	name   string
	steps  []Step
	logger *zap.Logger
}

// New creates an empty saga.
func New(name string, logger *zap.Logger) *Saga {
	return &Saga{name: name, logger: logger}
}

// AddStep appends a step.
func (s *Saga) AddStep(step Step) *Saga {
	s.steps = append(s.steps, step)
	return s
}

// Execute runs the saga. Compensation runs on a context detached from ctx's
// cancellation so a client disconnect cannot leave half-applied side effects.
func (s *Saga) Execute(ctx context.Context) error {
	log := s.logger.With(zap.String("saga", s.name))
	log.Debug("saga started", zap.Int("steps", len(s.steps)))

	for i, step := range s.steps {
		log.Debug("executing saga step", zap.String("step", step.Name))

		err := step.Execute(ctx)
		if err == nil {
			continue
		}

		log.Warn("saga step failed, compensating",
			zap.String("step", step.Name),
			zap.Error(err),
		)
		return &StepError{
			Saga:            s.name,
			Step:            step.Name,
			Err:             err,
			CompensationErr: s.compensate(context.WithoutCancel(ctx), s.steps[:i], log),
		}
	}

	log.Debug("saga completed")
	return nil
}

func (s *Saga) compensate(ctx context.Context, done []Step, log *zap.Logger) error {
	var errs []error
	for i := len(done) - 1; i >= 0; i-- {
		step := done[i]
		if step.Compensate == nil {
			continue
		}
		if err := step.Compensate(ctx); err != nil {
			log.Error("compensation failed", zap.String("step", step.Name), zap.Error(err))
			errs = append(errs, fmt.Errorf("%s: %w", step.Name, err))
		}
	}
	return errors.Join(errs...)
}
