// Package wizard runs multi-step workflows over a typed state. Steps run in order and
// the first failing step stops the flow.
package wizard

import (
	"context"
	"fmt"
)

type Step[S any] struct {
	Name    string
	Execute func(ctx context.Context, state *S) error
}

func NewStep[S any](name string, execute func(ctx context.Context, state *S) error) Step[S] {
	return Step[S]{Name: name, Execute: execute}
}

type Flow[S any] struct {
	name  string
	steps []Step[S]
}

func NewFlow[S any](name string, steps ...Step[S]) *Flow[S] {
	return &Flow[S]{name: name, steps: steps}
}

func (f *Flow[S]) Name() string {
	return f.name
}

func (f *Flow[S]) Steps() []string {
	names := make([]string, len(f.steps))
	for i, s := range f.steps {
		names[i] = s.Name
	}
	return names
}

// StepError reports which step stopped the flow. It unwraps to the step's own error.
type StepError struct {
	Flow string
	Step string
	Err  error
}

func (e *StepError) Error() string {
	return fmt.Sprintf("%s: %s step failed: %v", e.Flow, e.Step, e.Err)
}

func (e *StepError) Unwrap() error {
	return e.Err
}

// Run executes every step against state. Context cancellation is checked between steps.
func (f *Flow[S]) Run(ctx context.Context, state *S) error {
	for _, step := range f.steps {
		if err := ctx.Err(); err != nil {
			return &StepError{Flow: f.name, Step: step.Name, Err: err}
		}
		if err := step.Execute(ctx, state); err != nil {
			return &StepError{Flow: f.name, Step: step.Name, Err: err}
		}
	}
	return nil
}
