package planner

import "errors"

var (
	ErrEmptyGraph        = errors.New("planner: no tasks declared")
	ErrEmptyTaskName     = errors.New("planner: task name is empty")
	ErrDuplicateTask     = errors.New("planner: duplicate task")
	ErrUnknownTask       = errors.New("planner: unknown upstream task")
	ErrCycle             = errors.New("planner: dependency cycle")
	ErrMissingProduce    = errors.New("planner: task has no produce function")
	ErrPreconditionUnmet = errors.New("precondition unmet")
	ErrUpstreamFailed    = errors.New("upstream task failed")
	ErrRunCancelled      = errors.New("run cancelled")
)
