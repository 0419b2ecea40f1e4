package onboarding

import "maps"

// Field identifies a single numeric text input in the onboarding flow.
type Field int

const (
	// FieldGrinderMin is the lower bound of the grinder scale.
	FieldGrinderMin Field = iota
	// FieldGrinderMax is the upper bound of the grinder scale.
	FieldGrinderMax
	// FieldCoffeeInMin is the lower bound of the dry dose range.
	FieldCoffeeInMin
	// FieldCoffeeInMax is the upper bound of the dry dose range.
	FieldCoffeeInMax
	// FieldCoffeeOutMin is the lower bound of the beverage weight range.
	FieldCoffeeOutMin
	// FieldCoffeeOutMax is the upper bound of the beverage weight range.
	FieldCoffeeOutMax
)

// grinderFields and basketFields group the inputs by step.
var (
	grinderFields = []Field{FieldGrinderMin, FieldGrinderMax}
	basketFields  = []Field{FieldCoffeeInMin, FieldCoffeeInMax, FieldCoffeeOutMin, FieldCoffeeOutMax}
)

// FlowState is the ephemeral, in-memory state of one onboarding session.
// It is created at flow start, mutated by every input and navigation
// action, and discarded on completion. Partial progress is never
// persisted; re-entering onboarding restarts at the welcome step.
type FlowState struct {
	Step Step

	// Raw text and per-field parse error, keyed by field.
	Fields      map[Field]string
	FieldErrors map[Field]string

	// Range-level errors, shown once all fields of a step parse.
	GrinderError string
	BasketError  string

	// Per-step validity flags gating forward transitions.
	GrinderValid bool
	BasketValid  bool

	// Saving is the single-flight guard for persistence operations.
	Saving bool

	// Error is the displayable persistence failure message, if any.
	Error string

	// Completed is set after a successful finalize or skip.
	Completed bool
}

// newFlowState returns the initial state at the welcome step.
func newFlowState() FlowState {
	return FlowState{
		Step:        StepWelcome,
		Fields:      make(map[Field]string),
		FieldErrors: make(map[Field]string),
	}
}

// clone returns a deep copy safe to hand to observers.
func (s FlowState) clone() FlowState {
	c := s
	c.Fields = make(map[Field]string, len(s.Fields))
	maps.Copy(c.Fields, s.Fields)
	c.FieldErrors = make(map[Field]string, len(s.FieldErrors))
	maps.Copy(c.FieldErrors, s.FieldErrors)
	return c
}
