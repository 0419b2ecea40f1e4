package onboarding

// Step identifies a screen in the onboarding flow.
type Step int

const (
	// StepWelcome is the introduction screen.
	StepWelcome Step = iota
	// StepGrinderSetup collects the grinder scale range.
	StepGrinderSetup
	// StepBasketSetup collects the basket dose ranges.
	StepBasketSetup
	// StepSummary shows the collected configuration before saving.
	StepSummary
)

// String returns a human-readable step name.
func (s Step) String() string {
	switch s {
	case StepWelcome:
		return "welcome"
	case StepGrinderSetup:
		return "grinder setup"
	case StepBasketSetup:
		return "basket setup"
	case StepSummary:
		return "summary"
	default:
		return "unknown"
	}
}

// Action is a navigation request against the step state machine.
type Action int

const (
	// ActionNext requests the forward transition from the current step.
	ActionNext Action = iota
	// ActionBack requests the backward transition from the current step.
	ActionBack
)

// transition is one edge of the onboarding state machine.
// A nil guard means the edge is unconditional.
type transition struct {
	from   Step
	action Action
	to     Step
	guard  func(*FlowState) bool
}

// transitions is the full edge table. The topology is linear: one forward
// edge per step (gated on that step's validity where it collects input)
// and one unconditional backward edge mirroring it.
var transitions = []transition{
	{from: StepWelcome, action: ActionNext, to: StepGrinderSetup},
	{from: StepGrinderSetup, action: ActionNext, to: StepBasketSetup,
		guard: func(s *FlowState) bool { return s.GrinderValid }},
	{from: StepBasketSetup, action: ActionNext, to: StepSummary,
		guard: func(s *FlowState) bool { return s.BasketValid }},

	{from: StepGrinderSetup, action: ActionBack, to: StepWelcome},
	{from: StepBasketSetup, action: ActionBack, to: StepGrinderSetup},
	{from: StepSummary, action: ActionBack, to: StepBasketSetup},
}

// resolve looks up the transition for (current step, action).
// It returns the target step and true when an edge exists and its guard
// passes; otherwise the current step and false. A guard failure is a
// silent no-op, not an error.
func resolve(state *FlowState, action Action) (Step, bool) {
	for _, tr := range transitions {
		if tr.from != state.Step || tr.action != action {
			continue
		}
		if tr.guard != nil && !tr.guard(state) {
			return state.Step, false
		}
		return tr.to, true
	}
	return state.Step, false
}
