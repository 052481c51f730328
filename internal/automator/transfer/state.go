package transfer

// State is a step of the transfer workflow.
type State string

const (
	StateStart               State = "START"
	StateMainFormFilled      State = "MAIN_FORM_FILLED"
	StateAwaitingStep1Submit State = "AWAITING_STEP1_SUBMIT"
	StateConfirmationLoaded  State = "CONFIRMATION_LOADED"
	StatePhoneFilled         State = "PHONE_FILLED"
	StatePhoneSkipped        State = "PHONE_SKIPPED"
	StateCompleted           State = "COMPLETED"
	StateFailed              State = "FAILED"
)

var transitions = map[State][]State{
	StateStart:               {StateMainFormFilled},
	StateMainFormFilled:      {StateAwaitingStep1Submit},
	StateAwaitingStep1Submit: {StateConfirmationLoaded},
	StateConfirmationLoaded:  {StatePhoneFilled, StatePhoneSkipped},
	StatePhoneFilled:         {StateCompleted},
	StatePhoneSkipped:        {StateCompleted},
}

func (s State) Terminal() bool {
	return s == StateCompleted || s == StateFailed
}

// CanTransition reports whether the workflow may move from s to next.
// Failed is reachable from every non-terminal state.
func (s State) CanTransition(next State) bool {
	if s.Terminal() {
		return false
	}
	if next == StateFailed {
		return true
	}
	for _, allowed := range transitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}
