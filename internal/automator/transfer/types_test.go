package transfer

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAmount(t *testing.T) {
	tests := []struct {
		input string
		want  Amount
		str   string
	}{
		{"100", 100_00, "100.00"},
		{"100.5", 100_50, "100.50"},
		{"100.50", 100_50, "100.50"},
		{"0.01", 1, "0.01"},
		{" 12.30 ", 12_30, "12.30"},
	}

	for _, tt := range tests {
		got, err := ParseAmount(tt.input)
		require.NoError(t, err, tt.input)
		assert.Equal(t, tt.want, got, tt.input)
		assert.Equal(t, tt.str, got.String(), tt.input)
	}
}

func TestParseAmount_Invalid(t *testing.T) {
	inputs := []string{
		"", "abc", "1.234", "1.", ".50", "-1.00", "+1", "1,50",
		"1.+5", "1.-5", "1.5a", "1 .50",
		"92233720368547758",
		"92233720368547759",
		"99999999999999999999",
	}
	for _, input := range inputs {
		_, err := ParseAmount(input)
		assert.ErrorIs(t, err, ErrInvalidInput, "input %q", input)
	}
}

func TestParseAmount_LargestAmount(t *testing.T) {
	got, err := ParseAmount("92233720368547757.99")
	require.NoError(t, err)
	assert.Equal(t, Amount(math.MaxInt64-8), got)
	assert.Equal(t, "92233720368547757.99", got.String())
}

func TestAmount_String_Negative(t *testing.T) {
	assert.Equal(t, "-0.50", Amount(-50).String())
	assert.Equal(t, "-12.05", Amount(-1205).String())
}

func TestMaskCardNumber(t *testing.T) {
	assert.Equal(t, "1234-****-****-2345", MaskCardNumber("1234-5678-9101-2345"))
	assert.Equal(t, "****", MaskCardNumber("1234"))
	assert.Equal(t, "", MaskCardNumber(""))
}

func TestState_CanTransition(t *testing.T) {
	assert.True(t, StateStart.CanTransition(StateMainFormFilled))
	assert.True(t, StateConfirmationLoaded.CanTransition(StatePhoneFilled))
	assert.True(t, StateConfirmationLoaded.CanTransition(StatePhoneSkipped))
	assert.True(t, StatePhoneSkipped.CanTransition(StateCompleted))

	assert.False(t, StateStart.CanTransition(StateCompleted))
	assert.False(t, StateMainFormFilled.CanTransition(StateConfirmationLoaded))
	assert.False(t, StateCompleted.CanTransition(StateFailed))
	assert.False(t, StateFailed.CanTransition(StateStart))

	for _, s := range []State{StateStart, StateMainFormFilled, StateAwaitingStep1Submit, StateConfirmationLoaded, StatePhoneFilled, StatePhoneSkipped} {
		assert.True(t, s.CanTransition(StateFailed), "%s -> FAILED", s)
		assert.False(t, s.Terminal())
	}
	assert.True(t, StateCompleted.Terminal())
	assert.True(t, StateFailed.Terminal())
}

func TestResult_Advance(t *testing.T) {
	res := &Result{State: StateStart, History: []State{StateStart}}

	require.NoError(t, res.Advance(StateMainFormFilled))
	require.Error(t, res.Advance(StateCompleted))
	require.NoError(t, res.Advance(StateFailed))

	assert.Equal(t, StateFailed, res.State)
	assert.Equal(t, []State{StateStart, StateMainFormFilled, StateFailed}, res.History)
}

func TestStepError_Unwrap(t *testing.T) {
	err := &StepError{Step: "step1", Operation: "Submit", Cause: ErrTimeout, Details: "send button"}

	assert.ErrorIs(t, err, ErrTimeout)
	assert.EqualError(t, err, "[step1] Submit failed: operation timed out - send button")
}
