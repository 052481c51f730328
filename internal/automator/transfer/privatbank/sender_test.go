package privatbank

import (
	"testing"

	"github.com/grez-lucas/sendmoney-automator/internal/automator/browser/browsertest"
	"github.com/grez-lucas/sendmoney-automator/internal/automator/transfer"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testRequest() transfer.Request {
	return transfer.Request{
		Sender: transfer.Card{
			Number:       "1234-5678-9101-2345",
			ExpiresMonth: "05",
			ExpiresYear:  "27",
			SecurityCode: "123",
		},
		Receiver:    transfer.Card{Number: "5432-1098-7654-3210"},
		Amount:      100_50,
		PhoneNumber: "380501234567",
	}
}

func newTestSender(w *fakeWizard) *Sender {
	return NewSender(w.driver, append(w.options(), WithPoller(w.poller))...)
}

func TestSender_Send_WithPhone(t *testing.T) {
	w := newFakeWizard(t)
	sender := newTestSender(w)

	res, err := sender.Send(testRequest())

	require.NoError(t, err)
	assert.Equal(t, transfer.ProviderPrivatBank, res.Provider)
	assert.NotEmpty(t, res.ID.String())
	assert.Equal(t, transfer.StateCompleted, res.State)
	assert.Equal(t, []transfer.State{
		transfer.StateStart,
		transfer.StateMainFormFilled,
		transfer.StateAwaitingStep1Submit,
		transfer.StateConfirmationLoaded,
		transfer.StatePhoneFilled,
		transfer.StateCompleted,
	}, res.History)
	assert.False(t, res.FinishedAt.Before(res.StartedAt))

	assert.Equal(t, []browsertest.Call{
		{Method: "Navigate", Arg: SendMoneyURL},
		{Element: "sender-1", Method: "SendKeys", Arg: "1234"},
		{Element: "sender-2", Method: "SendKeys", Arg: "5678"},
		{Element: "sender-3", Method: "SendKeys", Arg: "9101"},
		{Element: "sender-4", Method: "SendKeys", Arg: "2345"},
		{Element: "month", Method: "SelectByValue", Arg: "05"},
		{Element: "year", Method: "SelectByValue", Arg: "27"},
		{Element: "cvv", Method: "SendKeys", Arg: "123"},
		{Element: "receiver-1", Method: "SendKeys", Arg: "5432"},
		{Element: "receiver-2", Method: "SendKeys", Arg: "1098"},
		{Element: "receiver-3", Method: "SendKeys", Arg: "7654"},
		{Element: "receiver-4", Method: "SendKeys", Arg: "3210"},
		{Element: "amount", Method: "SendKeys", Arg: "100.50"},
		{Element: "send", Method: "Click"},
		{Element: "phone", Method: "SendKeys", Arg: "380501234567"},
		{Element: "confirm", Method: "Click"},
	}, w.driver.Calls())
}

func TestSender_Send_WithoutPhone(t *testing.T) {
	w := newFakeWizard(t).withoutPhone()
	sender := newTestSender(w)

	res, err := sender.Send(testRequest())

	require.NoError(t, err)
	assert.Equal(t, transfer.StateCompleted, res.State)
	assert.Contains(t, res.History, transfer.StatePhoneSkipped)
	assert.NotContains(t, res.History, transfer.StatePhoneFilled)
	assert.Empty(t, w.phone.Keys())
	assert.Len(t, w.driver.CallsTo("Click"), 2)
}

func TestSender_Send_InvalidCardPropagatesUnchanged(t *testing.T) {
	w := newFakeWizard(t)
	sender := newTestSender(w)
	req := testRequest()
	req.Receiver.Number = "1234-5678-9101-345"

	res, err := sender.Send(req)

	require.Error(t, err)
	assert.EqualError(t, err, "Each card number block should consist of 4 symbols. Symbols in block 3. Block 345")
	var inputErr *transfer.InvalidInputError
	require.ErrorAs(t, err, &inputErr)
	assert.Equal(t, transfer.WrongBlockLength, inputErr.Kind)

	assert.Equal(t, transfer.StateFailed, res.State)
	assert.Equal(t, []transfer.State{transfer.StateStart, transfer.StateFailed}, res.History)
	assert.Empty(t, w.driver.CallsTo("Click"))
	assert.Empty(t, w.amount.Keys())
}

func TestSender_Send_SubmitTimeout(t *testing.T) {
	w := newFakeWizard(t)
	w.sendButton.WithAttribute("class", "content__buttom send_money_step_1 disabledbutton")
	sender := newTestSender(w)

	res, err := sender.Send(testRequest())

	assert.ErrorIs(t, err, transfer.ErrTimeout)
	assert.Equal(t, transfer.StateFailed, res.State)
	assert.Equal(t, []transfer.State{
		transfer.StateStart,
		transfer.StateMainFormFilled,
		transfer.StateAwaitingStep1Submit,
		transfer.StateFailed,
	}, res.History)
	assert.Empty(t, w.driver.CallsTo("Click"))
}

func TestSender_Send_MissingConfirmButton(t *testing.T) {
	w := newFakeWizard(t)
	w.driver.Remove(confirmationPageLocators[FieldSendButton])
	sender := newTestSender(w)

	res, err := sender.Send(testRequest())

	assert.ErrorIs(t, err, transfer.ErrElementNotFound)
	assert.Equal(t, transfer.StateFailed, res.State)
	assert.Contains(t, res.History, transfer.StatePhoneFilled)
	assert.NotContains(t, res.History, transfer.StateCompleted)
}

func TestSender_Prepare_DoesNotSubmit(t *testing.T) {
	w := newFakeWizard(t)
	sender := newTestSender(w)

	page, err := sender.Prepare(testRequest())

	require.NoError(t, err)
	assert.NotNil(t, page)
	assert.Equal(t, []string{"100.50"}, w.amount.Keys())
	assert.Empty(t, w.driver.CallsTo("Click"))
}
