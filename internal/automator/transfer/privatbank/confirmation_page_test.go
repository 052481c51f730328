package privatbank

import (
	"testing"

	"github.com/grez-lucas/sendmoney-automator/internal/automator/browser/browsertest"
	"github.com/grez-lucas/sendmoney-automator/internal/automator/transfer"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func loadConfirmation(t *testing.T, w *fakeWizard) *ConfirmationPage {
	t.Helper()
	w.driver.SetURLs(confirmationURL)
	page, err := newConfirmationPage(w.driver, w.poller, newOptions(w.options()))
	require.NoError(t, err)
	return page
}

func TestConfirmationPage_WaitsForStep2URL(t *testing.T) {
	w := newFakeWizard(t)
	w.driver.SetURLs(SendMoneyURL, SendMoneyURL, confirmationURL)

	page, err := newConfirmationPage(w.driver, w.poller, newOptions(w.options()))

	require.NoError(t, err)
	assert.NotNil(t, page)
	assert.Equal(t, 2, w.clock.Sleeps)
}

func TestConfirmationPage_IsPhoneFieldPresent(t *testing.T) {
	w := newFakeWizard(t)
	page := loadConfirmation(t, w)

	present, err := page.IsPhoneFieldPresent()
	require.NoError(t, err)
	assert.True(t, present)

	// Repeated calls have no side effects.
	present, err = page.IsPhoneFieldPresent()
	require.NoError(t, err)
	assert.True(t, present)
	assert.Len(t, w.driver.Calls(), 0)

	w.withoutPhone()
	present, err = page.IsPhoneFieldPresent()
	require.NoError(t, err)
	assert.False(t, present)
}

func TestConfirmationPage_FillPhoneNumber(t *testing.T) {
	w := newFakeWizard(t)
	page := loadConfirmation(t, w)

	require.NoError(t, page.FillPhoneNumber("380501234567"))

	assert.Equal(t, []string{"380501234567"}, w.phone.Keys())
}

func TestConfirmationPage_FillPhoneNumber_FieldAbsent(t *testing.T) {
	w := newFakeWizard(t).withoutPhone()
	page := loadConfirmation(t, w)

	err := page.FillPhoneNumber("380501234567")

	assert.NoError(t, err)
	assert.Empty(t, w.driver.CallsTo("SendKeys"))
}

func TestConfirmationPage_Submit(t *testing.T) {
	w := newFakeWizard(t)
	page := loadConfirmation(t, w)

	require.NoError(t, page.Submit())

	assert.Equal(t, []browsertest.Call{{Element: "confirm", Method: "Click"}}, w.driver.CallsTo("Click"))
}

func TestConfirmationPage_Submit_MissingButton(t *testing.T) {
	w := newFakeWizard(t)
	w.driver.Remove(confirmationPageLocators[FieldSendButton])
	page := loadConfirmation(t, w)

	err := page.Submit()

	assert.ErrorIs(t, err, transfer.ErrElementNotFound)
}
