package privatbank

import (
	"fmt"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/grez-lucas/sendmoney-automator/internal/automator/browser"
	"github.com/grez-lucas/sendmoney-automator/internal/automator/browser/browsertest"
)

const confirmationURL = SendMoneyURL + "step2"

// fakeWizard wires a scripted driver with every element of both wizard steps.
type fakeWizard struct {
	driver *browsertest.Driver
	clock  *browsertest.Clock
	poller *browser.Poller

	senderBlocks   []*browsertest.Element
	receiverBlocks []*browsertest.Element
	month          *browsertest.Element
	year           *browsertest.Element
	cvv            *browsertest.Element
	amount         *browsertest.Element
	sendButton     *browsertest.Element

	phone         *browsertest.Element
	confirmButton *browsertest.Element
}

func newFakeWizard(t *testing.T) *fakeWizard {
	t.Helper()

	clock := browsertest.NewClock()
	w := &fakeWizard{
		driver: browsertest.NewDriver(),
		clock:  clock,
		poller: browser.NewPoller(browser.WithClock(clock), browser.WithInterval(100*time.Millisecond)),

		month:      browsertest.NewElement("month"),
		year:       browsertest.NewElement("year"),
		cvv:        browsertest.NewElement("cvv"),
		amount:     browsertest.NewElement("amount"),
		sendButton: browsertest.NewElement("send").WithAttribute("class", activeSendButtonClass),

		phone:         browsertest.NewElement("phone"),
		confirmButton: browsertest.NewElement("confirm"),
	}

	for i := 1; i <= 4; i++ {
		w.senderBlocks = append(w.senderBlocks, browsertest.NewElement(fmt.Sprintf("sender-%d", i)))
		w.receiverBlocks = append(w.receiverBlocks, browsertest.NewElement(fmt.Sprintf("receiver-%d", i)))
	}

	w.driver.Add(mainPageLocators[FieldSenderCardNumber], w.senderBlocks...)
	w.driver.Add(mainPageLocators[FieldReceiverCardNumber], w.receiverBlocks...)
	w.driver.Add(mainPageLocators[FieldSenderExpiresMonth], w.month)
	w.driver.Add(mainPageLocators[FieldSenderExpiresYear], w.year)
	w.driver.Add(mainPageLocators[FieldSenderCvv], w.cvv)
	w.driver.Add(mainPageLocators[FieldAmount], w.amount)
	w.driver.Add(mainPageLocators[FieldSendButton], w.sendButton)
	w.driver.Add(confirmationPageLocators[FieldPhoneNumber], w.phone)
	w.driver.Add(confirmationPageLocators[FieldSendButton], w.confirmButton)

	// Clicking the step 1 button navigates to step 2.
	w.sendButton.OnClick = func() { w.driver.SetURLs(confirmationURL) }

	return w
}

// withoutPhone removes the phone field, as for a sender card issued by the bank.
func (w *fakeWizard) withoutPhone() *fakeWizard {
	w.driver.Remove(confirmationPageLocators[FieldPhoneNumber])
	return w
}

func (w *fakeWizard) options() []Option {
	return []Option{WithLogger(discardLogger()), WithTimeout(time.Second)}
}

func (w *fakeWizard) mainPage(t *testing.T) *MainPage {
	t.Helper()
	page, err := NewMainPage(w.driver, w.poller, w.options()...)
	if err != nil {
		t.Fatalf("NewMainPage: %v", err)
	}
	return page
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
