package privatbank

import (
	"github.com/grez-lucas/sendmoney-automator/internal/automator/browser"
	"github.com/grez-lucas/sendmoney-automator/internal/automator/transfer"
)

// ConfirmationPage is step 2 of the sendmoney wizard. It is only reachable
// through MainPage.Submit.
type ConfirmationPage struct {
	driver browser.Driver
	poller *browser.Poller
	opts   options
}

func newConfirmationPage(driver browser.Driver, poller *browser.Poller, o options) (*ConfirmationPage, error) {
	o.logger.Debug("loading step 2 page")
	if err := poller.URLSuffix(driver, ConfirmationURLSuffix, o.timeout); err != nil {
		return nil, &transfer.StepError{Step: stepConfirmation, Operation: "Load", Cause: err}
	}

	return &ConfirmationPage{driver: driver, poller: poller, opts: o}, nil
}

// IsPhoneFieldPresent reports whether the page asks for the sender phone.
// The field is absent when the sender card is issued by PrivatBank.
func (p *ConfirmationPage) IsPhoneFieldPresent() (bool, error) {
	els, err := p.driver.FindElements(confirmationPageLocators[FieldPhoneNumber])
	if err != nil {
		return false, &transfer.StepError{Step: stepConfirmation, Operation: "IsPhoneFieldPresent", Cause: err}
	}
	return len(els) > 0, nil
}

// FillPhoneNumber types a phone in the 380XXXXXXXXX format. It does nothing
// when the field is absent.
func (p *ConfirmationPage) FillPhoneNumber(phone string) error {
	const op = "FillPhoneNumber"

	present, err := p.IsPhoneFieldPresent()
	if err != nil {
		return err
	}
	if !present {
		p.opts.logger.Warn("fill phone number invoked but field is absent")
		return nil
	}

	el, err := p.driver.FindElement(confirmationPageLocators[FieldPhoneNumber])
	if err != nil {
		return &transfer.StepError{Step: stepConfirmation, Operation: op, Cause: err}
	}
	if err := el.SendKeys(phone); err != nil {
		return &transfer.StepError{Step: stepConfirmation, Operation: op, Cause: err}
	}
	return nil
}

// Submit clicks the final send button. The button is active as soon as the
// step is loaded, so there is no wait.
func (p *ConfirmationPage) Submit() error {
	const op = "Submit"

	p.opts.logger.Debug("invoking send button on step 2")
	el, err := p.driver.FindElement(confirmationPageLocators[FieldSendButton])
	if err != nil {
		return &transfer.StepError{Step: stepConfirmation, Operation: op, Cause: err}
	}
	if err := el.Click(); err != nil {
		return &transfer.StepError{Step: stepConfirmation, Operation: op, Cause: err}
	}
	return nil
}
