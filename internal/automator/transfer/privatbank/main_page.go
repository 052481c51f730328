package privatbank

import (
	"errors"
	"fmt"
	"strings"

	"github.com/grez-lucas/sendmoney-automator/internal/automator/browser"
	"github.com/grez-lucas/sendmoney-automator/internal/automator/transfer"
)

// MainPage is step 1 of the sendmoney wizard. Creating it opens the page.
// The page stops being usable once Submit hands the session over to the
// ConfirmationPage.
type MainPage struct {
	driver browser.Driver
	poller *browser.Poller
	opts   options
	stale  bool
}

// NewMainPage navigates to the wizard entry URL. It does not wait for the
// page to render: every fill method looks its elements up on demand.
func NewMainPage(driver browser.Driver, poller *browser.Poller, opts ...Option) (*MainPage, error) {
	o := newOptions(opts)
	if poller != nil {
		o.poller = poller
	}

	o.logger.Debug("opening main page", "url", SendMoneyURL)
	if err := driver.Navigate(SendMoneyURL); err != nil {
		return nil, &transfer.StepError{Step: stepMain, Operation: "Open", Cause: err, Details: SendMoneyURL}
	}

	return &MainPage{driver: driver, poller: o.poller, opts: o}, nil
}

// FillSenderCardNumber types a "XXXX-XXXX-XXXX-XXXX" number into the four
// sender card inputs.
func (p *MainPage) FillSenderCardNumber(number string) error {
	p.opts.logger.Debug("filling sender card number", "card", transfer.MaskCardNumber(number))
	return p.fillCardNumber("FillSenderCardNumber", FieldSenderCardNumber, "Sender card number", number)
}

// FillSenderExpiresDate picks the expiry month ("01".."12") and year (last
// two digits) by option value.
func (p *MainPage) FillSenderExpiresDate(month, year string) error {
	const op = "FillSenderExpiresDate"
	if err := p.checkActive(op); err != nil {
		return err
	}

	p.opts.logger.Debug("filling sender card expire date", "month", month, "year", year)
	if err := p.selectByValue(op, FieldSenderExpiresMonth, month); err != nil {
		return err
	}
	return p.selectByValue(op, FieldSenderExpiresYear, year)
}

func (p *MainPage) FillCvv(code string) error {
	const op = "FillCvv"
	if err := p.checkActive(op); err != nil {
		return err
	}

	p.opts.logger.Debug("filling sender cvv2 code")
	el, err := p.find(op, FieldSenderCvv)
	if err != nil {
		return err
	}
	if err := el.SendKeys(code); err != nil {
		return p.fail(op, err, "")
	}
	return nil
}

// FillReceiverCardNumber types a "XXXX-XXXX-XXXX-XXXX" number into the four
// receiver card inputs.
func (p *MainPage) FillReceiverCardNumber(number string) error {
	p.opts.logger.Debug("filling receiver card number", "card", transfer.MaskCardNumber(number))
	return p.fillCardNumber("FillReceiverCardNumber", FieldReceiverCardNumber, "Receiver card number", number)
}

// FillAmount types the amount, e.g. "100.50". The field stays disabled until
// the card data has been validated by the page, so it may have to wait.
func (p *MainPage) FillAmount(amount string) error {
	const op = "FillAmount"
	if err := p.checkActive(op); err != nil {
		return err
	}

	p.opts.logger.Debug("filling amount field", "amount", amount)
	el, err := p.find(op, FieldAmount)
	if err != nil {
		return err
	}

	enabled, err := el.Enabled()
	if err != nil {
		return p.fail(op, err, "")
	}
	if !enabled {
		p.opts.logger.Debug("amount field is unavailable, waiting", "timeout", p.opts.timeout)
		if err := p.poller.ElementEnabled(el, p.opts.timeout); err != nil {
			return p.fail(op, err, mainPageLocators[FieldAmount])
		}
	}

	if err := el.SendKeys(amount); err != nil {
		return p.fail(op, err, "")
	}
	return nil
}

// Submit clicks the send button once it is active and returns the loaded
// confirmation step. No click happens if the button never activates.
func (p *MainPage) Submit() (*ConfirmationPage, error) {
	const op = "Submit"
	if err := p.checkActive(op); err != nil {
		return nil, err
	}

	p.opts.logger.Debug("invoking send button")
	btn, err := p.find(op, FieldSendButton)
	if err != nil {
		return nil, err
	}

	class, err := btn.Attribute("class")
	if err != nil {
		return nil, p.fail(op, err, "")
	}
	p.opts.logger.Debug("send button class", "class", class)

	if strings.HasSuffix(class, disabledButtonSuffix) {
		p.opts.logger.Debug("send button is not clickable, waiting", "timeout", p.opts.timeout)
		if err := p.poller.AttributeEquals(btn, "class", activeSendButtonClass, p.opts.timeout); err != nil {
			return nil, p.fail(op, err, mainPageLocators[FieldSendButton])
		}
	}

	if err := btn.Click(); err != nil {
		return nil, p.fail(op, err, "")
	}
	p.stale = true

	return newConfirmationPage(p.driver, p.poller, p.opts)
}

// fillCardNumber validates the number before looking up any input. label
// names the field in the null value error.
func (p *MainPage) fillCardNumber(op string, field Field, label, number string) error {
	if err := p.checkActive(op); err != nil {
		return err
	}

	blocks, err := transfer.Tokenize(number)
	if err != nil {
		var inputErr *transfer.InvalidInputError
		if errors.As(err, &inputErr) && inputErr.Kind == transfer.NullValue {
			inputErr.Field = label
		}
		return err
	}

	locator := mainPageLocators[field]
	inputs, err := p.driver.FindElements(locator)
	if err != nil {
		return p.fail(op, err, locator)
	}
	if len(inputs) != len(blocks) {
		return p.fail(op, transfer.ErrElementNotFound,
			fmt.Sprintf("expected %d inputs at %s, found %d", len(blocks), locator, len(inputs)))
	}

	for i, input := range inputs {
		if err := input.SendKeys(blocks[i]); err != nil {
			return p.fail(op, err, fmt.Sprintf("block %d", i+1))
		}
	}
	return nil
}

func (p *MainPage) selectByValue(op string, field Field, value string) error {
	el, err := p.find(op, field)
	if err != nil {
		return err
	}
	if err := el.SelectByValue(value); err != nil {
		return p.fail(op, err, mainPageLocators[field])
	}
	return nil
}

func (p *MainPage) find(op string, field Field) (browser.Element, error) {
	locator := mainPageLocators[field]
	el, err := p.driver.FindElement(locator)
	if err != nil {
		return nil, p.fail(op, err, string(field))
	}
	return el, nil
}

func (p *MainPage) checkActive(op string) error {
	if p.stale {
		return p.fail(op, transfer.ErrStalePage, "")
	}
	return nil
}

func (p *MainPage) fail(op string, cause error, details string) error {
	return &transfer.StepError{Step: stepMain, Operation: op, Cause: cause, Details: details}
}
