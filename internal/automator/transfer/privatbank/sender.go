// Package privatbank drives the PrivatBank sendmoney card-to-card transfer
// wizard.
package privatbank

import (
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/grez-lucas/sendmoney-automator/internal/automator/browser"
	"github.com/grez-lucas/sendmoney-automator/internal/automator/transfer"
)

// Sender runs one transfer at a time over a driver it owns exclusively. It is
// not safe for concurrent use.
type Sender struct {
	driver browser.Driver
	opts   options
	now    func() time.Time
}

var _ transfer.Sender = (*Sender)(nil)

func NewSender(driver browser.Driver, opts ...Option) *Sender {
	return &Sender{
		driver: driver,
		opts:   newOptions(opts),
		now:    time.Now,
	}
}

// Send fills the main form, submits it, fills the phone when the
// confirmation step asks for it and confirms. Component errors are returned
// unchanged; the Result is returned in every case.
func (s *Sender) Send(req transfer.Request) (*transfer.Result, error) {
	res := &transfer.Result{
		ID:        uuid.New(),
		Provider:  transfer.ProviderPrivatBank,
		State:     transfer.StateStart,
		History:   []transfer.State{transfer.StateStart},
		StartedAt: s.now(),
	}
	logger := s.opts.logger.With("run_id", res.ID.String())

	logger.Info("starting transfer",
		"sender", transfer.MaskCardNumber(req.Sender.Number),
		"receiver", transfer.MaskCardNumber(req.Receiver.Number),
		"amount", req.Amount.String(),
	)

	err := s.run(req, res, logger)
	res.FinishedAt = s.now()
	if err != nil {
		_ = res.Advance(transfer.StateFailed)
		logger.Error("transfer failed", "state", res.History[len(res.History)-2], "error", err)
		return res, err
	}

	logger.Info("transfer completed", "duration", res.FinishedAt.Sub(res.StartedAt))
	return res, nil
}

// Prepare opens the main page and fills every field without submitting.
func (s *Sender) Prepare(req transfer.Request) (*MainPage, error) {
	page, err := NewMainPage(s.driver, s.opts.poller, s.pageOptions(s.opts.logger)...)
	if err != nil {
		return nil, err
	}
	if err := fillMainForm(page, req); err != nil {
		return nil, err
	}
	return page, nil
}

func (s *Sender) run(req transfer.Request, res *transfer.Result, logger *slog.Logger) error {
	page, err := NewMainPage(s.driver, s.opts.poller, s.pageOptions(logger)...)
	if err != nil {
		return err
	}

	if err := fillMainForm(page, req); err != nil {
		return err
	}
	if err := res.Advance(transfer.StateMainFormFilled); err != nil {
		return err
	}

	if err := res.Advance(transfer.StateAwaitingStep1Submit); err != nil {
		return err
	}
	confirmation, err := page.Submit()
	if err != nil {
		return err
	}
	if err := res.Advance(transfer.StateConfirmationLoaded); err != nil {
		return err
	}

	present, err := confirmation.IsPhoneFieldPresent()
	if err != nil {
		return err
	}
	if present {
		if err := confirmation.FillPhoneNumber(req.PhoneNumber); err != nil {
			return err
		}
		err = res.Advance(transfer.StatePhoneFilled)
	} else {
		logger.Debug("phone field absent, skipping")
		err = res.Advance(transfer.StatePhoneSkipped)
	}
	if err != nil {
		return err
	}

	if err := confirmation.Submit(); err != nil {
		return err
	}
	return res.Advance(transfer.StateCompleted)
}

// fillMainForm keeps the field order fixed: the page enables the amount
// field and the send button based on what was typed before.
func fillMainForm(page *MainPage, req transfer.Request) error {
	if err := page.FillSenderCardNumber(req.Sender.Number); err != nil {
		return err
	}
	if err := page.FillSenderExpiresDate(req.Sender.ExpiresMonth, req.Sender.ExpiresYear); err != nil {
		return err
	}
	if err := page.FillCvv(req.Sender.SecurityCode); err != nil {
		return err
	}
	if err := page.FillReceiverCardNumber(req.Receiver.Number); err != nil {
		return err
	}
	return page.FillAmount(req.Amount.String())
}

func (s *Sender) pageOptions(logger *slog.Logger) []Option {
	return []Option{WithLogger(logger), WithTimeout(s.opts.timeout)}
}
