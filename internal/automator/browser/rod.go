package browser

import (
	"errors"
	"fmt"
	"time"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/proto"
)

// RodDriver implements Driver on top of a single Rod page.
type RodDriver struct {
	page    *rod.Page
	typer   Typer
	timeout time.Duration
}

type RodOption func(*RodDriver)

// WithTyper sets how SendKeys types into elements. Defaults to TypeFast.
func WithTyper(t Typer) RodOption {
	return func(d *RodDriver) {
		d.typer = t
	}
}

// WithOperationTimeout bounds every single CDP call made through the driver.
func WithOperationTimeout(timeout time.Duration) RodOption {
	return func(d *RodDriver) {
		d.timeout = timeout
	}
}

func NewRodDriver(page *rod.Page, opts ...RodOption) *RodDriver {
	d := &RodDriver{
		page:    page,
		typer:   TypeFast,
		timeout: 30 * time.Second,
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Page returns the underlying page, e.g. to attach a hijack router.
func (d *RodDriver) Page() *rod.Page {
	return d.page
}

func (d *RodDriver) Navigate(url string) error {
	if err := d.page.Timeout(d.timeout).Navigate(url); err != nil {
		return fmt.Errorf("navigate to %s: %w", url, err)
	}
	return nil
}

// FindElement does not wait for the element to appear; waiting is the
// caller's job through a Poller.
func (d *RodDriver) FindElement(locator string) (Element, error) {
	el, err := d.page.Timeout(d.timeout).Sleeper(rod.NotFoundSleeper).ElementX(locator)
	if err != nil {
		var notFound *rod.ElementNotFoundError
		if errors.As(err, &notFound) {
			return nil, fmt.Errorf("%w: %s", ErrElementNotFound, locator)
		}
		return nil, fmt.Errorf("find %s: %w", locator, err)
	}
	return &rodElement{el: el, typer: d.typer}, nil
}

func (d *RodDriver) FindElements(locator string) ([]Element, error) {
	els, err := d.page.Timeout(d.timeout).ElementsX(locator)
	if err != nil {
		return nil, fmt.Errorf("find all %s: %w", locator, err)
	}

	out := make([]Element, len(els))
	for i, el := range els {
		out[i] = &rodElement{el: el, typer: d.typer}
	}
	return out, nil
}

func (d *RodDriver) CurrentURL() (string, error) {
	info, err := d.page.Info()
	if err != nil {
		return "", fmt.Errorf("page info: %w", err)
	}
	return info.URL, nil
}

type rodElement struct {
	el    *rod.Element
	typer Typer
}

func (e *rodElement) Attribute(name string) (string, error) {
	v, err := e.el.Attribute(name)
	if err != nil {
		return "", err
	}
	if v == nil {
		return "", nil
	}
	return *v, nil
}

func (e *rodElement) Enabled() (bool, error) {
	disabled, err := e.el.Disabled()
	if err != nil {
		return false, err
	}
	return !disabled, nil
}

func (e *rodElement) SendKeys(text string) error {
	return e.typer(e.el, text)
}

func (e *rodElement) Click() error {
	return e.el.Click(proto.InputMouseButtonLeft, 1)
}

func (e *rodElement) SelectByValue(value string) error {
	selector := fmt.Sprintf(`option[value=%q]`, value)
	if err := e.el.Select([]string{selector}, true, rod.SelectorTypeCSSSector); err != nil {
		return fmt.Errorf("select option %q: %w", value, err)
	}
	return nil
}
