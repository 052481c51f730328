// Package browsertest provides an in-memory browser.Driver that records every
// interaction, for testing page controllers without a browser.
package browsertest

import (
	"fmt"
	"sync"

	"github.com/grez-lucas/sendmoney-automator/internal/automator/browser"
)

// Call is a single recorded interaction.
type Call struct {
	Element string // element name, "" for driver-level calls
	Method  string
	Arg     string
}

// Driver is a scripted fake. Register elements under their locator with Add
// before handing the driver to a page.
type Driver struct {
	mu       sync.Mutex
	elements map[string][]*Element
	calls    []Call
	urls     []string
	urlIdx   int

	// OnNavigate, when set, is invoked after every Navigate call.
	OnNavigate func(url string)
}

func NewDriver() *Driver {
	return &Driver{elements: make(map[string][]*Element)}
}

// Add registers elements under locator, in lookup order.
func (d *Driver) Add(locator string, els ...*Element) {
	d.mu.Lock()
	defer d.mu.Unlock()
	for _, el := range els {
		el.driver = d
	}
	d.elements[locator] = append(d.elements[locator], els...)
}

// Remove drops every element registered under locator.
func (d *Driver) Remove(locator string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	delete(d.elements, locator)
}

// SetURLs scripts CurrentURL: each call returns the next URL, the last one
// repeats forever.
func (d *Driver) SetURLs(urls ...string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.urls = urls
	d.urlIdx = 0
}

func (d *Driver) Navigate(url string) error {
	d.record(Call{Method: "Navigate", Arg: url})
	d.mu.Lock()
	d.urls = []string{url}
	d.urlIdx = 0
	hook := d.OnNavigate
	d.mu.Unlock()
	if hook != nil {
		hook(url)
	}
	return nil
}

func (d *Driver) FindElement(locator string) (browser.Element, error) {
	d.mu.Lock()
	els := d.elements[locator]
	d.mu.Unlock()
	if len(els) == 0 {
		return nil, fmt.Errorf("%w: %s", browser.ErrElementNotFound, locator)
	}
	return els[0], nil
}

func (d *Driver) FindElements(locator string) ([]browser.Element, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	out := make([]browser.Element, 0, len(d.elements[locator]))
	for _, el := range d.elements[locator] {
		out = append(out, el)
	}
	return out, nil
}

func (d *Driver) CurrentURL() (string, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if len(d.urls) == 0 {
		return "about:blank", nil
	}
	u := d.urls[d.urlIdx]
	if d.urlIdx < len(d.urls)-1 {
		d.urlIdx++
	}
	return u, nil
}

// Calls returns a copy of every recorded interaction, in order.
func (d *Driver) Calls() []Call {
	d.mu.Lock()
	defer d.mu.Unlock()
	return append([]Call(nil), d.calls...)
}

// CallsTo filters Calls by method name.
func (d *Driver) CallsTo(method string) []Call {
	var out []Call
	for _, c := range d.Calls() {
		if c.Method == method {
			out = append(out, c)
		}
	}
	return out
}

func (d *Driver) record(c Call) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.calls = append(d.calls, c)
}

// Element is a fake DOM element. Attribute values can be scripted as a
// sequence: each read returns the next value and the last one sticks.
type Element struct {
	Name     string
	Disabled bool

	// EnableAfter makes Enabled report false for that many reads before
	// flipping Disabled off.
	EnableAfter int

	// OnClick, when set, runs after a recorded click.
	OnClick func()

	driver *Driver
	attrs  map[string][]string
	reads  map[string]int
	keys   []string
	picked []string
}

func NewElement(name string) *Element {
	return &Element{
		Name:  name,
		attrs: make(map[string][]string),
		reads: make(map[string]int),
	}
}

// WithAttribute scripts the values returned by successive Attribute reads.
func (e *Element) WithAttribute(name string, values ...string) *Element {
	e.attrs[name] = values
	e.reads[name] = 0
	return e
}

func (e *Element) Attribute(name string) (string, error) {
	values := e.attrs[name]
	if len(values) == 0 {
		return "", nil
	}
	i := e.reads[name]
	if i < len(values)-1 {
		e.reads[name]++
	}
	return values[i], nil
}

func (e *Element) Enabled() (bool, error) {
	if e.EnableAfter > 0 {
		e.EnableAfter--
		if e.EnableAfter == 0 {
			e.Disabled = false
		}
		return false, nil
	}
	return !e.Disabled, nil
}

func (e *Element) SendKeys(text string) error {
	e.keys = append(e.keys, text)
	e.driver.record(Call{Element: e.Name, Method: "SendKeys", Arg: text})
	return nil
}

func (e *Element) Click() error {
	e.driver.record(Call{Element: e.Name, Method: "Click"})
	if e.OnClick != nil {
		e.OnClick()
	}
	return nil
}

func (e *Element) SelectByValue(value string) error {
	e.picked = append(e.picked, value)
	e.driver.record(Call{Element: e.Name, Method: "SelectByValue", Arg: value})
	return nil
}

// Keys returns everything sent to the element, one entry per SendKeys call.
func (e *Element) Keys() []string {
	return append([]string(nil), e.keys...)
}

// Selected returns every value picked through SelectByValue.
func (e *Element) Selected() []string {
	return append([]string(nil), e.picked...)
}
