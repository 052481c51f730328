// Package browser provides the driver abstraction the wizard pages are written
// against, its Rod implementation and the polling primitive used to wait for
// asynchronously rendered UI state.
package browser

import "errors"

var (
	ErrElementNotFound = errors.New("element not found")
	ErrTimeout         = errors.New("operation timed out")
)

// Driver is the page-level handle of a single browser tab. Locators are XPath
// expressions.
type Driver interface {
	Navigate(url string) error
	// FindElement fails with ErrElementNotFound when nothing matches
	FindElement(locator string) (Element, error)
	// FindElements returns an empty slice when nothing matches
	FindElements(locator string) ([]Element, error)
	CurrentURL() (string, error)
}

type Element interface {
	// Attribute returns "" when the attribute is missing
	Attribute(name string) (string, error)
	Enabled() (bool, error)
	SendKeys(text string) error
	Click() error
	// SelectByValue picks the <option> whose value attribute equals value
	SelectByValue(value string) error
}
