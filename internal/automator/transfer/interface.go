// Package transfer defines the common structs and logic used throughout the
// card-to-card transfer automators.
package transfer

type Sender interface {
	// Send drives the transfer wizard from the entry page to the final
	// confirmation click
	Send(req Request) (*Result, error)
}

type Provider string

const (
	ProviderPrivatBank Provider = "PRIVATBANK"
)
