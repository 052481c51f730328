package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

// Example is the template written by WriteExample.
func Example() *Config {
	cfg := Default()
	cfg.Sender = SenderCard{
		Number:       "0000-0000-0000-0000",
		ExpiresMonth: "01",
		ExpiresYear:  "30",
		Cvv:          "000",
	}
	cfg.Receiver = ReceiverCard{Number: "0000-0000-0000-0000"}
	cfg.Transfer = TransferConfig{Amount: "1.00", PhoneNumber: "380000000000"}
	return cfg
}

// WriteExample saves a config template to path.
func WriteExample(path string) error {
	data, err := yaml.Marshal(Example())
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0600)
}
