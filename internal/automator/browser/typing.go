package browser

import (
	"math/rand"
	"time"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/input"
)

// Typer sends text to an element as keyboard input.
type Typer func(el *rod.Element, text string) error

// TypeHuman types text one key at a time with a 50-150ms pause between keys.
func TypeHuman(el *rod.Element, text string) error {
	for _, char := range text {
		if err := el.Type(input.Key(char)); err != nil {
			return err
		}
		time.Sleep(time.Duration(50+rand.Intn(100)) * time.Millisecond)
	}
	return nil
}

// TypeFast types the whole text in one call, still one key event per
// character. Used in replay mode and tests.
func TypeFast(el *rod.Element, text string) error {
	if text == "" {
		return nil
	}
	keys := make([]input.Key, 0, len(text))
	for _, char := range text {
		keys = append(keys, input.Key(char))
	}
	return el.Type(keys...)
}
