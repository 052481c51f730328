package transfer

import (
	"strings"
	"unicode/utf8"
)

const (
	cardNumberBlocks    = 4
	cardNumberBlockSize = 4
	cardNumberSeparator = "-"
)

// Tokenize splits a "XXXX-XXXX-XXXX-XXXX" card number into its four blocks.
// Checks run in order (null, block count, each block length) and the first
// failure is returned.
func Tokenize(number string) ([]string, error) {
	if number == "" {
		return nil, &InvalidInputError{Kind: NullValue, Field: "Card number"}
	}

	blocks := strings.Split(number, cardNumberSeparator)
	if len(blocks) != cardNumberBlocks {
		return nil, &InvalidInputError{Kind: WrongBlockCount, Found: len(blocks)}
	}

	for i, block := range blocks {
		if utf8.RuneCountInString(block) != cardNumberBlockSize {
			return nil, &InvalidInputError{Kind: WrongBlockLength, Index: i, Block: block}
		}
	}

	return blocks, nil
}
