package cli

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/manifoldco/promptui"
)

var errEmptyInput = errors.New("you must enter something")

// PromptConfirm asks a yes/no question. Answering no is not an error.
func PromptConfirm(label string) (bool, error) {
	prompt := promptui.Prompt{
		Label:     label,
		IsConfirm: true,
		Stdin:     os.Stdin,
		Stdout:    os.Stdout,
	}

	_, err := prompt.Run()
	if err != nil {
		if errors.Is(err, promptui.ErrAbort) {
			return false, nil
		}

		return false, err
	}

	return true, nil
}

// PromptString asks for a non-empty line of text.
func PromptString(label string) (string, error) {
	prompt := promptui.Prompt{
		Label:    label,
		Validate: ValidateNonEmpty,
		Stdin:    os.Stdin,
		Stdout:   os.Stdout,
	}

	return prompt.Run()
}

// PromptInt64 asks for a base-10 integer.
func PromptInt64(label string) (int64, error) {
	prompt := promptui.Prompt{
		Label:    label,
		Validate: ValidateInt64,
		Stdin:    os.Stdin,
		Stdout:   os.Stdout,
	}

	txt, err := prompt.Run()
	if err != nil {
		return 0, err
	}

	return ParseInt64(txt)
}

// ValidateNonEmpty rejects blank input.
func ValidateNonEmpty(s string) error {
	if strings.TrimSpace(s) == "" {
		return errEmptyInput
	}

	return nil
}

// ValidateInt64 rejects input that ParseInt64 cannot read.
func ValidateInt64(s string) error {
	_, err := ParseInt64(s)

	return err
}

// ParseInt64 reads a base-10 integer, ignoring surrounding space.
func ParseInt64(s string) (int64, error) {
	val, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid integer: %w", err)
	}

	return val, nil
}
