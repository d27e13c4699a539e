package cli

import (
	"os"
	"strings"

	"github.com/manifoldco/promptui"
)

// Select shows a single-choice menu and returns the index and label picked.
// Typing filters the choices by prefix.
func Select(label string, choices ...string) (int, string, error) {
	sel := &promptui.Select{
		Label: label,
		Items: choices,
		Searcher: func(input string, index int) bool {
			return strings.HasPrefix(strings.ToLower(choices[index]), strings.ToLower(input))
		},
		Stdin:  os.Stdin,
		Stdout: os.Stdout,
	}

	return sel.Run()
}
