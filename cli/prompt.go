// Package cli holds the interactive bits of the shadowmap tools.
package cli

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/manifoldco/promptui"
)

// Confirmer asks a yes/no question. Commands take one so tests can answer
// without a terminal.
type Confirmer func(label string) (bool, error)

// PromptConfirm asks label on the terminal. Declining is not an error.
func PromptConfirm(label string) (bool, error) {
	return confirm(label, os.Stdin, os.Stdout)
}

func confirm(label string, in io.ReadCloser, out io.WriteCloser) (bool, error) {
	prompt := promptui.Prompt{
		Label:     label,
		IsConfirm: true,
		Stdin:     in,
		Stdout:    out,
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

// ConfirmOverwrite asks whether path may be replaced.
func ConfirmOverwrite(ask Confirmer, path string) (bool, error) {
	if ask == nil {
		ask = PromptConfirm
	}

	return ask(fmt.Sprintf("Overwrite %s", path))
}

// Always is a Confirmer that says yes without asking.
func Always(string) (bool, error) {
	return true, nil
}
