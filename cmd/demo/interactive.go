package main

import (
	"errors"
	"fmt"

	"github.com/amp-labs/sortedlist/cli"
	"github.com/amp-labs/sortedlist/sortedlist"
	"github.com/manifoldco/promptui"
)

const (
	actionInsert   = "Insert a value"
	actionRemove   = "Remove a value"
	actionContains = "Check membership"
	actionClear    = "Clear the list"
	actionQuit     = "Quit"
)

// interactive lets the operator build a list by hand.
func (d *demo) interactive() error {
	_, kindName, err := cli.Select("Element kind", "integral", "text")
	if err != nil {
		return err
	}

	kind, err := sortedlist.ParseKind(kindName)
	if err != nil {
		return err
	}

	list, err := d.newList("interactive", sortedlist.WithKind(kind))
	if err != nil {
		return err
	}

	for {
		d.printf("%#v\n", list)

		_, action, err := cli.Select("Action", actionInsert, actionRemove, actionContains, actionClear, actionQuit)
		if err != nil {
			if errors.Is(err, promptui.ErrInterrupt) || errors.Is(err, promptui.ErrEOF) {
				return nil
			}

			return err
		}

		switch action {
		case actionQuit:
			return nil
		case actionClear:
			ok, err := cli.PromptConfirm("Remove every element")
			if err != nil {
				return err
			}

			if ok {
				list.Clear()
			}

			continue
		}

		value, err := promptValue(kind)
		if err != nil {
			return err
		}

		switch action {
		case actionInsert:
			if err := list.Insert(value); err != nil {
				d.printf("✗ %v\n", err)
			}
		case actionRemove:
			d.printf("removed: %t\n", list.Remove(value))
		case actionContains:
			d.printf("contains: %t\n", list.Contains(value))
		}
	}
}

func promptValue(kind sortedlist.Kind) (sortedlist.Value, error) {
	switch kind {
	case sortedlist.KindIntegral:
		n, err := cli.PromptInt64("Integer")
		if err != nil {
			return sortedlist.Value{}, err
		}

		return sortedlist.Int(n), nil
	case sortedlist.KindText:
		s, err := cli.PromptString("Text")
		if err != nil {
			return sortedlist.Value{}, err
		}

		return sortedlist.Text(s), nil
	default:
		return sortedlist.Value{}, fmt.Errorf("%w: %s", sortedlist.ErrUnsupportedKind, kind)
	}
}
