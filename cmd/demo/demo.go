package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/amp-labs/sortedlist/cli"
	"github.com/amp-labs/sortedlist/sortedlist"
)

// demo prints the walkthrough to out. Every list it creates shares opts.
type demo struct {
	out    io.Writer
	cfg    Config
	opts   []sortedlist.Option
	logger *slog.Logger
	width  int
}

func (d *demo) printf(format string, args ...any) {
	_, _ = fmt.Fprintf(d.out, format, args...)
}

func (d *demo) banner(title string) {
	_, _ = io.WriteString(d.out, cli.Banner(title, d.width, cli.AlignLeft))
}

func (d *demo) newList(name string, extra ...sortedlist.Option) (*sortedlist.List, error) {
	opts := append([]sortedlist.Option{sortedlist.WithName(name)}, d.opts...)

	return sortedlist.New(append(opts, extra...)...)
}

func (d *demo) run() error {
	steps := []struct {
		name string
		fn   func() error
	}{
		{name: "integers", fn: d.integers},
		{name: "strings", fn: d.words},
		{name: "type safety", fn: d.typeSafety},
		{name: "duplicates", fn: d.duplicates},
	}

	for _, step := range steps {
		d.logger.Debug("running demonstration", "step", step.name)

		if err := step.fn(); err != nil {
			return fmt.Errorf("%s demonstration: %w", step.name, err)
		}

		d.printf("\n")
	}

	return nil
}

func (d *demo) integers() error {
	d.banner("Integer SortedList Demo")

	list, err := d.newList("integers", sortedlist.WithKind(sortedlist.KindIntegral))
	if err != nil {
		return err
	}

	d.printf("Inserting numbers: %v\n", d.cfg.Integers)

	for _, n := range d.cfg.Integers {
		if err := list.Insert(sortedlist.Int(n)); err != nil {
			return err
		}
	}

	d.printf("Sorted result: %s\n", list)
	d.printf("Length: %d\n", list.Size())
	d.printf("Kind: %s\n", list.Kind())

	if list.Contains(sortedlist.Int(d.cfg.Search.Integer)) {
		d.printf("✓ Found %d in the list\n", d.cfg.Search.Integer)
	} else {
		d.printf("✗ %d not found in the list\n", d.cfg.Search.Integer)
	}

	if list.Remove(sortedlist.Int(d.cfg.Remove.Integer)) {
		d.printf("✓ Removed %d from the list\n", d.cfg.Remove.Integer)
		d.printf("List after removal: %s\n", list)
	} else {
		d.printf("✗ Could not remove %d\n", d.cfg.Remove.Integer)
	}

	d.printf("Iterating through the list:\n")

	for i, v := range list.All() {
		d.printf("  %d: %s\n", i, v)
	}

	return nil
}

func (d *demo) words() error {
	d.banner("String SortedList Demo")

	list, err := d.newList("strings", sortedlist.WithKind(sortedlist.KindText))
	if err != nil {
		return err
	}

	d.printf("Inserting words: %q\n", d.cfg.Words)

	for _, w := range d.cfg.Words {
		if err := list.Insert(sortedlist.Text(w)); err != nil {
			return err
		}
	}

	d.printf("Sorted result: %s\n", list)
	d.printf("Length: %d\n", list.Size())
	d.printf("Kind: %s\n", list.Kind())

	if list.Contains(sortedlist.Text(d.cfg.Search.Word)) {
		d.printf("✓ Found %q in the list\n", d.cfg.Search.Word)
	} else {
		d.printf("✗ %q not found in the list\n", d.cfg.Search.Word)
	}

	d.printf("As a Go slice: %q\n", list.Strings())

	return nil
}

func (d *demo) typeSafety() error {
	d.banner("Type Safety Demo")

	list, err := d.newList("mixed")
	if err != nil {
		return err
	}

	if err := list.InsertAny(42); err != nil {
		return err
	}

	d.printf("List after inserting integer: %s\n", list)
	d.printf("Inferred kind: %s\n", list.Kind())

	err = list.InsertAny("hello")

	switch {
	case errors.Is(err, sortedlist.ErrTypeMismatch):
		d.printf("✓ Type safety working: %v\n", err)
	case err != nil:
		return err
	default:
		d.printf("✗ This should not happen!\n")
	}

	d.printf("Unchanged: %#v\n", list)

	return nil
}

func (d *demo) duplicates() error {
	d.banner("Duplicate Handling Demo")

	list, err := d.newList("duplicates")
	if err != nil {
		return err
	}

	d.printf("Inserting values with duplicates: %v\n", d.cfg.Duplicates)

	for _, n := range d.cfg.Duplicates {
		if err := list.Insert(sortedlist.Int(n)); err != nil {
			return err
		}
	}

	d.printf("Sorted result: %s\n", list)

	list.Remove(sortedlist.Int(d.cfg.Remove.Duplicate))
	d.printf("After removing one '%d': %s\n", d.cfg.Remove.Duplicate, list)

	return nil
}
