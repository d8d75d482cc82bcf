package cmd

import (
	"strconv"

	"github.com/spf13/pflag"
)

// choiceValue is a boolean-looking flag that stores value into a target shared
// with its sibling flags. pflag calls Set in command-line order, so the last
// flag given wins.
type choiceValue[T comparable] struct {
	target *T
	value  T
	reset  T
}

func (c *choiceValue[T]) String() string {
	if c.target == nil {
		return "false"
	}
	return strconv.FormatBool(*c.target == c.value)
}

// Set selects value on "true". On "false" it restores reset, but only if this
// flag's value is the current selection.
func (c *choiceValue[T]) Set(s string) error {
	on, err := strconv.ParseBool(s)
	if err != nil {
		return err
	}
	switch {
	case on:
		*c.target = c.value
	case *c.target == c.value:
		*c.target = c.reset
	}
	return nil
}

func (c *choiceValue[T]) Type() string {
	return "bool"
}

func choiceVarP[T comparable](flags *pflag.FlagSet, target *T, value, reset T, name, shorthand, usage string) {
	f := flags.VarPF(&choiceValue[T]{target: target, value: value, reset: reset}, name, shorthand, usage)
	f.NoOptDefVal = "true"
}
