package main

import (
	"fmt"
	"strconv"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	num "github.com/shabbyrobe/go-bignum"
)

// evaluate applies a single arithmetic or comparison operator to two decimal
// strings. Comparisons produce "true" or "false".
func evaluate(a, op, b string) (string, error) {
	x, err := num.IntFromString(a)
	if err != nil {
		return "", errors.Wrap(err, "left operand")
	}
	y, err := num.IntFromString(b)
	if err != nil {
		return "", errors.Wrap(err, "right operand")
	}

	switch op {
	case "+":
		return x.Add(y).String(), nil
	case "-":
		return x.Sub(y).String(), nil
	case "*", "x":
		return x.Mul(y).String(), nil
	case "<":
		return strconv.FormatBool(x.LessThan(y)), nil
	case "<=":
		return strconv.FormatBool(x.LessOrEqualTo(y)), nil
	case ">":
		return strconv.FormatBool(x.GreaterThan(y)), nil
	case ">=":
		return strconv.FormatBool(x.GreaterOrEqualTo(y)), nil
	case "==":
		return strconv.FormatBool(x.Equal(y)), nil
	case "!=":
		return strconv.FormatBool(x.NotEqual(y)), nil
	default:
		return "", errors.Errorf("unknown operator %q", op)
	}
}

func evalMain(command *cobra.Command, arguments []string) error {
	result, err := evaluate(arguments[0], arguments[1], arguments[2])
	if err != nil {
		return err
	}
	logger.Sublogger("eval").Debugf("%s %s %s", arguments[0], arguments[1], arguments[2])
	fmt.Println(result)
	return nil
}

var evalCommand = &cobra.Command{
	Use:   "eval <a> <op> <b>",
	Short: "Evaluate one operation (+ - * < <= > >= == !=)",
	Args:  cobra.ExactArgs(3),
	Run:   Mainify(evalMain),
}
