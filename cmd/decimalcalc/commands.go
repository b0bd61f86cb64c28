package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	decimal "github.com/Altiscale/Impala"
)

// parseTypeDesc accepts "precision,scale" (e.g. "18,4") on the command
// line and turns it into a decimal.TypeDesc.
func parseTypeDesc(spec string) (decimal.TypeDesc, error) {
	parts := strings.Split(spec, ",")
	if len(parts) != 2 {
		return decimal.TypeDesc{}, fmt.Errorf("decimalcalc: type %q must be \"precision,scale\"", spec)
	}
	precision, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return decimal.TypeDesc{}, fmt.Errorf("decimalcalc: invalid precision in %q: %w", spec, err)
	}
	scale, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return decimal.TypeDesc{}, fmt.Errorf("decimalcalc: invalid scale in %q: %w", spec, err)
	}
	return decimal.NewTypeDesc(precision, scale)
}

func parseRoundMode(name string) (decimal.RoundMode, error) {
	switch strings.ToUpper(strings.TrimSpace(name)) {
	case "", "TRUNCATE":
		return decimal.Truncate, nil
	case "HALF_UP":
		return decimal.HalfUp, nil
	case "HALF_EVEN":
		return decimal.HalfEven, nil
	case "CEILING":
		return decimal.Ceiling, nil
	case "FLOOR":
		return decimal.Floor, nil
	default:
		return decimal.Truncate, fmt.Errorf("decimalcalc: unknown round mode %q", name)
	}
}

func newParseCommand() *cobra.Command {
	var typeSpec string
	cmd := &cobra.Command{
		Use:   "parse <literal>",
		Short: "Parse a decimal literal under a given type and print its outcome",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := parseTypeDesc(typeSpec)
			if err != nil {
				return err
			}
			d, kind := decimal.ParseString(args[0], t)
			switch kind {
			case decimal.Overflow:
				logOverflow("parse", zap.String("input", args[0]))
				fmt.Println("OVERFLOW")
			case decimal.Failure:
				fmt.Println("FAILURE")
			case decimal.Underflow:
				logUnderflow("parse", zap.String("input", args[0]))
				fmt.Println(decimal.FormatString(d, t), "(UNDERFLOW)")
			default:
				fmt.Println(decimal.FormatString(d, t))
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&typeSpec, "type", "18,4", "precision,scale of the destination type")
	return cmd
}

func newFormatCommand() *cobra.Command {
	var typeSpec string
	var unscaled int64
	cmd := &cobra.Command{
		Use:   "format",
		Short: "Format an unscaled integer under a given type",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := parseTypeDesc(typeSpec)
			if err != nil {
				return err
			}
			d := decimal.DecimalFromInt64(t.ByteWidth(), unscaled)
			fmt.Println(decimal.FormatString(d, t))
			return nil
		},
	}
	cmd.Flags().StringVar(&typeSpec, "type", "18,4", "precision,scale of the value's type")
	cmd.Flags().Int64Var(&unscaled, "unscaled", 0, "unscaled integer coefficient")
	return cmd
}

func newArithCommand(op string) *cobra.Command {
	var xType, yType, resultType string
	cmd := &cobra.Command{
		Use:   op + " <x> <y>",
		Short: fmt.Sprintf("Compute x %s y", op),
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			xt, err := parseTypeDesc(xType)
			if err != nil {
				return err
			}
			yt, err := parseTypeDesc(yType)
			if err != nil {
				return err
			}
			x, kind := decimal.ParseString(args[0], xt)
			if kind == decimal.Failure || kind == decimal.Overflow {
				return fmt.Errorf("decimalcalc: parsing x: %v", kind)
			}
			y, kind := decimal.ParseString(args[1], yt)
			if kind == decimal.Failure || kind == decimal.Overflow {
				return fmt.Errorf("decimalcalc: parsing y: %v", kind)
			}

			var rt decimal.TypeDesc
			switch {
			case resultType != "":
				rt, err = parseTypeDesc(resultType)
			case op == "mul":
				rt = decimal.MulResultType(xt, yt)
			default:
				rt = decimal.AddSubResultType(xt, yt)
			}
			if err != nil {
				return err
			}

			var result decimal.Decimal
			var overflow bool
			switch op {
			case "add":
				result, overflow = decimal.Add(x, xt, y, yt, rt)
			case "sub":
				result, overflow = decimal.Sub(x, xt, y, yt, rt)
			case "mul":
				result, overflow = decimal.Mul(x, xt, y, yt, rt)
			}
			if overflow {
				logOverflow(op, zap.String("x", args[0]), zap.String("y", args[1]))
				fmt.Println("OVERFLOW")
				return nil
			}
			fmt.Println(decimal.FormatString(result, rt))
			return nil
		},
	}
	cmd.Flags().StringVar(&xType, "x-type", "18,4", "precision,scale of x")
	cmd.Flags().StringVar(&yType, "y-type", "18,4", "precision,scale of y")
	cmd.Flags().StringVar(&resultType, "result-type", "", "precision,scale of the result (defaults to the planner-contract inference)")
	return cmd
}

func newDivModCommand(op string) *cobra.Command {
	var xType, yType, resultType string
	cmd := &cobra.Command{
		Use:   op + " <x> <y>",
		Short: fmt.Sprintf("Compute x %s y", op),
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			xt, err := parseTypeDesc(xType)
			if err != nil {
				return err
			}
			yt, err := parseTypeDesc(yType)
			if err != nil {
				return err
			}
			x, kind := decimal.ParseString(args[0], xt)
			if kind == decimal.Failure || kind == decimal.Overflow {
				return fmt.Errorf("decimalcalc: parsing x: %v", kind)
			}
			y, kind := decimal.ParseString(args[1], yt)
			if kind == decimal.Failure || kind == decimal.Overflow {
				return fmt.Errorf("decimalcalc: parsing y: %v", kind)
			}

			var rt decimal.TypeDesc
			if resultType != "" {
				rt, err = parseTypeDesc(resultType)
			} else if op == "div" {
				rt = decimal.DivResultType(xt, yt)
			} else {
				rt = decimal.ModResultType(xt, yt)
			}
			if err != nil {
				return err
			}

			var result decimal.Decimal
			var overflow, isNaN bool
			if op == "div" {
				result, overflow, isNaN = decimal.Div(x, xt, y, yt, rt)
			} else {
				result, overflow, isNaN = decimal.Mod(x, xt, y, yt, rt)
			}
			switch {
			case isNaN:
				logNaN(op, zap.String("x", args[0]), zap.String("y", args[1]))
				fmt.Println("NULL")
			case overflow:
				logOverflow(op, zap.String("x", args[0]), zap.String("y", args[1]))
				fmt.Println("OVERFLOW")
			default:
				fmt.Println(decimal.FormatString(result, rt))
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&xType, "x-type", "18,4", "precision,scale of x")
	cmd.Flags().StringVar(&yType, "y-type", "18,4", "precision,scale of y")
	cmd.Flags().StringVar(&resultType, "result-type", "", "precision,scale of the result (defaults to the planner-contract inference)")
	return cmd
}

func newCompareCommand() *cobra.Command {
	var xType, yType string
	cmd := &cobra.Command{
		Use:   "cmp <x> <y>",
		Short: "Compare x to y, printing -1, 0 or 1",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			xt, err := parseTypeDesc(xType)
			if err != nil {
				return err
			}
			yt, err := parseTypeDesc(yType)
			if err != nil {
				return err
			}
			x, kind := decimal.ParseString(args[0], xt)
			if kind == decimal.Failure || kind == decimal.Overflow {
				return fmt.Errorf("decimalcalc: parsing x: %v", kind)
			}
			y, kind := decimal.ParseString(args[1], yt)
			if kind == decimal.Failure || kind == decimal.Overflow {
				return fmt.Errorf("decimalcalc: parsing y: %v", kind)
			}
			fmt.Println(decimal.Compare(x, xt, y, yt))
			return nil
		},
	}
	cmd.Flags().StringVar(&xType, "x-type", "18,4", "precision,scale of x")
	cmd.Flags().StringVar(&yType, "y-type", "18,4", "precision,scale of y")
	return cmd
}

func newRoundCommand() *cobra.Command {
	var typeSpec, mode string
	var targetScale int
	cmd := &cobra.Command{
		Use:   "round <value>",
		Short: "Round a decimal literal to a target scale",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := parseTypeDesc(typeSpec)
			if err != nil {
				return err
			}
			if mode == "" {
				mode = defaultMode
			}
			m, err := parseRoundMode(mode)
			if err != nil {
				return err
			}
			d, kind := decimal.ParseString(args[0], t)
			if kind == decimal.Failure || kind == decimal.Overflow {
				return fmt.Errorf("decimalcalc: parsing value: %v", kind)
			}
			result, overflow := decimal.Round(d, t.Scale, targetScale, m)
			if overflow {
				logOverflow("round", zap.String("value", args[0]))
				fmt.Println("OVERFLOW")
				return nil
			}
			outScale := t.Scale
			if targetScale >= 0 {
				outScale = targetScale
			}
			fmt.Println(decimal.FormatString(result, decimal.TypeDesc{Precision: t.Precision, Scale: outScale}))
			return nil
		},
	}
	cmd.Flags().StringVar(&typeSpec, "type", "18,4", "precision,scale of the value's type")
	cmd.Flags().StringVar(&mode, "mode", "", "round mode (defaults to --round-mode on the root command)")
	cmd.Flags().IntVar(&targetScale, "target-scale", 0, "target scale, may be negative")
	return cmd
}
