package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/deepnoodle-ai/lox/printer"
)

func (a *app) parseCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "parse [file]",
		Short: "Parse Lox code and print each statement",
		Args:  cobra.MaximumNArgs(1),
		RunE:  a.runParse,
	}
}

func (a *app) runParse(cmd *cobra.Command, args []string) error {
	src, err := readSource(cmd, args)
	if err != nil {
		return err
	}
	program, err := a.parse(cmd, src)
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	if a.wantJSON(cmd) {
		stmts := make([]string, 0, len(program.Stmts))
		for _, stmt := range program.Stmts {
			stmts = append(stmts, stmt.String())
		}
		return a.writeJSON(cmd, stmts)
	}
	for _, stmt := range program.Stmts {
		fmt.Fprintln(out, stmt.String())
	}
	return nil
}

func (a *app) rpnCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rpn [file]",
		Short: "Print expressions in reverse Polish notation",
		Long: `Print the reverse Polish notation of the expression in each expression
and print statement, one per line.`,
		Args: cobra.MaximumNArgs(1),
		RunE: a.runRPN,
	}
}

func (a *app) runRPN(cmd *cobra.Command, args []string) error {
	src, err := readSource(cmd, args)
	if err != nil {
		return err
	}
	program, err := a.parse(cmd, src)
	if err != nil {
		return err
	}
	var rpn printer.RPN
	exprs := program.Exprs()
	lines := make([]string, 0, len(exprs))
	for _, x := range exprs {
		lines = append(lines, rpn.Print(x))
	}
	out := cmd.OutOrStdout()
	if a.wantJSON(cmd) {
		return a.writeJSON(cmd, lines)
	}
	for _, line := range lines {
		fmt.Fprintln(out, line)
	}
	return nil
}
