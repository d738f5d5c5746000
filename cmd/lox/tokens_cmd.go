package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/deepnoodle-ai/lox/token"
)

func (a *app) tokensCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tokens [file]",
		Short: "Print the token sequence of Lox code",
		Args:  cobra.MaximumNArgs(1),
		RunE:  a.runTokens,
	}
}

// tokenJSON is the JSON form of one token.
type tokenJSON struct {
	Type    string `json:"type"`
	Lexeme  string `json:"lexeme"`
	Literal any    `json:"literal,omitempty"`
	Line    int    `json:"line"`
}

func (a *app) runTokens(cmd *cobra.Command, args []string) error {
	src, err := readSource(cmd, args)
	if err != nil {
		return err
	}
	tokens, err := a.scan(cmd, src)
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	if a.wantJSON(cmd) {
		list := make([]tokenJSON, 0, len(tokens))
		for _, tok := range tokens {
			list = append(list, tokenJSON{
				Type:    string(tok.Type),
				Lexeme:  tok.Lexeme,
				Literal: tok.Literal,
				Line:    tok.Line,
			})
		}
		return a.writeJSON(cmd, list)
	}
	for _, tok := range tokens {
		if tok.Type == token.EOF {
			fmt.Fprintln(out, tok.Type)
			continue
		}
		fmt.Fprintln(out, tok.String())
	}
	return nil
}
