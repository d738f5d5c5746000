package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/deepnoodle-ai/lox/ast"
	"github.com/deepnoodle-ai/lox/printer"
)

func (a *app) astCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ast [file]",
		Short: "Display the syntax tree of Lox code",
		Args:  cobra.MaximumNArgs(1),
		RunE:  a.runAST,
	}
	cmd.Flags().Bool("json", false, "print the tree as JSON (same as --output json)")
	return cmd
}

// astJSON is the JSON document printed by "lox ast --json".
type astJSON struct {
	Nodes int               `json:"nodes"`
	Tree  *printer.TreeNode `json:"tree"`
}

func (a *app) runAST(cmd *cobra.Command, args []string) error {
	src, err := readSource(cmd, args)
	if err != nil {
		return err
	}
	program, err := a.parse(cmd, src)
	if err != nil {
		return err
	}
	tree := printer.Tree{}.Program(program)
	nodes := countNodes(program)

	out := cmd.OutOrStdout()
	if a.wantJSON(cmd) {
		return a.writeJSON(cmd, astJSON{Nodes: nodes, Tree: tree})
	}
	if err := tree.WriteText(out); err != nil {
		return err
	}
	_, err = fmt.Fprintf(out, "%d nodes\n", nodes)
	return err
}

// countNodes returns the number of nodes in the program, not counting the
// program itself.
func countNodes(program *ast.Program) int {
	var n int
	for range ast.Preorder(program) {
		n++
	}
	return n - 1
}
