package main

import (
	"encoding/json"
	"fmt"

	"github.com/hokaccha/go-prettyjson"
	"github.com/jmespath-community/go-jmespath"
	"github.com/spf13/cobra"

	"github.com/deepnoodle-ai/lox/internal/config"
)

// wantJSON reports whether the command should print JSON: when a query is
// given, when the command's own --json flag is set, or from the output
// setting.
func (a *app) wantJSON(cmd *cobra.Command) bool {
	if query(cmd) != "" {
		return true
	}
	if f := cmd.Flags().Lookup("json"); f != nil && f.Changed {
		return f.Value.String() == "true"
	}
	return a.cfg.Output == config.OutputJSON
}

func query(cmd *cobra.Command) string {
	q, _ := cmd.Flags().GetString("query")
	return q
}

// writeJSON writes v as indented JSON to the command's stdout, highlighted
// when the output is colored. If --query is set only the result of the
// JMESPath expression is written.
func (a *app) writeJSON(cmd *cobra.Command, v any) error {
	if q := query(cmd); q != "" {
		result, err := search(q, v)
		if err != nil {
			return err
		}
		v = result
	}
	out := cmd.OutOrStdout()
	var (
		data []byte
		err  error
	)
	if a.cfg.UseColor(out) {
		data, err = prettyjson.Marshal(v)
	} else {
		data, err = json.MarshalIndent(v, "", "  ")
	}
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(out, string(data))
	return err
}

// search evaluates a JMESPath expression against the JSON form of v.
func search(expression string, v any) (any, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	var doc any
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, err
	}
	result, err := jmespath.Search(expression, doc)
	if err != nil {
		return nil, fmt.Errorf("invalid query %q: %w", expression, err)
	}
	return result, nil
}
