package main

import (
	"fmt"
	"io"
	"os"

	"github.com/g-m-twostay/narytree/Graph"
	"github.com/g-m-twostay/narytree/Trees"
	"github.com/spf13/cobra"
)

func newRunCmd(opts *options) *cobra.Command {
	var (
		dotPath string
		strict  bool
	)
	cmd := &cobra.Command{
		Use:   "run [script]",
		Short: "Apply the operations of a script (stdin if omitted) and report the tree",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			in := cmd.InOrStdin()
			if len(args) == 1 && args[0] != "-" {
				f, err := os.Open(args[0])
				if err != nil {
					return err
				}
				defer f.Close()
				in = f
			}
			ops, err := parseScript(in)
			if err != nil {
				return err
			}
			tree, err := Trees.New[string](opts.order)
			if err != nil {
				return err
			}
			r := &runner{tree: tree, log: opts.log, out: cmd.OutOrStdout(), strict: strict}
			if err := r.run(ops); err != nil {
				return err
			}
			opts.log.Info().Int("ops", len(ops)).Int("failed", r.failed).Msg("script applied")
			return finish(cmd.OutOrStdout(), opts, tree, dotPath)
		},
	}
	cmd.Flags().StringVar(&dotPath, "dot", "", "write the DOT graph of the tree to this file")
	cmd.Flags().BoolVar(&strict, "strict", false, "stop at the first failing operation")
	return cmd
}

// finish prints the report and writes the graph if asked to.
func finish(w io.Writer, opts *options, tree *Trees.NTree[string], dotPath string) error {
	fmt.Fprint(w, report(tree))
	if dotPath == "" {
		return nil
	}
	if err := Graph.WriteFile[string](tree, dotPath); err != nil {
		return err
	}
	opts.log.Info().Str("path", dotPath).Msg("graph written")
	return nil
}
