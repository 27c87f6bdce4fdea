package main

import (
	"strconv"

	"github.com/g-m-twostay/narytree/Trees"
	"github.com/spf13/cobra"
)

func newDemoCmd(opts *options) *cobra.Command {
	var (
		dotPath string
		n       int
	)
	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Insert 1..n without parents and report the tree",
		RunE: func(cmd *cobra.Command, args []string) error {
			tree, err := Trees.New[string](opts.order)
			if err != nil {
				return err
			}
			for i := 1; i <= n; i++ {
				if err := tree.Insert(strconv.Itoa(i)); err != nil {
					return err
				}
			}
			opts.log.Debug().Int("n", n).Uint("height", tree.Height()).Msg("demo tree built")
			return finish(cmd.OutOrStdout(), opts, tree, dotPath)
		},
	}
	cmd.Flags().IntVarP(&n, "nodes", "n", 5, "number of values to insert")
	cmd.Flags().StringVar(&dotPath, "dot", "", "write the DOT graph of the tree to this file")
	return cmd
}
