package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/geange/cerny"
)

var countCmd = &cobra.Command{
	Use:   "count",
	Short: "Print how many automata a search would enumerate",
	RunE: func(cmd *cobra.Command, args []string) error {
		letters, _ := cmd.Flags().GetInt("letters")
		states, _ := cmd.Flags().GetInt("states")
		total, ok := cerny.Total(letters, states)
		if !ok {
			return fmt.Errorf("%d^(%d*%d) does not fit in 64 bits", states, letters, states)
		}
		fmt.Fprintln(cmd.OutOrStdout(), total)
		return nil
	},
}

func init() {
	countCmd.Flags().Int("letters", 2, "Number of letters")
	countCmd.Flags().Int("states", 5, "Number of states")
	rootCmd.AddCommand(countCmd)
}
