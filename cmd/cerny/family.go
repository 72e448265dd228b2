package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/geange/cerny"
)

var familyCmd = &cobra.Command{
	Use:   "family",
	Short: "Print shortest synchronizing words of the Černý automata up to a size",
	RunE: func(cmd *cobra.Command, args []string) error {
		maxStates, _ := cmd.Flags().GetInt("states")
		logger := newLogger(cmd)
		for n := 1; n <= maxStates; n++ {
			a, err := cerny.Cerny(n)
			if err != nil {
				return err
			}
			res, err := cerny.FindSyncWord(a, cerny.WithLogger(logger))
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%d %d %s\n", n, res.Length, res.Word)
		}
		return nil
	},
}

func init() {
	familyCmd.Flags().Int("states", 6, "Largest automaton size")
	rootCmd.AddCommand(familyCmd)
}
