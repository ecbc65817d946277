package main

import (
	"github.com/spf13/cobra"
)

func newRootCommand() *cobra.Command {
	var configFlag string

	ctx := newCommandContext(&configFlag)

	rootCmd := &cobra.Command{
		Use:           "docdistance",
		Short:         "Compare text documents by word frequency, letter frequency and TF-IDF",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			_, err := ctx.ensureConfig()
			return err
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	rootCmd.PersistentFlags().StringVarP(&configFlag, "config", "c", "", "Configuration file path (.yaml or .toml)")

	rootCmd.AddCommand(newWordsCommand(ctx))
	rootCmd.AddCommand(newCompareCommand(ctx))
	rootCmd.AddCommand(newTFCommand(ctx))
	rootCmd.AddCommand(newIDFCommand(ctx))
	rootCmd.AddCommand(newTFIDFCommand(ctx))
	rootCmd.AddCommand(newNearestCommand(ctx))
	rootCmd.AddCommand(newExploreCommand(ctx))

	return rootCmd
}
