package main

import (
	"github.com/spf13/cobra"

	"github.com/heartmarshall/recall/internal/app"
)

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			cmd.Println("recall " + app.BuildVersion())
		},
	}
}
