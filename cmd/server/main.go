// Package main is the entry point for the gRPC server
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/battle-api/cmd/server/client"
)

var rootCmd = &cobra.Command{
	Use:   "battle-api",
	Short: "Battle API gRPC Server",
	Long:  `Battle API runs creature battles between trainers: single challenges and 100-round arenas.`,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(serverCmd)
	rootCmd.AddCommand(client.ClientCmd)
}
