// Package main is the entry point for the arena gRPC server
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "arena-api",
	Short: "Arena API gRPC Server",
	Long:  `Arena API hosts the multiplayer game services: entity world, chat, inventory and trading, and matchmaking.`,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(serverCmd)
}
