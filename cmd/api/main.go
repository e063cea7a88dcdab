package main

import (
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/plantcare/core/cmd/api/commands"
)

// @title PlantCare API
// @version 1.0
// @description Houseplant care tracker with a recurring reminder engine
// @termsOfService https://github.com/plantcare/core/blob/main/LICENSE

// @contact.name PlantCare Support
// @contact.url https://github.com/plantcare/core

// @license.name MIT
// @license.url https://github.com/plantcare/core/blob/main/LICENSE

// @host localhost:8080
// @BasePath /api/v1

func main() {
	rootCmd := &cobra.Command{
		Use:   "plantcare",
		Short: "PlantCare API Server",
		Long:  `PlantCare tracks houseplants, schedules recurring care and keeps a care journal.`,
	}

	// Add commands
	rootCmd.AddCommand(commands.NewServeCommand())
	rootCmd.AddCommand(commands.NewMigrateCommand())
	rootCmd.AddCommand(commands.NewFeedCommand())
	rootCmd.AddCommand(commands.NewCalendarCommand())
	rootCmd.AddCommand(commands.NewVersionCommand())

	// Execute root command
	if err := rootCmd.Execute(); err != nil {
		log.Printf("Command execution failed: %v", err)
		os.Exit(1)
	}
}
