package main

import (
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/andrewpaige1/flashlearn-api/auth"
	"github.com/andrewpaige1/flashlearn-api/config"
)

func init() {
	config.LoadDotEnv()
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "flashlearn",
		Short:         "FlashLearn study API",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(
		newServeCmd(),
		newMigrateCmd(),
		newTokenCmd(),
		newDashboardCmd(),
	)
	return root
}

func authConfig(env config.Environment) auth.Config {
	return auth.Config{
		Secret:   env.JWTSecret,
		Issuer:   env.JWTIssuer,
		Audience: env.JWTAudience,
	}
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		log.Printf("flashlearn: %v", err)
		os.Exit(1)
	}
}
