package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/andrewpaige1/flashlearn-api/auth"
	"github.com/andrewpaige1/flashlearn-api/config"
)

func newTokenCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "token",
		Short: "Issue and inspect API tokens",
	}

	var nickname string
	var ttl time.Duration
	issue := &cobra.Command{
		Use:   "issue <subject>",
		Short: "Sign a token for subject",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := authConfig(config.Load())
			cfg.TTL = ttl
			token, err := auth.CreateToken(cfg, args[0], nickname)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), token)
			return nil
		},
	}
	issue.Flags().StringVar(&nickname, "nickname", "", "nickname claim")
	issue.Flags().DurationVar(&ttl, "ttl", 24*time.Hour, "token lifetime")

	inspect := &cobra.Command{
		Use:   "inspect <token>",
		Short: "Verify a token and print its subject",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			subject, err := auth.VerifyToken(authConfig(config.Load()), args[0])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), subject)
			return nil
		},
	}

	cmd.AddCommand(issue, inspect)
	return cmd
}
