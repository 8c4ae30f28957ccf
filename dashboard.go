package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
	"gorm.io/gorm"

	"github.com/andrewpaige1/flashlearn-api/activity"
	"github.com/andrewpaige1/flashlearn-api/config"
	"github.com/andrewpaige1/flashlearn-api/models"
	"github.com/andrewpaige1/flashlearn-api/store"
)

func newDashboardCmd() *cobra.Command {
	var subject, format string
	cmd := &cobra.Command{
		Use:   "dashboard",
		Short: "Print a user's dashboard",
		RunE: func(cmd *cobra.Command, args []string) error {
			if subject == "" {
				return errors.New("--subject is required")
			}
			db, err := config.Connect(config.Load())
			if err != nil {
				return err
			}

			var user models.User
			if err := db.WithContext(cmd.Context()).Where("subject = ?", subject).First(&user).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return fmt.Errorf("no user with subject %q", subject)
				}
				return err
			}

			snap := store.Load(cmd.Context(), store.NewGormStore(db, user.ID))
			return writeDashboard(cmd, activity.Build(snap, time.Now().UTC()), format)
		},
	}
	cmd.Flags().StringVar(&subject, "subject", "", "token subject of the user")
	cmd.Flags().StringVar(&format, "format", "yaml", "output format: yaml or json")
	return cmd
}

func writeDashboard(cmd *cobra.Command, d activity.Dashboard, format string) error {
	out := cmd.OutOrStdout()
	switch format {
	case "yaml":
		enc := yaml.NewEncoder(out)
		enc.SetIndent(2)
		if err := enc.Encode(d); err != nil {
			return err
		}
		return enc.Close()
	case "json":
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(d)
	default:
		return fmt.Errorf("unknown format %q", format)
	}
}
