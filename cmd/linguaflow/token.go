package main

import (
	"fmt"
	"time"

	"github.com/evandrarf/linguaflow-be/internal/pkg/auth"
	"github.com/spf13/cobra"
)

func newTokenCommand() *cobra.Command {
	var (
		userID string
		email  string
	)

	command := &cobra.Command{
		Use:   "token",
		Short: "Issue an access token signed with auth.jwt_secret (local testing)",
		RunE: func(cmd *cobra.Command, args []string) error {
			v, _, err := loadConfig()
			if err != nil {
				return err
			}

			secret := v.GetString("auth.jwt_secret")
			if secret == "" {
				return fmt.Errorf("auth.jwt_secret is not configured")
			}

			token, err := auth.GenerateAccessToken(auth.User{ID: userID, Email: email}, secret, time.Now())
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), token)
			return err
		},
	}
	command.Flags().StringVar(&userID, "user", "", "user id (token subject)")
	command.Flags().StringVar(&email, "email", "", "email claim")
	_ = command.MarkFlagRequired("user")
	return command
}
