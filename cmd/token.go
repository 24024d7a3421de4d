// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package cmd

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/canonical/property-service/pkg/authentication"
)

var (
	tokenSecret  string
	tokenIssuer  string
	tokenSubject string
	tokenScope   string
	tokenTTL     time.Duration
)

var tokenCmd = &cobra.Command{
	Use:   "token",
	Short: "Sign an access token with the shared authentication secret",
	Long:  `Sign an access token for a user id, accepted when AUTHENTICATION_JWT_SECRET is configured`,
	Run: func(cmd *cobra.Command, args []string) {
		if tokenSecret == "" {
			tokenSecret = os.Getenv("AUTHENTICATION_JWT_SECRET")
		}
		if tokenSecret == "" {
			log.Fatal("Either --secret or AUTHENTICATION_JWT_SECRET must be provided")
		}

		token, err := authentication.SignHMACToken(tokenSecret, tokenIssuer, tokenSubject, tokenScope, tokenTTL, time.Now())
		if err != nil {
			log.Fatalf("Failed to sign token: %v", err)
		}

		fmt.Fprintln(cmd.OutOrStdout(), token)
	},
}

func init() {
	rootCmd.AddCommand(tokenCmd)

	tokenCmd.Flags().StringVar(&tokenSecret, "secret", "", "Shared signing secret")
	tokenCmd.Flags().StringVar(&tokenIssuer, "issuer", os.Getenv("AUTHENTICATION_ISSUER"), "Token issuer")
	tokenCmd.Flags().StringVar(&tokenSubject, "subject", "", "User ID the token is issued for")
	tokenCmd.Flags().StringVar(&tokenScope, "scope", "property-service", "Space separated scopes")
	tokenCmd.Flags().DurationVar(&tokenTTL, "ttl", time.Hour, "Token lifetime")

	_ = tokenCmd.MarkFlagRequired("subject")
}
