package main

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/jonathan/resume-screener/internal/config"
	"github.com/jonathan/resume-screener/internal/server"
)

var tokenCmd = &cobra.Command{
	Use:   "token",
	Short: "Admin key and API token utilities",
}

var (
	hashKey  string
	hashCost int
)

var tokenHashCmd = &cobra.Command{
	Use:   "hash",
	Short: "Hash an admin key for the ADMIN_KEY_HASH environment variable",
	RunE:  runTokenHash,
}

var tokenIssueCmd = &cobra.Command{
	Use:   "issue",
	Short: "Issue a JWT bearer token directly (requires JWT_SECRET)",
	Long: `Signs an API token locally using JWT_SECRET, bypassing the /auth/token
endpoint. Useful for scripting against a server you operate.`,
	RunE: runTokenIssue,
}

func init() {
	tokenHashCmd.Flags().StringVar(&hashKey, "key", "", "Admin key to hash")
	tokenHashCmd.Flags().IntVar(&hashCost, "cost", 12, "bcrypt cost (10-14)")
	_ = tokenHashCmd.MarkFlagRequired("key")

	tokenCmd.AddCommand(tokenHashCmd)
	tokenCmd.AddCommand(tokenIssueCmd)
	rootCmd.AddCommand(tokenCmd)
}

func runTokenHash(_ *cobra.Command, _ []string) error {
	hash, err := config.HashAdminKey(hashKey, hashCost)
	if err != nil {
		return err
	}
	fmt.Println(hash)
	return nil
}

func runTokenIssue(_ *cobra.Command, _ []string) error {
	jwtConfig, err := config.NewJWTConfig()
	if err != nil {
		return err
	}

	clientID := uuid.New()
	token, err := server.NewJWTService(jwtConfig).GenerateToken(clientID)
	if err != nil {
		return err
	}

	fmt.Printf("Client ID: %s\n", clientID)
	fmt.Printf("Token:     %s\n", token)
	return nil
}
