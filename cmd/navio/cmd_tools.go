package main

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"navio/internal/api_client"
	"navio/internal/crypto"
	"navio/internal/middleware"
	"navio/internal/models"
	"navio/internal/triage"
)

var (
	tokenUserID string
	tokenEmail  string
	serverURL   string
)

var tokenCmd = &cobra.Command{
	Use:   "token",
	Short: "Print a signed bearer token for a user id",
	Long: `Signs a bearer token with auth.jwt_secret. The API has no login route;
tokens for the panic and partner-write endpoints are issued here.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		auth := middleware.NewAuthenticator(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL, logger)
		token, err := auth.SignToken(models.AuthUser{ID: tokenUserID, Email: tokenEmail})
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), token)
		return nil
	},
}

var analyzeCmd = &cobra.Command{
	Use:   "analyze [text]",
	Short: "Triage a message locally, or through a running server with --server",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		text := strings.Join(args, " ")

		if serverURL == "" {
			res := triage.Analyze(text)
			return printJSON(cmd, map[string]any{
				"analysis_result":  res.Classification,
				"risk_level":       res.RiskLevel,
				"confidence_score": res.Confidence,
				"matches":          res.Matches,
			})
		}

		analysis, err := api_client.NewClient(serverURL, "").Analyze(cmd.Context(), models.AnalyzeInput{InputText: text})
		if err != nil {
			return err
		}
		return printJSON(cmd, analysis)
	},
}

var healthCmd = &cobra.Command{
	Use:   "health",
	Short: "Check a running server's /api/health endpoint",
	RunE: func(cmd *cobra.Command, args []string) error {
		url := serverURL
		if url == "" {
			url = "http://localhost:" + cfg.Server.Port
		}
		status, err := api_client.NewClient(url, "").Health(cmd.Context())
		if err != nil {
			return err
		}
		return printJSON(cmd, status)
	},
}

var keygenCmd = &cobra.Command{
	Use:   "keygen",
	Short: "Generate a base64 master key for security.master_key",
	RunE: func(cmd *cobra.Command, args []string) error {
		key, err := crypto.GenerateKey()
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), crypto.EncodeKey(key))
		return nil
	},
}

func init() {
	tokenCmd.Flags().StringVar(&tokenUserID, "id", "", "User id to embed (required)")
	tokenCmd.Flags().StringVar(&tokenEmail, "email", "", "User email to embed")
	_ = tokenCmd.MarkFlagRequired("id")

	analyzeCmd.Flags().StringVar(&serverURL, "server", "", "Base URL of a running server, e.g. http://localhost:3000")
	healthCmd.Flags().StringVar(&serverURL, "server", "", "Base URL of a running server (default: localhost on server.port)")
}

func printJSON(cmd *cobra.Command, v any) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
