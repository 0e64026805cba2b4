package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dutchdutchdutch/signalscore/internal/config"
	"github.com/dutchdutchdutch/signalscore/internal/server"
)

var tokenSubject string

var tokenCmd = &cobra.Command{
	Use:   "token",
	Short: "Mint an admin token for the rescore endpoint",
	Long:  `Generate a signed admin JWT using JWT_SECRET. The token authorizes POST /admin/rescore requests.`,
	RunE:  runToken,
}

func init() {
	tokenCmd.Flags().StringVar(&tokenSubject, "subject", "operator", "Subject recorded in the token")
	rootCmd.AddCommand(tokenCmd)
}

func runToken(_ *cobra.Command, _ []string) error {
	jwtConfig, err := config.NewJWTConfig()
	if err != nil {
		return err
	}

	token, err := server.NewJWTService(jwtConfig).GenerateToken(tokenSubject, server.RoleAdmin)
	if err != nil {
		return err
	}

	fmt.Println(token)
	return nil
}
