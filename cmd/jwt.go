package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

var jwtTTL time.Duration

// jwtCmd represents the jwt command
var jwtCmd = &cobra.Command{
	Use:   "jwt",
	Short: "Generate a bearer token from the configured application credentials",
	RunE:  runJWT,
}

func init() {
	rootCmd.AddCommand(jwtCmd)

	jwtCmd.Flags().DurationVar(&jwtTTL, "ttl", 15*time.Minute, "token lifetime")
}

func runJWT(cmd *cobra.Command, args []string) error {
	token, err := client.Transport().Credentials().GenerateJWTWithTTL(jwtTTL)
	if err != nil {
		return err
	}

	fmt.Println(token)
	return nil
}
