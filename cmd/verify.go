package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/nexmo-community/nexmo-go/verify"
)

var (
	verifyBrand      string
	verifyCodeLength int
)

// verifyCmd represents the verify command group
var verifyCmd = &cobra.Command{
	Use:   "verify",
	Short: "Run two-factor verifications",
}

var verifyStartCmd = &cobra.Command{
	Use:   "start <number>",
	Short: "Start verifying a number",
	Args:  cobra.ExactArgs(1),
	RunE:  runVerifyStart,
}

var verifyCheckCmd = &cobra.Command{
	Use:   "check <request-id> <code>",
	Short: "Check a verification code",
	Args:  cobra.ExactArgs(2),
	RunE:  runVerifyCheck,
}

var verifyCancelCmd = &cobra.Command{
	Use:   "cancel <request-id>",
	Short: "Cancel an in-flight verification",
	Args:  cobra.ExactArgs(1),
	RunE:  runVerifyCancel,
}

func init() {
	rootCmd.AddCommand(verifyCmd)
	verifyCmd.AddCommand(verifyStartCmd)
	verifyCmd.AddCommand(verifyCheckCmd)
	verifyCmd.AddCommand(verifyCancelCmd)

	verifyStartCmd.Flags().StringVar(&verifyBrand, "brand", "nexmo-go", "brand shown in the verification message")
	verifyStartCmd.Flags().IntVar(&verifyCodeLength, "code-length", 0, "code length (4 or 6)")
}

func runVerifyStart(cmd *cobra.Command, args []string) error {
	resp, err := client.Verify.Start(context.Background(), verify.Request{
		Number:     args[0],
		Brand:      verifyBrand,
		CodeLength: verifyCodeLength,
	})
	if err != nil {
		return err
	}

	fmt.Printf("Verification started. Request ID: %s\n", resp.RequestID)
	return nil
}

func runVerifyCheck(cmd *cobra.Command, args []string) error {
	resp, err := client.Verify.Check(context.Background(), args[0], args[1])
	if err != nil {
		return err
	}

	fmt.Printf("✓ Verified! Event %s, cost %s %s\n", resp.EventID, resp.Price, resp.Currency)
	return nil
}

func runVerifyCancel(cmd *cobra.Command, args []string) error {
	if _, err := client.Verify.Cancel(context.Background(), args[0]); err != nil {
		return err
	}

	fmt.Println("Verification cancelled.")
	return nil
}
