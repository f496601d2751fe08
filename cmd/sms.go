package cmd

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/nexmo-community/nexmo-go/sms"
)

var (
	smsFrom      string
	smsTo        []string
	smsText      string
	smsUnicode   bool
	smsClientRef string
)

// smsCmd represents the sms command
var smsCmd = &cobra.Command{
	Use:   "sms",
	Short: "Send an SMS",
	Long: `Send a text message to one or more recipients. With several --to
flags the sends run concurrently; individual failures are reported
without aborting the rest of the batch.`,
	RunE: runSMS,
}

func init() {
	rootCmd.AddCommand(smsCmd)

	smsCmd.Flags().StringVarP(&smsFrom, "from", "f", "", "sender ID or number")
	smsCmd.Flags().StringArrayVarP(&smsTo, "to", "t", nil, "recipient number (repeatable)")
	smsCmd.Flags().StringVar(&smsText, "text", "", "message body")
	smsCmd.Flags().BoolVar(&smsUnicode, "unicode", false, "send as unicode")
	smsCmd.Flags().StringVar(&smsClientRef, "client-ref", "", "client reference attached to the message")
	smsCmd.MarkFlagRequired("from")
	smsCmd.MarkFlagRequired("to")
	smsCmd.MarkFlagRequired("text")
}

func runSMS(cmd *cobra.Command, args []string) error {
	msg := sms.Message{
		From:      smsFrom,
		Text:      smsText,
		ClientRef: smsClientRef,
	}
	if smsUnicode {
		msg.Type = sms.TypeUnicode
	}

	ctx := context.Background()

	if len(smsTo) == 1 {
		msg.To = smsTo[0]
		resp, err := client.SMS.Send(ctx, msg)

		var partial *sms.PartialError
		if errors.As(err, &partial) {
			fmt.Printf("⚠️  %d of %d parts failed\n", len(partial.Failed), len(partial.Failed)+len(partial.Succeeded))
			for _, part := range partial.Succeeded {
				fmt.Printf("  ✓ %s part accepted\n", part.MessageID)
			}
			for _, part := range partial.Failed {
				fmt.Printf("  ✗ status %s: %s\n", part.Status, part.ErrorText)
			}
			return err
		}
		if err != nil {
			return err
		}

		fmt.Printf("Sent %s part(s) to %s\n", resp.MessageCount, msg.To)
		for _, part := range resp.Messages {
			fmt.Printf("  • %s (price %s, balance %s)\n", part.MessageID, part.MessagePrice, part.RemainingBalance)
		}
		return nil
	}

	result, err := client.SMS.SendBatch(ctx, msg, smsTo)
	if err != nil {
		return err
	}

	fmt.Printf("Batch complete: %d requested, %d parts sent, %d failed\n",
		result.Requested, len(result.Sent), len(result.Failed))
	for _, failure := range result.Failed {
		fmt.Printf("  ✗ %s\n", failure)
	}
	if len(result.Failed) > 0 {
		return fmt.Errorf("%d of %d sends failed", len(result.Failed), result.Requested)
	}
	return nil
}
