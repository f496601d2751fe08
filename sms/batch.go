package sms

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"
)

// DefaultBatchConcurrency limits how many sends run at once in a batch.
const DefaultBatchConcurrency = 5

// BatchResult contains the outcome of a batch send.
type BatchResult struct {
	Requested int
	Sent      []Part
	Failed    []SendError
}

// SendError records a failed send within a batch.
type SendError struct {
	To  string
	Err error
}

// Error implements the error interface.
func (e SendError) Error() string {
	return fmt.Sprintf("failed to send to %s: %v", e.To, e.Err)
}

// SendBatch sends the same message body to multiple recipients
// concurrently. Individual failures do not stop the batch; they are
// collected in the result. Partial sends count their accepted parts as
// sent and their rejected parts as failures.
func (c *Client) SendBatch(ctx context.Context, msg Message, recipients []string) (BatchResult, error) {
	result := BatchResult{Requested: len(recipients)}
	if len(recipients) == 0 {
		return result, nil
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(DefaultBatchConcurrency)

	sentChan := make(chan []Part, len(recipients))
	errorChan := make(chan SendError, len(recipients))

	for _, to := range recipients {
		to := to
		perMsg := msg
		perMsg.To = to

		g.Go(func() error {
			resp, err := c.Send(ctx, perMsg)
			if partial, ok := err.(*PartialError); ok {
				sentChan <- partial.Succeeded
				errorChan <- SendError{To: to, Err: partial}
				return nil
			}
			if err != nil {
				errorChan <- SendError{To: to, Err: err}
				return nil
			}
			sentChan <- resp.Messages
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return result, err
	}
	close(sentChan)
	close(errorChan)

	for parts := range sentChan {
		result.Sent = append(result.Sent, parts...)
	}
	for sendErr := range errorChan {
		result.Failed = append(result.Failed, sendErr)
	}

	c.logger.Info().
		Int("requested", result.Requested).
		Int("sent_parts", len(result.Sent)).
		Int("failed", len(result.Failed)).
		Msg("Batch send complete")

	return result, nil
}
