// Package nexmo provides a client for the Nexmo REST API family.
//
// The top-level Client aggregates per-namespace accessors over one shared,
// connection-pooled transport:
//
//	logger := zerolog.New(os.Stderr)
//	creds := auth.NewKeySecret("key", "secret")
//	client, err := nexmo.New(creds, logger)
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	balance, err := client.Account.GetBalance(ctx)
//	resp, err := client.SMS.Send(ctx, sms.Message{From: "Acme", To: "4477...", Text: "hi"})
//
// # Authentication
//
// Credentials are built from one of the supported combinations (key/secret,
// key/secret/signature secret, key/signature secret/method, application
// ID/private key). When an endpoint accepts several methods the client
// prefers JWT, then signature secret, then key/secret. The environment
// variables NEXMO_API_KEY, NEXMO_API_SECRET, NEXMO_SIGNATURE_SECRET,
// NEXMO_SIGNATURE_METHOD, NEXMO_PRIVATE_KEY, NEXMO_PRIVATE_KEY_PATH, and
// NEXMO_APPLICATION_ID are recognized by the config package.
//
// # Errors
//
// HTTP failures map onto a taxonomy in the rest package: RequestError for
// calls the caller must fix, ServerError for transient API faults, and
// ValidationError carrying per-parameter detail. Several endpoints report
// failures inside HTTP 200 responses; those are surfaced as errors too,
// and partial SMS sends return a *sms.PartialError that still exposes the
// accepted parts.
package nexmo
