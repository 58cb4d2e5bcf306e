// Package adtsecurehome provides a client for the ADT Secure Home cloud API.
//
// ADT Secure Home is a home-security monitoring service: the cloud fronts
// alarm panels installed at monitored sites and exposes login, state
// retrieval, arm/disarm and preference operations over HTTPS. This package
// implements a clean, idiomatic Go client for those operations.
//
// # Architecture
//
// The package is organized into a few components:
//
//   - Client: the API client owning the transport session, token and timeout
//   - Operations: one method per vendor endpoint, all funneling through a
//     single request executor
//   - Types: APIResponse payloads and the StoreFor selection type
//   - Errors: structured error types mirroring the vendor's failure classes
//
// # Usage
//
// Create a client with the account credentials, log in, then operate:
//
//	logger := zerolog.New(os.Stdout)
//	client, err := adtsecurehome.NewClient(
//		"user@example.com",
//		"hunter2",
//		logger,
//		adtsecurehome.WithTimeout(30*time.Second),
//	)
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	ctx := context.Background()
//	if _, err := client.Login(ctx); err != nil {
//		log.Fatal(err)
//	}
//
//	// Arm partition 1 of site 17.
//	if _, err := client.ArmSite(ctx, true, 1234, "1", "17"); err != nil {
//		log.Fatal(err)
//	}
//
// # Error Handling
//
// Every failure is surfaced synchronously from the call that triggered it;
// nothing is retried, logged or swallowed internally. Three classes exist:
//
//   - InvalidURLError: connection-level failure (matches the ErrInvalidURL
//     sentinel via errors.Is)
//   - HTTPError: non-success HTTP status, raised before the body is decoded
//   - APIError: undecodable body, vendor-reported non-SUCCESS status, or
//     invalid local input
//
//	if errors.Is(err, adtsecurehome.ErrInvalidURL) {
//		// connectivity problem, not an API rejection
//	}
//
// # Concurrency
//
// A Client is not safe for concurrent use. Operations are synchronous,
// blocking round trips; callers needing concurrency must serialize access
// or use independent clients.
package adtsecurehome
