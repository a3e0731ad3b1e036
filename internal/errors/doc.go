// Package errors provides structured errors for the rando-api service.
//
// Every error carries a Code, a user-facing message, an optional cause and
// free-form metadata. Codes map onto HTTP statuses for the /generate endpoint
// and onto gRPC codes for the health transport.
//
// # Basic Usage
//
//	err := errors.NotFound("no result cached for key")
//	err := errors.InvalidArgumentf("unknown move_rando value: %q", v)
//
// Wrapping keeps the code of the wrapped error:
//
//	if err := repo.Put(ctx, input); err != nil {
//	    return errors.Wrap(err, "failed to cache result")
//	}
//
// # Generation failures
//
// Failed jobs are reported to clients as "<TypeName>: <message>", for
// example "TimeoutError: generation timed out". TypeName derives the
// display name from the code; Display renders the full string.
//
//	body := errors.Display(err)
//
// # Validation
//
//	vb := errors.NewValidationBuilder()
//	errors.ValidateRange("blocker_text", s.BlockerText, 8, 200, vb)
//	if err := vb.Build(); err != nil {
//	    return err
//	}
package errors
