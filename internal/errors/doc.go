// Package errors provides structured error handling for the arena-api project.
//
// Domain failures surface as coded errors. The first four codes are the
// statuses callers receive in normal response payloads; everything else is
// reserved for infrastructure failures that the transport reports as call
// faults.
//
// # Basic Usage
//
// Creating errors:
//
//	err := errors.NotFound("entity not found")
//	err := errors.InvalidArgumentf("cannot remove %d items from a stack of %d", req, held)
//
// Adding metadata:
//
//	err := errors.NotFound("room not found").
//	    WithMeta("room_name", name)
//
// Wrapping errors:
//
//	if err := repo.Get(ctx, input); err != nil {
//	    return errors.Wrap(err, "failed to get match")
//	}
//
// # Error Checking
//
//	if errors.IsNotFound(err) {
//	    // Handle not found case
//	}
//
//	code := errors.GetCode(err)
//	message := errors.GetMessage(err)
//
// # Validation Errors
//
// Constructor configs validate their dependencies with the builder:
//
//	vb := errors.NewValidationBuilder()
//	if c.Rooms == nil {
//	    vb.RequiredField("Rooms")
//	}
//	return vb.Build()
//
// # Layer-Specific Guidelines
//
// Repository layer:
//   - Return domain-specific errors (NotFound, AlreadyExists)
//   - Include relevant IDs in metadata
//
// Service layer:
//   - Validate inputs and return InvalidArgument errors
//   - Wrap repository errors with business context
//
// Idempotent failure signaling: repeating a destructive call (despawning an
// already-despawned entity, dequeuing a spent ticket) yields NotFound again,
// never a fault.
package errors
