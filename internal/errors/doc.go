// Package errors provides the coded error type used across rpg-sheet.
//
// Errors carry a Code, a user-facing Message, an optional Cause and free-form Meta.
// Codes survive wrapping, so a NotFound raised by a repository is still a NotFound
// when the handler converts it for gRPC.
//
// # Basic Usage
//
//	err := errors.NotFound("gear item not found").
//	    WithMeta("gear_id", gearID)
//
//	if err := repo.Save(ctx, input); err != nil {
//	    return nil, errors.Wrap(err, "failed to save sheet")
//	}
//
// # Validation
//
//	vb := errors.NewValidationBuilder()
//	errors.ValidateRequired("characterID", input.CharacterID, vb)
//	errors.ValidateRange("rank", input.Rank, 1, 10, vb)
//	if err := vb.Build(); err != nil {
//	    return nil, err
//	}
//
// # Layer Guidelines
//
// Repositories return NotFound for absent keys and wrap storage failures.
// Orchestrators validate input (InvalidArgument), check preconditions
// (FailedPrecondition) and wrap repository errors with context. Handlers convert
// with ToGRPCError and never build status errors by hand.
//
// Out-of-range user manipulation (casting past the slot limit, HP below zero) is
// clamped by the orchestrators and is not an error.
package errors
