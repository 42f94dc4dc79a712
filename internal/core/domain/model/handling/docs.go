// Package handling provides the handling side of the cargo tracking domain:
// the record of what physically happened to a cargo.
//
// The package includes:
//   - HandlingEvent: An immutable record of one handling occurrence (receive,
//     load, unload, customs, claim) with its per-type voyage rule
//   - Type: The handling event type with its structural constraints
//   - History: The append-only, canonically ordered event history of one cargo
//   - EventFactory: Validation of raw handling reports against reference data
//
// Key business rules:
//   - Load and Unload events must name a voyage; all other types must not
//   - A recorded event is never altered or removed; history is append-only
//   - The factory enforces structural validity only; whether an event fits
//     the cargo's transport plan is decided by delivery derivation, never here
//
// The package follows Domain-Driven Design principles, providing rich domain
// behavior, encapsulation, and validation to ensure business rules are enforced.
package handling
