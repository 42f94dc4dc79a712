// Package kernel provides core domain primitives shared across the cargo
// tracking domain model. It implements fundamental building blocks following
// Domain-Driven Design principles that are used throughout the domain model.
//
// The package includes:
//   - TrackingID: A value object identifying one cargo booking for its whole lifetime
//   - UnLocode: A value object for United Nations location codes identifying ports and terminals
//
// These primitives enforce domain invariants and validation rules, ensuring that
// domain objects are always in a valid state. They are designed to be immutable
// and thread-safe, making them suitable for concurrent use.
package kernel
