// Package cargo provides the planning side of the cargo tracking domain and
// the derivation of delivery progress. It implements the Cargo aggregate root
// together with the value objects describing the customer's requirement and
// the chosen transport plan.
//
// The package includes:
//   - Cargo: The aggregate root owning the route specification, the itinerary
//     and the derived delivery snapshot
//   - RouteSpecification: The origin/destination/deadline requirement and the
//     matcher deciding whether an itinerary satisfies it
//   - Itinerary and Leg: The immutable, connected transport plan and the
//     matcher deciding whether a handling event is expected by the plan
//   - Delivery and DeriveDelivery: The pure derivation of transport status,
//     routing status, misdirection, ETA and next expected activity from the
//     full handling history
//   - HandlingActivity: A predicted handling step that has not happened yet
//
// Key business rules:
//   - Origin and destination of a route specification always differ
//   - An itinerary is a non-empty chain of legs where each leg unloads
//     exactly where the next one loads
//   - The delivery snapshot is always recomputed wholesale from complete
//     current inputs; it is never patched incrementally
//   - Off-plan handling is never rejected; it surfaces as misdirection in the
//     derived snapshot
//
// The package follows Domain-Driven Design principles, providing rich domain
// behavior, encapsulation, and validation to ensure business rules are enforced.
package cargo
