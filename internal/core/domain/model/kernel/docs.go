// Package kernel provides core domain primitives shared by the rate pipeline.
//
// The package includes:
//   - UUID: A value object for route rule identifiers with validation
//   - Country: A value object for ISO 3166-1 alpha-2 country codes
//   - IsEUCountry, IsDomestic, AppliesCustomsDuties: the geography classifier that decides
//     whether a shipment is domestic and whether customs duties are charged
//
// These primitives enforce domain invariants and validation rules, ensuring that
// domain objects are always in a valid state. They are immutable and safe for
// concurrent use.
package kernel
