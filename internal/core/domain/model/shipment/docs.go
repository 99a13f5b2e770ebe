// Package shipment provides the immutable rate request: origin and destination
// addresses, parcel measurements and customs declaration.
//
// The package includes:
//   - Address: one end of the route with country, city, postal code and optional state
//   - Parcel: weight and dimensions with the volumetric/chargeable weight rule
//   - Request: the assembled input of a rate calculation
//
// Key business rules:
//   - Weight and every dimension are strictly positive
//   - Volumetric weight is L×W×H/5000 (cm, kg); chargeable weight is the larger of actual and volumetric
//   - International requests need a positive declared customs value
package shipment
