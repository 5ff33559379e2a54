// Package kernel provides core domain primitives shared by the order model.
//
// The package includes:
//   - EntityID: an opaque, immutable identifier for aggregates and the references
//     they hold (customers, products)
//
// Identifiers are issued by NewEntityID for new aggregates and parsed with
// EntityIDFromString when they arrive from requests or persistence. The zero
// value is invalid, which lets aggregates detect identifiers that were never set.
package kernel
