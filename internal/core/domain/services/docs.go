// Package services provides domain services that operate across the parcel
// aggregate and its event history without naturally belonging to either.
//
// The package includes:
//   - RouteTracker: resolves a parcel's current physical location from its
//     event history and planned route
package services
