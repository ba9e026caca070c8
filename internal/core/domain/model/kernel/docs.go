// Package kernel contains the shared value objects of the tracking domain:
// UUID identities, geographic coordinates and tracking numbers. All types in
// this package are immutable; the zero value of each is invalid and must be
// created through the provided constructors.
package kernel
