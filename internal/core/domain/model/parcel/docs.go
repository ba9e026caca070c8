// Package parcel contains the parcel aggregate and its satellites: the
// delivery status state machine, the planned route, and the append-only
// progress events that form the parcel's audit trail.
//
// The aggregate root is Parcel. Status transitions are validated centrally by
// the Status state machine; Route tracks physical progress along the planned
// cities; Event records are immutable facts owned by the event log and are
// never updated or deleted once created.
package parcel
