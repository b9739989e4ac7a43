// Package tourney materializes tournament brackets — duel single
// elimination, duel double elimination, and free-for-all elimination — and
// propagates reported scores through them to a final standings list.
//
// The package is a pure, synchronous library: every exported function is a
// total function of its inputs, snapshots are immutable, and nothing it
// does touches a file, a socket, or a database. Persistence, transport,
// user management, and scoring policy belong to the caller.
package tourney
