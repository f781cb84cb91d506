// Package badger implements the storage interfaces on BadgerDB. The
// backend owns the database handle; repositories share it and scope
// their keys with per-type prefixes.
package badger
