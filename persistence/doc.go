// Package persistence reads and writes bit array snapshots.
//
// A snapshot is a 32-byte little-endian FileHeader followed by the payload: the
// array's MarshalBinary form framed as one compression block (see
// Compression). The header carries the CRC32C of the stored payload, which is
// verified before anything is decoded.
//
// SaveToFile writes to a temporary file in the target directory and renames it
// into place, so readers observe either the old or the new snapshot.
package persistence
