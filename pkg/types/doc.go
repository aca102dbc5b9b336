// Package types defines the configuration records, sample buffers and
// record-level errors shared by the transmission loaders, the description
// parsers and the catalog.
//
// A TransmissionInfo is plain data: numeric fields stay loosely typed (any)
// until a loader in package transmission parses and validates them.
package types
