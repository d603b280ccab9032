// Package engine implements the per-record sequence operations:
// complementation, composition and CpG scoring, region snipping, six-frame
// translation, and oligo periodicity.
//
// Every operation is a pure function of the wrapped record.
package engine
