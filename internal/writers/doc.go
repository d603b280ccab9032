// Package writers turns command results into serialized outputs.
//
// Design:
//   • Writers own all presentation knowledge (text tables, pretty blocks, JSON/JSONL/FASTA).
//   • The core stays domain-only; commands only build pkg/api values.
//   • JSON/JSONL go through pkg/api (v1) for a stable wire format.
package writers
