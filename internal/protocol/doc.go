// Package protocol owns the binary codec session that variables are
// serialized into and deserialized from.
//
// Ownership boundary:
// - XDR primitives (big-endian, 4-byte aligned)
// - server version tagging
// - cooperative cancellation probes
//
// The session never seeks and adds no framing of its own: the byte stream is
// the concatenation of whatever the variables write, in call order.
package protocol
