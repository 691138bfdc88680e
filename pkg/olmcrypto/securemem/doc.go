// Package securemem provides the two low-level contracts every other
// package in this module relies on when it touches key material: scrubbing
// a buffer so the bytes do not linger in freed memory, and comparing two
// buffers in an amount of time that depends only on their length.
//
// Neither function allocates, blocks, or retains a reference to its
// arguments after returning.
package securemem
