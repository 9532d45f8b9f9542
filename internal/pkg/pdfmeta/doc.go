// Package pdfmeta locates companion PDF files and probes for a usable
// PDF engine.
//
// The probe is a capability check, not a parser: it resolves once, at
// first use, to whichever engine answers (pdfcpu, which reads and
// writes, or the read-only fallback reader), and the resolved binding
// is reused for the life of the process.
package pdfmeta
