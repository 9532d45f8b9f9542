// Package registry is a small name-keyed service registry used to wire
// the application together at startup.
//
// Services are registered under explicit string keys as a ready
// instance, a factory, or both-absent (a zero-value factory is
// synthesized via RegisterZero). A registration with singleton
// semantics is materialized at most once; later lookups return the
// cached instance.
//
// The registry is not safe for concurrent use. The application mutates
// it only during startup and reads it from the GUI event loop.
package registry
