// Package tn5250 is the host-interaction engine of a 5250 terminal
// client: the state a TN5250E connection accumulates as the host drives
// it, separated from the connection itself.
//
// The engine is four cooperating pieces. ScreenPlanes is the addressable
// multi-plane character buffer, holding each cell's character, attribute
// byte, resolved color, and extended attribute bits. ScreenFields is the
// field format table, tracking the input fields the host has defined and
// their modified data tags. OIA is the operator information area,
// reflecting keyboard lock, message wait, and the input-inhibit cause to
// registered listeners. NegotiateDevice validates TN5250E
// device-negotiation packets into a DeviceConfig.
//
// Session ties the four together for one connection and accepts complete
// 5250 records through ProcessRecord. What it does not do is own a
// socket: dialing, TLS, telnet option negotiation, and timeouts belong
// to the caller, which feeds bytes in and reads state out. Host bytes
// are partially untrusted, so every read path here is total - hostile
// positions clamp, inverted rectangles swap, malformed records and
// packets come back as errors - and no input can corrupt adjacent state
// or take the process down.
//
// The engine is a single-threaded, synchronously driven state holder.
// All mutation is intended to happen on the goroutine running the
// connection's receive loop; listeners and hooks fire synchronously on
// that same goroutine and must not re-enter the engine's mutators.
package tn5250
