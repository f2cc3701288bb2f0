// Package memory is the root of the manual-lifetime substrate.
//
// # Packages
//
//   - memory/alloc: raw sized allocations (Block) and typed slot regions
//     (Slots) carved from a Source, each self-describing its size
//   - memory/shared: reference-counted handles whose payload and count live in
//     one allocation
//   - containers/dynarray: a growable, index-addressable array built on
//     memory/alloc
//
// # Destruction
//
// Go has no destructors, so the substrate runs destruction logic explicitly.
// A value takes part by implementing Destroyer on its pointer type:
//
//	type conn struct{ fd int }
//
//	func (c *conn) Destroy() { syscall.Close(c.fd) }
//
// Containers and handles call Destroy exactly once when the value's lifetime
// ends (removal from an array, the last handle released). Callers can supply a
// destruction function instead through the component's Options.
//
// # Thread Safety
//
// Nothing under memory/ is safe for concurrent use. Shared counts are plain
// integers; callers must synchronize externally.
package memory
