// Package shared provides Handle, a reference-counted shared owner.
//
// # Layout
//
// The payload and its holder count live in one allocation obtained from
// memory/alloc, payload first and count immediately after:
//
//	[ value T | count uint64 ]
//
// Reaching the count from the payload is a field offset, and one
// allocation/release pair covers both.
//
// # Ownership Protocol
//
// Go copies structs silently, so the protocol is explicit:
//
//   - New / Make create the object with count 1
//   - Clone shares it (count + 1); this is the only way the count grows
//   - Move transfers the reference; the source becomes empty, the count is untouched
//   - Release drops this handle's share; at 0 the payload's destruction logic
//     runs once and the allocation is released
//
// A plain struct copy of a Handle is NOT a share. Use Clone.
//
//	a, err := shared.New(42, nil)
//	if err != nil {
//	    return err
//	}
//	b := a.Clone() // count 2
//	a.Release()    // count 1, object alive
//	fmt.Println(*b.Get())
//	b.Release()    // count 0, object destroyed
//
// Handle implements memory.Destroyer, so an array of handles releases its
// shares as elements are removed.
//
// # Thread Safety
//
// Counts are plain integers. Copying or releasing handles to the same object
// from several goroutines without external synchronization is a data race.
package shared
