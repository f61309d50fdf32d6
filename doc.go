// Package auxv gives a process typed access to its own ELF auxiliary
// vector: the key/value pairs the kernel places on the initial stack,
// immediately after the environment pointer array, for the dynamic linker
// to consume.
//
// Current locates the live vector of the calling process. FromEnviron
// derives it from a caller-supplied environment pointer array, and At
// wraps a vector whose base address is already known, which is how tests
// decode synthetic vectors. All three return a Vector, a view that can be
// iterated any number of times and whose entry values can be overwritten
// in place with SetValue. Entries can never be added, removed, or
// reordered: the kernel fixed the vector's extent at process start and
// the surrounding memory belongs to other parts of the process image.
//
// The vector is ordinary mapped memory shared by the whole process. This
// package takes no locks; concurrent SetValue and iteration are governed
// only by the Go memory model, so callers that mutate from more than one
// goroutine must serialize all calls themselves. The kernel never
// relocates the region, so a Vector stays valid for the process lifetime.
package auxv
