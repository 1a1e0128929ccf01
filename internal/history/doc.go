// Package history implements the bounded recent-review buffer.
//
// The Buffer is the only stateful component of the pipeline: fixed capacity,
// insertion-ordered, oldest-evicted-first. Consumers only ever see snapshot
// copies, never references into live storage.
package history
