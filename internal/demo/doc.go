// Package demo runs the program's fixed sequence:
//
//  1. build the bounded name (may fail under the reject policy)
//  2. acquire the record and populate it
//  3. report the record
//  4. report n! for n in [0, count)
//  5. report the selected option
//  6. release the record
//
// Output goes through an Emitter so the same sequence can drive the
// line-oriented console contract (TextEmitter) or be gathered for a JSON
// document (Collector). If the record cannot be acquired nothing is
// emitted and Run returns an error wrapping record.ErrAllocation.
package demo
