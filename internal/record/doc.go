// Package record holds the single data entity of the program: a Record
// with a numeric identifier and a bounded name.
//
// # Lifecycle
//
// A Record is handed out by an Allocator, populated immediately, read by
// the reporter and released exactly once. Callers should not pair Acquire
// and Release by hand; use With, which releases on every exit path:
//
//	err := record.With(record.HeapAllocator{}, func(r *record.Record) error {
//	    r.ID = 42
//	    r.Name = record.MustBoundedName("Zé do Ponteiro")
//	    return record.Report(os.Stdout, r)
//	})
//
// When the allocator cannot provide storage, With returns an error wrapping
// ErrAllocation and the callback never runs.
//
// # Names
//
// Names are limited to MaxNameLen characters. Input is NFC-normalized and
// measured in runes, so "é" counts once whether it arrived precomposed or as
// "e" plus a combining accent. Over-long input is either truncated (the
// BoundedName reports Truncated() == true) or rejected with ErrNameTooLong,
// depending on the NamePolicy.
package record
