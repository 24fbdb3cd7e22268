package record

import (
	"errors"
	"fmt"
	"io"
)

// Line renders r the way Report writes it, without the newline.
func Line(r *Record) string {
	return fmt.Sprintf("ID: %d, Nome: %s", r.ID, r.Name)
}

// Report writes one line identifying r to w.
// Field contents are not validated; an empty or truncated name is
// written as-is.
func Report(w io.Writer, r *Record) error {
	if r == nil {
		return errors.New("report: nil record")
	}
	if _, err := fmt.Fprintln(w, Line(r)); err != nil {
		return fmt.Errorf("report record %d: %w", r.ID, err)
	}
	return nil
}
