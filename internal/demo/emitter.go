package demo

import (
	"fmt"
	"io"

	"github.com/roach88/ponteiro/internal/factorial"
	"github.com/roach88/ponteiro/internal/option"
	"github.com/roach88/ponteiro/internal/record"
)

// Emitter receives the results of a run in order.
type Emitter interface {
	Record(r *record.Record) error
	Factorial(e factorial.Entry) error
	Option(code int, o option.Outcome) error
}

// TextEmitter writes one line per result.
type TextEmitter struct {
	W io.Writer
}

func (t TextEmitter) Record(r *record.Record) error {
	return record.Report(t.W, r)
}

func (t TextEmitter) Factorial(e factorial.Entry) error {
	_, err := fmt.Fprintln(t.W, e)
	return err
}

func (t TextEmitter) Option(_ int, o option.Outcome) error {
	_, err := fmt.Fprintln(t.W, o)
	return err
}

// Report is the full result of a run, as gathered by Collector.
type Report struct {
	Record     RecordView        `json:"record"`
	Factorials []factorial.Entry `json:"factorials"`
	Option     OptionView        `json:"option"`
}

// RecordView is a copy of the record taken while it was still held.
type RecordView struct {
	ID        int    `json:"id"`
	Name      string `json:"name"`
	Truncated bool   `json:"truncated,omitempty"`
}

// OptionView describes the selected option.
type OptionView struct {
	Code    int    `json:"code"`
	Outcome string `json:"outcome"`
	Message string `json:"message"`
}

// Collector gathers a Report.
type Collector struct {
	Report Report
}

// NewCollector returns a Collector with a non-nil factorial list, so an
// empty table encodes as [] rather than null.
func NewCollector() *Collector {
	return &Collector{Report: Report{Factorials: []factorial.Entry{}}}
}

func (c *Collector) Record(r *record.Record) error {
	c.Report.Record = RecordView{
		ID:        r.ID,
		Name:      r.Name.String(),
		Truncated: r.Name.Truncated(),
	}
	return nil
}

func (c *Collector) Factorial(e factorial.Entry) error {
	c.Report.Factorials = append(c.Report.Factorials, e)
	return nil
}

func (c *Collector) Option(code int, o option.Outcome) error {
	c.Report.Option = OptionView{Code: code, Outcome: o.Code(), Message: o.String()}
	return nil
}
