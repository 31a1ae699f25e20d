package record

import (
	"github.com/jordanwade90/csvgen/value"
	"math/rand/v2"
)

// Record builds one delimited line. Fields are separated by the delimiter
// given to New; AppendTo terminates the line with a newline.
//
// A Record is reusable after Reset and is not safe for concurrent use.
type Record struct {
	delim   string
	payload []byte
	fields  int
}

func New(delim string) *Record {
	return &Record{delim: delim}
}

func (rec *Record) field() {
	if rec.fields > 0 {
		rec.payload = append(rec.payload, rec.delim...)
	}
	rec.fields++
}

func (rec *Record) AppendLiteral(s string) {
	rec.field()
	rec.payload = append(rec.payload, s...)
}

func (rec *Record) AppendString(r *rand.Rand, size uint8) {
	rec.field()
	rec.payload = value.AppendString(rec.payload, r, size)
}

func (rec *Record) AppendNumber(r *rand.Rand, size, exponent uint8) (err error) {
	rec.field()
	rec.payload, err = value.AppendNumber(rec.payload, r, size, exponent)
	return err
}

func (rec *Record) AppendDate(r *rand.Rand) {
	rec.field()
	rec.payload = value.AppendDate(rec.payload, r)
}

func (rec *Record) AppendTo(p []byte) []byte {
	p = append(p, rec.payload...)
	return append(p, '\n')
}

func (rec *Record) Reset() {
	rec.payload = rec.payload[:0]
	rec.fields = 0
}
