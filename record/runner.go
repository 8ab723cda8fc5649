package record

import (
	"go.uber.org/zap"

	"github.com/memgron/memgron/decode"
)

// BufferFunc supplies the raw memory for a record's entity.
type BufferFunc func(*Record) ([]byte, error)

// FixedBuffer returns a BufferFunc that hands every record the same
// buffer, the common case of dumping one captured region.
func FixedBuffer(buf []byte) BufferFunc {
	return func(*Record) ([]byte, error) { return buf, nil }
}

// Result is the outcome of decoding one record. Values holds every
// field that decoded; FieldErrs the per-field failures that were
// skipped. Err is set only when the record could not be processed at
// all.
type Result struct {
	Record    *Record
	Values    []decode.Value
	FieldErrs []error
	Err       error
}

// Runner decodes batches of layout records. Entities are independent:
// a record that fails never aborts the rest of the batch, and failed
// fields within a record are skipped so the caller still gets every
// value that did decode.
type Runner struct {
	Buffers BufferFunc
}

// Run decodes each record in order and returns one Result per record.
func (r *Runner) Run(records []*Record) []Result {
	results := make([]Result, 0, len(records))
	for _, rec := range records {
		results = append(results, r.runOne(rec))
	}
	return results
}

func (r *Runner) runOne(rec *Record) Result {
	res := Result{Record: rec}
	log := Logger()

	buf, err := r.Buffers(rec)
	if err != nil {
		log.Warn("no buffer for record",
			zap.String("scope", rec.Scope.String()),
			zap.String("name", rec.Name),
			zap.Error(err))
		res.Err = err
		return res
	}

	d := decode.New(rec.ByteOrder)
	for i := range rec.Layout {
		v, err := d.DecodeField(&rec.Layout[i], buf)
		if err != nil {
			log.Warn("field decode failed",
				zap.String("name", rec.Name),
				zap.String("path", rec.Layout[i].Name()),
				zap.Error(err))
			res.FieldErrs = append(res.FieldErrs, err)
			continue
		}
		res.Values = append(res.Values, v)
	}
	return res
}
