package record

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"

	"github.com/memgron/memgron/errors"
)

// Reader reads layout records from a JSONL stream, one record per
// line. Blank lines are skipped.
type Reader struct {
	scanner *bufio.Scanner
	line    int
}

// NewReader returns a Reader over r. Lines up to 16 MiB are accepted;
// layouts for very wide types can be large.
func NewReader(r io.Reader) *Reader {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	return &Reader{scanner: sc}
}

// Next returns the next record, or io.EOF when the stream is
// exhausted. A malformed line is reported with its line number and
// does not consume the rest of the stream.
func (r *Reader) Next() (*Record, error) {
	for r.scanner.Scan() {
		r.line++
		line := r.scanner.Bytes()
		if len(line) == 0 || isBlank(line) {
			continue
		}
		var rec Record
		if err := json.Unmarshal(line, &rec); err != nil {
			return nil, errors.Wrap(errors.PhaseLoad, errors.KindInvalidData, err,
				fmt.Sprintf("line %d", r.line))
		}
		return &rec, nil
	}
	if err := r.scanner.Err(); err != nil {
		return nil, errors.Wrap(errors.PhaseLoad, errors.KindInvalidData, err, "read layout stream")
	}
	return nil, io.EOF
}

// ReadAll drains the stream into a slice.
func (r *Reader) ReadAll() ([]*Record, error) {
	var out []*Record
	for {
		rec, err := r.Next()
		if err == io.EOF {
			return out, nil
		}
		if err != nil {
			return out, err
		}
		out = append(out, rec)
	}
}

func isBlank(line []byte) bool {
	for _, c := range line {
		if c != ' ' && c != '\t' && c != '\r' {
			return false
		}
	}
	return true
}

// Writer writes layout records as JSONL.
type Writer struct {
	w io.Writer
}

func NewWriter(w io.Writer) *Writer {
	return &Writer{w: w}
}

// Write emits one record as a single JSON line.
func (w *Writer) Write(rec *Record) error {
	data, err := json.Marshal(rec)
	if err != nil {
		return errors.Wrap(errors.PhaseLoad, errors.KindInvalidData, err, "marshal layout record")
	}
	data = append(data, '\n')
	if _, err := w.w.Write(data); err != nil {
		return fmt.Errorf("write layout record: %w", err)
	}
	return nil
}

// ReadRequests parses resolver input lines ([scope, name] pairs) from
// r, skipping blank lines.
func ReadRequests(r io.Reader) ([]Request, error) {
	sc := bufio.NewScanner(r)
	var out []Request
	line := 0
	for sc.Scan() {
		line++
		raw := sc.Bytes()
		if len(raw) == 0 || isBlank(raw) {
			continue
		}
		var req Request
		if err := json.Unmarshal(raw, &req); err != nil {
			return nil, errors.Wrap(errors.PhaseLoad, errors.KindInvalidData, err,
				fmt.Sprintf("line %d", line))
		}
		out = append(out, req)
	}
	if err := sc.Err(); err != nil {
		return nil, errors.Wrap(errors.PhaseLoad, errors.KindInvalidData, err, "read request stream")
	}
	return out, nil
}
