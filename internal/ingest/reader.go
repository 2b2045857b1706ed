package ingest

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/agentic-research/ringscan/internal/survey"
)

// Reader streams StarSystem records from a galaxy dump. Dumps ship either as
// one large JSON array or as newline-delimited objects; both are decoded one
// record at a time so memory stays constant regardless of dump size.
type Reader struct {
	dec     *json.Decoder
	br      *bufio.Reader
	started bool
	inArray bool
	done    bool
}

func NewReader(r io.Reader) *Reader {
	br := bufio.NewReaderSize(r, 1<<20)
	return &Reader{br: br, dec: json.NewDecoder(br)}
}

// Next returns the next record, or io.EOF when the input is exhausted.
// Any other error means the dump is malformed and the run must abort.
func (r *Reader) Next() (*survey.StarSystem, error) {
	if r.done {
		return nil, io.EOF
	}
	if !r.started {
		if err := r.start(); err != nil {
			return nil, err
		}
	}

	if r.inArray {
		if !r.dec.More() {
			// Consume the closing bracket so trailing garbage still errors.
			if _, err := r.dec.Token(); err != nil {
				return nil, fmt.Errorf("read array end: %w", err)
			}
			r.done = true
			return nil, io.EOF
		}
	}

	var sys survey.StarSystem
	if err := r.dec.Decode(&sys); err != nil {
		if errors.Is(err, io.EOF) && !r.inArray {
			r.done = true
			return nil, io.EOF
		}
		return nil, fmt.Errorf("parse system record: %w", err)
	}
	return &sys, nil
}

// start sniffs the first non-space byte to pick array vs stream mode.
func (r *Reader) start() error {
	r.started = true
	for {
		b, err := r.br.ReadByte()
		if err != nil {
			if errors.Is(err, io.EOF) {
				r.done = true
				return nil
			}
			return fmt.Errorf("read input: %w", err)
		}
		switch b {
		case ' ', '\t', '\r', '\n':
			continue
		}
		if err := r.br.UnreadByte(); err != nil {
			return err
		}
		if b == '[' {
			r.inArray = true
			if _, err := r.dec.Token(); err != nil {
				return fmt.Errorf("read array start: %w", err)
			}
		}
		return nil
	}
}
