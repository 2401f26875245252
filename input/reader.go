// Fichier: input/reader.go

// Package input reads tab-separated address records from a stream.
package input

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/golang/glog"
	"github.com/pkg/errors"

	"project/ip-filter/address"
)

const (
	fieldDelimiter   = '\t'
	addressDelimiter = '.'
)

// ErrIOFailure is matched by every error returned when the stream cannot be read.
var ErrIOFailure = errors.New("input stream unreadable")

// IOError reports a read failure. It is fatal for the whole run.
type IOError struct {
	// Line is the number of lines read successfully before the failure.
	Line int
	Err  error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("%v after line %d: %v", ErrIOFailure, e.Line, e.Err)
}

func (e *IOError) Unwrap() error { return e.Err }

// Is makes errors.Is(err, ErrIOFailure) hold for any IOError.
func (e *IOError) Is(target error) bool { return target == ErrIOFailure }

// LineError is a record that was skipped because its address did not tokenize.
type LineError struct {
	Line int
	Text string
	Err  error
}

func (e *LineError) Error() string {
	return fmt.Sprintf("line %d: %v", e.Line, e.Err)
}

func (e *LineError) Unwrap() error { return e.Err }

// Result holds the addresses read in input order and the records that were skipped.
type Result struct {
	Pool    address.Pool
	Skipped []*LineError
}

// Read consumes r until EOF. Records whose first field is not a valid address
// are skipped with a warning; only a read failure aborts.
func Read(r io.Reader) (*Result, error) {
	res := &Result{Pool: address.Pool{}}

	// Records may be of any length.
	br := bufio.NewReader(r)

	line := 0
	for {
		text, err := br.ReadString('\n')
		if err != nil && err != io.EOF {
			return nil, &IOError{Line: line, Err: err}
		}
		if text == "" && err == io.EOF {
			break
		}
		line++
		text = strings.TrimSuffix(strings.TrimSuffix(text, "\n"), "\r")

		a, perr := ParseRecord(text)
		if perr != nil {
			glog.Warningf("skipping line %d %q: %v", line, text, perr)
			res.Skipped = append(res.Skipped, &LineError{Line: line, Text: text, Err: perr})
		} else {
			res.Pool = append(res.Pool, a)
		}

		if err == io.EOF {
			break
		}
	}

	glog.V(1).Infof("read %d lines, %d addresses, %d skipped", line, len(res.Pool), len(res.Skipped))
	return res, nil
}

// ParseRecord extracts the first tab-separated field of a record and tokenizes it.
func ParseRecord(text string) (address.Address, error) {
	fields := address.Split(text, fieldDelimiter)
	return address.Tokenize(fields[0], addressDelimiter)
}
