package tuitest

import (
	"bytes"
	"io"
)

// terminalQueries lists what termenv and Bubble Tea ask a terminal on startup,
// with the answers a plain dark xterm would give. Without replies the program
// stalls until its query timeout.
var terminalQueries = []struct {
	query []byte
	reply []byte
}{
	{[]byte("\x1b[6n"), []byte("\x1b[1;1R")},
	{[]byte("\x1b]10;?\x07"), []byte("\x1b]10;rgb:cccc/cccc/cccc\x07")},
	{[]byte("\x1b]10;?\x1b\\"), []byte("\x1b]10;rgb:cccc/cccc/cccc\x1b\\")},
	{[]byte("\x1b]11;?\x07"), []byte("\x1b]11;rgb:0000/0000/0000\x07")},
	{[]byte("\x1b]11;?\x1b\\"), []byte("\x1b]11;rgb:0000/0000/0000\x1b\\")},
}

const responderTail = 64

type queryResponder struct {
	w       io.Writer
	pending []byte
}

func newQueryResponder(w io.Writer) *queryResponder {
	return &queryResponder{w: w}
}

// Observe scans program output for queries and answers each one once.
// A short tail is kept so queries split across reads are still seen.
func (q *queryResponder) Observe(chunk []byte) {
	q.pending = append(q.pending, chunk...)
	for q.answerNext() {
	}
	if len(q.pending) > responderTail {
		q.pending = append([]byte(nil), q.pending[len(q.pending)-responderTail:]...)
	}
}

func (q *queryResponder) answerNext() bool {
	first, firstAt := -1, len(q.pending)
	for i, entry := range terminalQueries {
		if at := bytes.Index(q.pending, entry.query); at >= 0 && at < firstAt {
			first, firstAt = i, at
		}
	}
	if first < 0 {
		return false
	}
	entry := terminalQueries[first]
	q.pending = q.pending[firstAt+len(entry.query):]
	_, _ = q.w.Write(entry.reply)
	return true
}
