package main

import (
	"bufio"
	"fmt"
	"io"

	"github.com/pietv/lineup/internal/line"
)

// Waiting customers served per round before one missed customer.
const waitingPerRound = 3

// Event is one served customer. Seq starts at 1 and runs across rounds.
type Event struct {
	Seq int
	line.Record
}

// Drain serves both lines until they are empty: up to three from
// the waiting queue, then one from the missed stack, per round.
// It returns the summed duration.
func (l *Lineup) Drain(emit func(Event)) (total int) {
	seq := 0
	serve := func(rec line.Record) {
		seq++
		total += rec.Duration
		emit(Event{Seq: seq, Record: rec})
	}

	for !l.Waiting.IsEmpty() || !l.Missed.IsEmpty() {
		for i := 0; i < waitingPerRound; i++ {
			rec, ok := l.Waiting.Dequeue()
			if !ok {
				break
			}
			serve(rec)
		}
		if rec, ok := l.Missed.Pop(); ok {
			serve(rec)
		}
	}
	return total
}

// ServeAll drains both lines and writes the serve order and
// the total to w.
func (l *Lineup) ServeAll(w io.Writer) (int, error) {
	bw := bufio.NewWriter(w)

	fmt.Fprintln(bw, "serve order")
	total := l.Drain(func(e Event) {
		fmt.Fprintf(bw, "%d. %s %v time %d\n", e.Seq, e.Name, e.Class, e.Duration)
	})
	fmt.Fprintf(bw, "\ntotal time %d\n", total)

	return total, bw.Flush()
}
