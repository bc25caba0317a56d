package main

import (
	"bufio"
	"context"
	"io"
	"math"
	"strconv"

	"github.com/pkg/errors"
)

const (
	tagWaiting = "waiting"
	tagMissed  = "missed"
)

// Outcome tells what happens to a parsed record.
type Outcome int

const (
	Accepted Outcome = iota
	DiscardedNegative
	DiscardedTag
)

func (o Outcome) String() string {
	switch o {
	case Accepted:
		return "accepted"
	case DiscardedNegative:
		return "discarded: negative duration"
	case DiscardedTag:
		return "discarded: unknown tag"
	default:
		return "unknown outcome"
	}
}

// Admit validates one record. The duration is checked before the tag.
func Admit(tag string, duration int) Outcome {
	switch {
	case duration < 0:
		return DiscardedNegative
	case tag == tagWaiting, tag == tagMissed:
		return Accepted
	default:
		return DiscardedTag
	}
}

type LoadStats struct {
	Waiting   int
	Missed    int
	Discarded int
}

func (s LoadStats) Loaded() int { return s.Waiting + s.Missed }

// Load opens the source and routes every valid record into
// the waiting queue or the missed stack.
func (l *Lineup) Load(ctx context.Context) (LoadStats, error) {
	location := l.location()
	rc, err := l.fs.OpenURL(ctx, location)
	if err != nil {
		return LoadStats{}, errors.Wrapf(ErrSourceUnavailable, "open %v: %v", location, err)
	}
	defer rc.Close()
	l.log.Debugf("opened %v", location)

	return l.Read(rc)
}

// Read consumes whitespace separated "name tag duration" triplets.
// Reading stops at the first duration that is not a 32-bit integer or
// at an incomplete trailing triplet; what was admitted so far stays.
func (l *Lineup) Read(r io.Reader) (LoadStats, error) {
	var (
		scanner = bufio.NewScanner(r)
		stats   LoadStats
	)
	scanner.Buffer(make([]byte, 0, 64*1024), math.MaxInt32)
	scanner.Split(bufio.ScanWords)

	for {
		var (
			tok [3]string
			n   int
		)
		for n < len(tok) && scanner.Scan() {
			tok[n] = scanner.Text()
			n++
		}
		if n < len(tok) {
			if n > 0 {
				l.log.Debugf("incomplete record at end of input: %q", tok[:n])
			}
			break
		}

		name, tag := tok[0], tok[1]
		// Durations are 32-bit; anything wider ends reading like a bad token.
		parsed, err := strconv.ParseInt(tok[2], 10, 32)
		duration := int(parsed)
		if err != nil {
			l.log.Debugf("stopped reading at %q: bad duration %q", name, tok[2])
			break
		}

		outcome := Admit(tag, duration)
		if outcome != Accepted {
			stats.Discarded++
			l.log.WithField("name", name).Debug(outcome)
			continue
		}
		switch tag {
		case tagWaiting:
			l.Waiting.Enqueue(name, duration)
			stats.Waiting++
		case tagMissed:
			l.Missed.Push(name, duration)
			stats.Missed++
		}
	}
	if err := scanner.Err(); err != nil {
		return stats, errors.Wrapf(ErrSourceUnreadable, "read: %v", err)
	}

	l.log.Debugf("loaded %d waiting, %d missed, discarded %d",
		stats.Waiting, stats.Missed, stats.Discarded)
	if stats.Loaded() == 0 {
		return stats, ErrNoValidRecords
	}
	return stats, nil
}
