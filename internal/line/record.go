// Package line holds the two sequential containers customers are
// kept in before being served: a FIFO Queue for those who are
// waiting and a LIFO Stack for those who missed their turn.
package line

type Class int

const (
	Waiting Class = iota
	Missed
)

func (c Class) String() string {
	switch c {
	case Waiting:
		return "waiting"
	case Missed:
		return "missed"
	default:
		return "unknown"
	}
}

// Record is one customer. Containers hand out copies, never the node.
type Record struct {
	Name     string
	Class    Class
	Duration int
}

type node struct {
	rec  Record
	next *node
}
