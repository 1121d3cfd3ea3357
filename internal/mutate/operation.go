package mutate

import "strings"

// Op is the closed set of operations a request can classify into.
type Op int

const (
	OpUnknown Op = iota
	OpAdd
	OpUpdate
	OpDelete
)

// Classification labels, matched case-insensitively against the request's
// label set.
const (
	LabelAdd    = "marker-add"
	LabelUpdate = "marker-update"
	LabelDelete = "marker-delete"
)

func (op Op) String() string {
	switch op {
	case OpAdd:
		return "add"
	case OpUpdate:
		return "update"
	case OpDelete:
		return "delete"
	default:
		return "unknown"
	}
}

// Classify picks the operation for a label set. The first matching label
// wins in the order add, update, delete; anything else is OpUnknown.
func Classify(labels []string) Op {
	for _, want := range []struct {
		label string
		op    Op
	}{
		{LabelAdd, OpAdd},
		{LabelUpdate, OpUpdate},
		{LabelDelete, OpDelete},
	} {
		for _, l := range labels {
			if strings.EqualFold(l, want.label) {
				return want.op
			}
		}
	}
	return OpUnknown
}

// Request is one inbound mutation request.
type Request struct {
	Number int      // request identifier from the ticketing system, 0 if unknown
	Body   string   // free-form issue-form body
	Labels []string // classification label set
}
