package crowd

// Kind classifies the outcome of a crowd operation.
type Kind int

const (
	// KindAdded: a person entered a container.
	KindAdded Kind = iota
	// KindRemoved: one person left a container.
	KindRemoved
	// KindNobody: a removal was requested on an empty container.
	KindNobody
	// KindDrained: a container was emptied; Names holds removal order.
	KindDrained
	// KindAlreadyEmpty: emptying was requested on an empty container.
	KindAlreadyEmpty
	// KindContents: a listing of a non-empty container.
	KindContents
	// KindEmpty: a listing of an empty container.
	KindEmpty
)

var kindNames = [...]string{
	KindAdded:        "added",
	KindRemoved:      "removed",
	KindNobody:       "nobody",
	KindDrained:      "drained",
	KindAlreadyEmpty: "already_empty",
	KindContents:     "contents",
	KindEmpty:        "empty",
}

// String returns a lower-case label, suitable for log attributes and metric labels.
func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return "unknown"
	}

	return kindNames[k]
}

// Soft reports whether the event describes a request that found nothing to act on.
func (k Kind) Soft() bool {
	return k == KindNobody || k == KindAlreadyEmpty || k == KindEmpty
}

// Container names which of the two crowd containers an event refers to.
type Container string

const (
	Stack Container = "Stack"
	Queue Container = "Queue"
)

// Event is the structured result of every Control operation.
//
// Names depends on Kind:
//
//	KindAdded, KindRemoved  one name
//	KindDrained             names in removal order
//	KindContents            names in display order (Stack newest first, Queue oldest first)
//	otherwise               nil
type Event struct {
	Kind      Kind
	Container Container
	Names     []string
}
