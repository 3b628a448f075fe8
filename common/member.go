package common

import "github.com/nspcc-dev/neo-go/pkg/util"

// Member is a weighted group member.
type Member struct {
	Addr   util.Uint160 `json:"addr"`
	Weight uint64       `json:"weight"`
}

// MemberDiff describes a single membership change. Nil Old means the member
// was added, nil New means it was removed.
type MemberDiff struct {
	Addr util.Uint160
	Old  *uint64
	New  *uint64
}

// Weight returns pointer to w. It is handy for building MemberDiff.
func Weight(w uint64) *uint64 {
	return &w
}

// Event is a notification emitted by a contract call.
type Event struct {
	Name       string
	Attributes []Attribute
}

// Attribute is a named Event parameter.
type Attribute struct {
	Key   string
	Value string
}

// NewEvent builds Event from the name and key-value pairs.
func NewEvent(name string, kv ...string) Event {
	ev := Event{Name: name}
	for i := 0; i+1 < len(kv); i += 2 {
		ev.Attributes = append(ev.Attributes, Attribute{Key: kv[i], Value: kv[i+1]})
	}
	return ev
}

// Attribute returns value of the named attribute.
func (e Event) Attribute(key string) (string, bool) {
	for _, a := range e.Attributes {
		if a.Key == key {
			return a.Value, true
		}
	}
	return "", false
}
