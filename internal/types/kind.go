// Package types defines the data structures shared by the deletion client and its front ends.
package types

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownKind is returned when an EntityKind is outside the recognized set.
var ErrUnknownKind = errors.New("unknown entity kind")

// EntityKind selects which server-managed entity a deletion targets.
type EntityKind int

const (
	// Note is a note deletable via /delete-note.
	Note EntityKind = iota + 1
	// Tag is a tag deletable via /delete-tag.
	Tag
)

type (
	// Target describes where a deletion is sent and where the page goes afterwards.
	Target struct {
		Endpoint string `json:"endpoint"`
		Field    string `json:"field"`
		Redirect string `json:"redirect"`
	}
)

var targets = map[EntityKind]Target{
	Note: {Endpoint: "/delete-note", Field: "noteId", Redirect: "/"},
	Tag:  {Endpoint: "/delete-tag", Field: "tagId", Redirect: "/tags"},
}

// Target returns the endpoint, body field and redirect for the kind.
func (k EntityKind) Target() (Target, error) {
	t, ok := targets[k]
	if !ok {
		return Target{}, fmt.Errorf("%w: %d", ErrUnknownKind, int(k))
	}
	return t, nil
}

func (k EntityKind) String() string {
	switch k {
	case Note:
		return "note"
	case Tag:
		return "tag"
	default:
		return fmt.Sprintf("EntityKind(%d)", int(k))
	}
}

// ParseKind maps "note" or "tag" (case-insensitive) to an EntityKind.
func ParseKind(s string) (EntityKind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "note":
		return Note, nil
	case "tag":
		return Tag, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownKind, s)
	}
}
