package element

import (
	"fmt"
	"strconv"
	"strings"
)

// EnumValue is implemented by every enumerated attribute type of this
// package. String returns the canonical display string.
type EnumValue interface {
	fmt.Stringer
	Ordinal() int
	Enum() *EnumSet
	withOrdinal(int) EnumValue
}

type member struct {
	ident   string
	display string
}

// EnumSet is the lookup table of one enumerated type. Members are looked up
// only within their own set.
type EnumSet struct {
	name    string
	members []member
}

func newEnumSet(name string, members ...member) *EnumSet {
	return &EnumSet{name: name, members: members}
}

// plain declares members whose display string is the identifier with
// underscores replaced by spaces.
func plain(idents ...string) []member {
	members := make([]member, 0, len(idents))
	for _, id := range idents {
		members = append(members, member{id, strings.ReplaceAll(id, "_", " ")})
	}
	return members
}

func (s *EnumSet) Name() string {
	return s.name
}

func (s *EnumSet) Len() int {
	return len(s.members)
}

// Display returns the canonical string of the member at ordinal i.
func (s *EnumSet) Display(i int) string {
	if i < 0 || i >= len(s.members) {
		return fmt.Sprintf("%s(%d)", s.name, i)
	}
	return s.members[i].display
}

// Member returns an EnumMappingError unless v is a declared member of its
// enum.
func Member(v EnumValue) error {
	set := v.Enum()
	if i := v.Ordinal(); i < 0 || i >= set.Len() {
		return &EnumMappingError{Enum: set.Name(), Value: strconv.Itoa(i)}
	}
	return nil
}

// Ident returns the member identifier at ordinal i.
func (s *EnumSet) Ident(i int) string {
	if i < 0 || i >= len(s.members) {
		return ""
	}
	return s.members[i].ident
}

// Displays lists the canonical strings in ordinal order.
func (s *EnumSet) Displays() []string {
	out := make([]string, len(s.members))
	for i, m := range s.members {
		out[i] = m.display
	}
	return out
}

// Parse maps text to an ordinal. The display string wins over the member
// identifier; case is ignored only when neither matches exactly.
func (s *EnumSet) Parse(text string) (int, error) {
	text = strings.TrimSpace(text)
	for i, m := range s.members {
		if m.display == text {
			return i, nil
		}
	}
	for i, m := range s.members {
		if m.ident == text {
			return i, nil
		}
	}
	for i, m := range s.members {
		if strings.EqualFold(m.display, text) || strings.EqualFold(m.ident, text) {
			return i, nil
		}
	}
	return 0, &EnumMappingError{Enum: s.name, Value: text}
}

// ParseEnum parses text as a member of the same enum as like.
func ParseEnum(like EnumValue, text string) (EnumValue, error) {
	i, err := like.Enum().Parse(text)
	if err != nil {
		return nil, err
	}
	return like.withOrdinal(i), nil
}
