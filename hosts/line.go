package hosts

import (
	"fmt"
	"strings"
)

type LineKind uint8

const (
	LineBlank LineKind = iota
	LineEntry
	LineComment
	LineInvalid
)

func (k LineKind) String() string {
	switch k {
	case LineBlank:
		return "blank"
	case LineEntry:
		return "entry"
	case LineComment:
		return "comment"
	case LineInvalid:
		return "invalid"
	}
	return fmt.Sprintf("LineKind(%d)", uint8(k))
}

// Line is one physical line of a hosts file. Entry is set for LineEntry,
// Text holds the raw line for LineComment and LineInvalid.
type Line struct {
	Kind  LineKind
	Entry Entry
	Text  string
}

func BlankLine() Line              { return Line{Kind: LineBlank} }
func EntryLine(e Entry) Line       { return Line{Kind: LineEntry, Entry: e} }
func CommentLine(text string) Line { return Line{Kind: LineComment, Text: text} }
func InvalidLine(text string) Line { return Line{Kind: LineInvalid, Text: text} }

func (l Line) IsEntry() bool          { return l.Kind == LineEntry }
func (l Line) IsInvalid() bool        { return l.Kind == LineInvalid }
func (l Line) Equals(other Line) bool { return l == other }

func (l Line) String() string {
	switch l.Kind {
	case LineEntry:
		return l.Entry.String()
	case LineComment, LineInvalid:
		return l.Text
	default:
		return ""
	}
}
func (l Line) MarshalText() ([]byte, error) {
	return []byte(l.String()), nil
}
func (l *Line) UnmarshalText(data []byte) error {
	*l = ParseLine(string(data))
	return nil
}

// ParseLine classifies a raw line. It never fails, anything it cannot make
// sense of becomes an invalid line carrying the original text.
//
//	""                                  blank
//	" 1.2.3.4 a.com"                    invalid, leading space
//	"# anything"                        comment
//	"1.2.3.4   a.com   # note # more"   entry
//	"1.2.3.4 a.com trailing"            invalid
func ParseLine(line string) Line {
	if line == "" {
		return BlankLine()
	} else if strings.HasPrefix(line, " ") {
		return InvalidLine(line)
	}
	if strings.HasPrefix(line, "#") {
		return CommentLine(line)
	}

	var (
		adr     Address
		host    Hostname
		hasAdr  bool
		hasHost bool
	)
	for i, part := range strings.Split(line, " ") {
		if i == 0 {
			a, err := ParseAddress(part)
			if err != nil {
				return InvalidLine(line)
			}
			adr, hasAdr = a, true
			continue
		}
		if part == "" {
			continue
		}
		if hasHost {
			if !strings.HasPrefix(part, "#") {
				return InvalidLine(line)
			}
			break
		}
		h, err := ParseHostname(strings.TrimRight(part, " \t\r\n\v\f"))
		if err != nil {
			return InvalidLine(line)
		}
		host, hasHost = h, true
	}

	if !hasHost {
		// Address with no hostname after it.
		return InvalidLine(line)
	}
	if !hasAdr {
		panic(fmt.Sprintf("hosts: line %q classified without an address", line))
	}
	return EntryLine(Entry{adr, host})
}
