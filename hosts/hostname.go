package hosts

import (
	"strings"

	"github.com/miekg/dns"
	"golang.org/x/net/idna"
)

// Hostname is a fully-qualified domain name in normalized form: lower case
// ASCII (punycode for international labels), no trailing root dot.
type Hostname struct {
	name  string
	depth int
}

// ParseHostname normalizes and validates s. The name must have at least two
// labels, a bare label such as "localhost" is rejected.
func ParseHostname(s string) (Hostname, error) {
	h, err := parseHostname(s)
	if err != nil {
		return Hostname{}, err
	}
	if h.depth < 1 {
		return Hostname{}, &FormatError{Kind: ErrInvalidHostname, Input: s, Err: errNoDepth}
	}
	return h, nil
}

// MustParseHostname is like ParseHostname but panics on failure.
func MustParseHostname(s string) Hostname {
	h, err := ParseHostname(s)
	if err != nil {
		panic(err)
	}
	return h
}

func parseHostname(s string) (Hostname, error) {
	name := strings.TrimSuffix(s, ".")
	if name == "" {
		return Hostname{}, &FormatError{Kind: ErrInvalidHostname, Input: s}
	}
	ascii, err := idna.Lookup.ToASCII(strings.ToLower(name))
	if err != nil {
		return Hostname{}, &FormatError{Kind: ErrInvalidHostname, Input: s, Err: err}
	}
	labels, ok := dns.IsDomainName(ascii)
	if !ok || !isLDH(ascii) {
		return Hostname{}, &FormatError{Kind: ErrInvalidHostname, Input: s}
	}
	return Hostname{name: ascii, depth: labels - 1}, nil
}

// isLDH checks every label is letters, digits and inner hyphens.
func isLDH(name string) bool {
	for _, label := range strings.Split(name, ".") {
		if label == "" || len(label) > 63 || label[0] == '-' || label[len(label)-1] == '-' {
			return false
		}
		for i := 0; i < len(label); i++ {
			c := label[i]
			if !('a' <= c && c <= 'z' || '0' <= c && c <= '9' || c == '-') {
				return false
			}
		}
	}
	return true
}

func (h Hostname) IsValid() bool  { return h.name != "" }
func (h Hostname) String() string { return h.name }

// Depth is the number of labels below the top-level one.
// "com" is 0, "domain.com" is 1, "host.domain.com" is 2.
func (h Hostname) Depth() int { return h.depth }

// Fqdn returns the name with the root dot appended.
func (h Hostname) Fqdn() string { return dns.Fqdn(h.name) }

func (h Hostname) Compare(o Hostname) int {
	return strings.Compare(h.name, o.name)
}

func (h Hostname) MarshalText() ([]byte, error) {
	return []byte(h.name), nil
}
func (h *Hostname) UnmarshalText(data []byte) (err error) {
	*h, err = ParseHostname(string(data))
	return
}
