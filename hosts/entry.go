package hosts

import (
	"fmt"
)

// Entry is one active address to hostname mapping.
type Entry struct {
	Address  Address  `json:"address" yaml:"address"`
	Hostname Hostname `json:"hostname" yaml:"hostname"`
}

func NewEntry(adr Address, host Hostname) Entry {
	return Entry{Address: adr, Hostname: host}
}

// ParseEntry validates both halves of an entry given as user input.
func ParseEntry(adr, host string) (Entry, error) {
	a, err := ParseAddress(adr)
	if err != nil {
		return Entry{}, err
	}
	h, err := ParseHostname(host)
	if err != nil {
		return Entry{}, err
	}
	return Entry{a, h}, nil
}

// Compare orders by address, then by hostname.
func (e Entry) Compare(o Entry) int {
	if c := e.Address.Compare(o.Address); c != 0 {
		return c
	}
	return e.Hostname.Compare(o.Hostname)
}
func (e Entry) String() string {
	return fmt.Sprintf("%s %s", e.Address, e.Hostname)
}
