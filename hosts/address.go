package hosts

import (
	"net/netip"
)

// Address is an IPv4 address.
type Address struct {
	ip netip.Addr
}

// ParseAddress parses a dotted quad. IPv6 and IPv4-mapped IPv6 forms are rejected.
func ParseAddress(s string) (Address, error) {
	ip, err := netip.ParseAddr(s)
	if err != nil {
		return Address{}, &FormatError{Kind: ErrInvalidAddress, Input: s, Err: err}
	}
	if !ip.Is4() {
		return Address{}, &FormatError{Kind: ErrInvalidAddress, Input: s}
	}
	return Address{ip}, nil
}

// MustParseAddress is like ParseAddress but panics on failure.
func MustParseAddress(s string) Address {
	a, err := ParseAddress(s)
	if err != nil {
		panic(err)
	}
	return a
}

// AddressFrom4 returns the address of the given octets.
func AddressFrom4(a, b, c, d byte) Address {
	return Address{netip.AddrFrom4([4]byte{a, b, c, d})}
}

func (a Address) IsValid() bool  { return a.ip.Is4() }
func (a Address) As4() [4]byte   { return a.ip.As4() }
func (a Address) String() string { return a.ip.String() }
func (a Address) Compare(b Address) int {
	return a.ip.Compare(b.ip)
}

func (a Address) MarshalText() ([]byte, error) {
	return []byte(a.String()), nil
}
func (a *Address) UnmarshalText(data []byte) (err error) {
	*a, err = ParseAddress(string(data))
	return
}
