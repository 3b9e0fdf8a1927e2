package hosts

type RemoveAction uint8

const (
	RemovedByAddress RemoveAction = iota
	RemovedByHostname
	RemoveInvalid
)

func (a RemoveAction) String() string {
	switch a {
	case RemovedByAddress:
		return "removed-by-address"
	case RemovedByHostname:
		return "removed-by-hostname"
	default:
		return "invalid"
	}
}

// RemoveResult describes what RemoveFromLines did.
type RemoveResult struct {
	Action RemoveAction
	Count  int
}

// Changed reports whether the lines need to be written back. A valid target
// that matched nothing still counts.
func (r RemoveResult) Changed() bool { return r.Action != RemoveInvalid }

// RemoveFromLines drops every entry whose address equals target, or, when
// target is not an address, every entry whose hostname equals it. Other lines
// are kept in order.
func RemoveFromLines(lines []Line, target string) ([]Line, RemoveResult) {
	adr, adrErr := ParseAddress(target)
	host, hostErr := ParseHostname(target)
	if adrErr != nil && hostErr != nil {
		return lines, RemoveResult{Action: RemoveInvalid}
	}

	match := func(e Entry) bool { return e.Hostname == host }
	action := RemovedByHostname
	if adrErr == nil {
		match = func(e Entry) bool { return e.Address == adr }
		action = RemovedByAddress
	}

	kept := lines[:0:0]
	count := 0
	for _, line := range lines {
		if line.IsEntry() && match(line.Entry) {
			count++
			continue
		}
		kept = append(kept, line)
	}
	return kept, RemoveResult{Action: action, Count: count}
}

// Remove applies RemoveFromLines to the in-memory file.
func (f *File) Remove(target string) RemoveResult {
	var res RemoveResult
	f.Lines, res = RemoveFromLines(f.Lines, target)
	return res
}

// RemoveFromFile removes target and writes the file to path unless target was invalid.
func (f *File) RemoveFromFile(path string, target string) (RemoveResult, error) {
	res := f.Remove(target)
	if res.Changed() {
		if err := f.WriteFile(path); err != nil {
			return res, err
		}
	}
	return res, nil
}
