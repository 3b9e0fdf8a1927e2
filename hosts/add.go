package hosts

type AddAction uint8

const (
	Added AddAction = iota
	Updated
	Skipped
)

func (a AddAction) String() string {
	switch a {
	case Added:
		return "added"
	case Updated:
		return "updated"
	default:
		return "skipped"
	}
}

// AddResult describes what AddToLines did. Previous is set when Action is Updated.
type AddResult struct {
	Action   AddAction
	Previous Address
}

// Changed reports whether the lines need to be written back.
func (r AddResult) Changed() bool { return r.Action != Skipped }

// AddToLines points every entry carrying entry.Hostname at entry.Address, or
// appends entry when no line carries the hostname.
//
// All lines are visited, so with duplicate hostnames the result describes the
// last matching line: each mismatching line is rewritten and reports Updated
// with its own previous address, an exact match reports Skipped.
func AddToLines(lines []Line, entry Entry) ([]Line, AddResult) {
	result := AddResult{Action: Added}
	for i := range lines {
		line := &lines[i]
		if !line.IsEntry() || line.Entry.Hostname != entry.Hostname {
			continue
		}
		if line.Entry.Address == entry.Address {
			result = AddResult{Action: Skipped}
		} else {
			result = AddResult{Action: Updated, Previous: line.Entry.Address}
			line.Entry.Address = entry.Address
		}
	}
	if result.Action == Added {
		lines = append(lines, EntryLine(entry))
	}
	return lines, result
}

// Add applies AddToLines to the in-memory file.
func (f *File) Add(entry Entry) AddResult {
	var res AddResult
	f.Lines, res = AddToLines(f.Lines, entry)
	if res.Changed() {
		f.AddressWidth = max(f.AddressWidth, len(entry.Address.String()))
	}
	return res
}

// AddToFile adds entry and writes the file to path if anything changed.
func (f *File) AddToFile(path string, entry Entry) (AddResult, error) {
	res := f.Add(entry)
	if res.Changed() {
		if err := f.WriteFile(path); err != nil {
			return res, err
		}
	}
	return res, nil
}
