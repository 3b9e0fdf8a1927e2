package hosts

import (
	"bufio"
	"io"
	"iter"
	"slices"

	"github.com/pkg/errors"
	"github.com/samber/lo"
)

const maxLineLength = 1 << 20

// File is a parsed hosts file. Lines are kept in file order.
type File struct {
	Lines []Line
	// Longest textual address of any entry, used to align listings.
	AddressWidth int
}

// ReadLines classifies every line produced by seq in order. The first error
// yielded by seq aborts the read.
func ReadLines(seq iter.Seq2[string, error]) (*File, error) {
	f := &File{}
	for line, err := range seq {
		if err != nil {
			return nil, err
		}
		parsed := ParseLine(line)
		if parsed.IsEntry() {
			f.AddressWidth = max(f.AddressWidth, len(parsed.Entry.Address.String()))
		}
		f.Lines = append(f.Lines, parsed)
	}
	return f, nil
}

// Lines yields each line of r without its terminator ("\n" or "\r\n").
func Lines(r io.Reader) iter.Seq2[string, error] {
	return func(yield func(string, error) bool) {
		scanner := bufio.NewScanner(r)
		scanner.Buffer(make([]byte, 0, 4096), maxLineLength)
		for scanner.Scan() {
			if !yield(scanner.Text(), nil) {
				return
			}
		}
		if err := scanner.Err(); err != nil {
			yield("", errors.WithStack(err))
		}
	}
}

// Read parses a hosts file from r.
func Read(r io.Reader) (*File, error) {
	return ReadLines(Lines(r))
}

// ReadFile opens and parses the hosts file at path.
func ReadFile(path string) (*File, error) {
	file, err := openRead(path)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	defer file.Close()
	return Read(file)
}

func (f *File) Entries() []Entry {
	return lo.FilterMap(f.Lines, func(l Line, _ int) (Entry, bool) {
		return l.Entry, l.IsEntry()
	})
}
func (f *File) Invalids() []string {
	return lo.FilterMap(f.Lines, func(l Line, _ int) (string, bool) {
		return l.Text, l.IsInvalid()
	})
}
func (f *File) EntriesCount() int {
	return lo.CountBy(f.Lines, Line.IsEntry)
}
func (f *File) InvalidsCount() int {
	return lo.CountBy(f.Lines, Line.IsInvalid)
}

// Sorted returns the entries ordered by address, then hostname.
func (f *File) Sorted() []Entry {
	entries := f.Entries()
	slices.SortStableFunc(entries, Entry.Compare)
	return entries
}
