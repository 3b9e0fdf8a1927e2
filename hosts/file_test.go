package hosts

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testHost = "host.domain.com"

func entryOf(adr string) Entry {
	return NewEntry(MustParseAddress(adr), MustParseHostname(testHost))
}

func seqOf(lines ...string) func(func(string, error) bool) {
	return func(yield func(string, error) bool) {
		for _, l := range lines {
			if !yield(l, nil) {
				return
			}
		}
	}
}

const sampleFile = `# Copyright (c) 1993-2009 Microsoft Corp.
#
# This is a sample HOSTS file.

127.0.0.1 localhost
192.168.1.10 nas.home.lan # storage
10.0.0.1   router.home.lan
 10.0.0.2 indented.home.lan
10.0.0.3 printer.home.lan extra

255.255.255.255 broadcast.home.lan
`

func TestReadLines(t *testing.T) {
	f, err := ReadLines(seqOf("1.1.1.1 "+testHost, "2.2.2.2 "+testHost))
	require.NoError(t, err)
	assert.Equal(t, []Line{EntryLine(entryOf("1.1.1.1")), EntryLine(entryOf("2.2.2.2"))}, f.Lines)
	assert.Equal(t, 7, f.AddressWidth)
}

func TestReadLinesError(t *testing.T) {
	boom := errors.New("boom")
	seq := func(yield func(string, error) bool) {
		if !yield("1.1.1.1 "+testHost, nil) {
			return
		}
		if !yield("", boom) {
			return
		}
		t.Fatal("read continued after error")
	}
	f, err := ReadLines(seq)
	assert.Nil(t, f)
	assert.ErrorIs(t, err, boom)
}

func TestRead(t *testing.T) {
	f, err := Read(strings.NewReader(sampleFile))
	require.NoError(t, err)

	assert.Len(t, f.Lines, 11)
	assert.Equal(t, 3, f.EntriesCount())
	assert.Equal(t, 3, f.InvalidsCount())
	assert.Equal(t, 15, f.AddressWidth)
	assert.Equal(t, []string{
		"127.0.0.1 localhost",
		" 10.0.0.2 indented.home.lan",
		"10.0.0.3 printer.home.lan extra",
	}, f.Invalids())

	hosts := []string{}
	for _, e := range f.Entries() {
		hosts = append(hosts, e.Hostname.String())
	}
	assert.Equal(t, []string{"nas.home.lan", "router.home.lan", "broadcast.home.lan"}, hosts)
	assert.Equal(t, LineBlank, f.Lines[3].Kind)
	assert.Equal(t, CommentLine("#"), f.Lines[1])
}

func TestReadCRLF(t *testing.T) {
	f, err := Read(strings.NewReader("# c\r\n\r\n1.2.3.4 host.domain.com\r\n"))
	require.NoError(t, err)
	assert.Equal(t, []Line{CommentLine("# c"), BlankLine(), EntryLine(testEntry())}, f.Lines)
}

func TestSorted(t *testing.T) {
	f, err := Read(strings.NewReader("10.0.0.1 b.lan.com\n2.0.0.1 z.lan.com\n2.0.0.1 a.lan.com\n"))
	require.NoError(t, err)
	var got []string
	for _, e := range f.Sorted() {
		got = append(got, e.String())
	}
	assert.Equal(t, []string{"2.0.0.1 a.lan.com", "2.0.0.1 z.lan.com", "10.0.0.1 b.lan.com"}, got)
	assert.Equal(t, "10.0.0.1 b.lan.com", f.Entries()[0].String())
}

func TestReadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "hosts")
	require.NoError(t, os.WriteFile(path, []byte(sampleFile), 0644))

	f, err := ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, 3, f.EntriesCount())

	_, err = ReadFile(filepath.Join(t.TempDir(), "missing"))
	require.Error(t, err)
	assert.ErrorIs(t, err, fs.ErrNotExist)
}

func TestWriteRoundTrip(t *testing.T) {
	f, err := Read(strings.NewReader(sampleFile))
	require.NoError(t, err)

	out := f.String()
	want := strings.Replace(sampleFile, "192.168.1.10 nas.home.lan # storage", "192.168.1.10 nas.home.lan", 1)
	want = strings.Replace(want, "10.0.0.1   router.home.lan", "10.0.0.1 router.home.lan", 1)
	assert.Equal(t, want, out)

	again, err := Read(strings.NewReader(out))
	require.NoError(t, err)
	assert.Equal(t, f.Lines, again.Lines)
}

func TestWriteFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "hosts")
	require.NoError(t, os.WriteFile(path, []byte(strings.Repeat("# long previous content\n", 50)), 0644))

	f := &File{Lines: []Line{CommentLine("# c"), BlankLine(), EntryLine(testEntry()), InvalidLine("bad line")}}
	require.NoError(t, f.WriteFile(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "# c\n\n1.2.3.4 host.domain.com\nbad line\n", string(data))
}

func TestWriteFileError(t *testing.T) {
	f := &File{Lines: []Line{CommentLine("# c")}}
	err := f.WriteFile(filepath.Join(t.TempDir(), "missing", "hosts"))
	require.Error(t, err)
	assert.ErrorIs(t, err, fs.ErrNotExist)
}
