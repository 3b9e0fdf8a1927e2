package hosts

import (
	"bufio"
	"io"
	"strings"

	"github.com/pkg/errors"
)

// Write renders every line followed by a newline.
func (f *File) Write(w io.Writer) error {
	bw := bufio.NewWriter(w)
	for _, line := range f.Lines {
		bw.WriteString(line.String())
		bw.WriteByte('\n')
	}
	return errors.WithStack(bw.Flush())
}

func (f *File) String() string {
	var b strings.Builder
	f.Write(&b)
	return b.String()
}
func (f *File) MarshalText() ([]byte, error) {
	return []byte(f.String()), nil
}

// WriteFile replaces the contents of path. This is a plain truncate and
// write, an interrupted write leaves a partial file behind.
func (f *File) WriteFile(path string) (err error) {
	file, err := openWrite(path)
	if err != nil {
		return errors.WithStack(err)
	}
	defer func() {
		if e := file.Close(); err == nil && e != nil {
			err = errors.WithStack(e)
		}
	}()
	return f.Write(file)
}
