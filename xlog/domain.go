package xlog

import (
	"encoding/json"
	"io"

	"github.com/rs/zerolog"
)

// XLog uses the caller field in zerolog to record the "domain" a logger is
// logging about, e.g. hosts, hosts.add.
const (
	DomainFieldName = "dom"
)

// Domain represents a domain.
type Domain struct {
	name        string
	encodedName []byte // JSON escaped name
	logger      Logger
}

func (d *Domain) String() string { return d.name }

// Implement zerolog.Hook
func (d *Domain) Run(e *Event, level Level, msg string) {
	e.Timestamp()
	if e.Enabled() {
		e.RawJSON(DomainFieldName, d.encodedName)
	}
}

// NewDomain creates a new domain and a logger.
func NewDomain(name string, w ...io.Writer) (l *Logger) {
	if len(w) == 0 {
		w = append(w, DefaultWriter{})
	}
	dom := &Domain{name: name}
	dom.encodedName, _ = json.Marshal(name)
	dom.logger = zerolog.New(zerolog.MultiLevelWriter(w...)).Hook(dom)
	return &dom.logger
}
