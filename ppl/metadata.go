package ppl

import (
	"os"
	"os/user"
	"time"

	log "github.com/sirupsen/logrus"
)

// Metadata is the save stamp written on the document node.
type Metadata struct {
	Date        time.Time
	User        string
	Workstation string
}

// MetadataFunc supplies the stamp for a save.
type MetadataFunc func() Metadata

// HostMetadata stamps with the current time, user and host name. Lookups
// that fail leave the field empty.
func HostMetadata() Metadata {
	md := Metadata{Date: time.Now()}
	if u, err := user.Current(); err == nil {
		md.User = u.Username
	} else {
		log.Debug("no user for document stamp: ", err)
	}
	if h, err := os.Hostname(); err == nil {
		md.Workstation = h
	} else {
		log.Debug("no hostname for document stamp: ", err)
	}
	return md
}
