//go:build cgo

package database

// godror is an OCI (cgo) driver; it only builds with CGO_ENABLED=1.
import _ "github.com/godror/godror" // registers "godror"
