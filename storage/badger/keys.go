package badger

import (
	"fmt"

	"github.com/poiesic/longdoc/core"
)

// Key prefixes for different data types
const (
	sessionRecordPrefix = "sesrec"
)

// makeSessionKey generates a key for a session record by ID.
func makeSessionKey(id core.ID) []byte {
	return []byte(fmt.Sprintf("%s:%d", sessionRecordPrefix, id))
}
