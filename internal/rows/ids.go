package rows

import "github.com/google/uuid"

const idPrefix = "row"

// NewID returns row-<uuid>. Ids are random v4 uuids, so a removed row's id is
// never handed out again.
func NewID() string {
	return idPrefix + "-" + uuid.NewString()
}
