package lib

import (
	"fmt"

	"github.com/google/uuid"
)

// NewUploadReference generates the reference id attached to each payment
// slip relay, in the format CO-<uuid>. It shows up in the notification
// email footer and in the server logs so the shop owner can point at a
// specific upload when something went wrong.
func NewUploadReference() string {
	return fmt.Sprintf("CO-%s", uuid.NewString())
}
