package order

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// numberPrefix marks generated order numbers. Order numbers are human-readable
// and must stay stable once issued; contracts and receipts reference them.
const numberPrefix = "ORD"

// NewOrderNumber generates an order number from the current timestamp and a
// short random suffix. Collisions are possible in principle but negligibly
// likely; the storage layer's unique index turns one into an insert failure
// instead of silent corruption.
func NewOrderNumber(now time.Time) string {
	suffix := strings.ReplaceAll(uuid.NewString(), "-", "")[:4]
	return fmt.Sprintf("%s%d%s", numberPrefix, now.UnixMilli(), suffix)
}
