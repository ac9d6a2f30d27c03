package ports

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// LeaseSnapshot carries the plain data the document renderer needs to produce
// a contract: lease, order, unit, and party details, detached from any live
// aggregate.
type LeaseSnapshot struct {
	LeaseID       string
	OrderNo       string
	HouseID       string
	StartDate     time.Time
	EndDate       time.Time
	RentAmount    decimal.Decimal
	Deposit       decimal.Decimal
	PaymentCycle  string
	TenantName    string
	TenantPhone   string
	LandlordName  string
	LandlordPhone string
}

// DocumentRenderer is the collaborator turning lease data into a contract
// artifact. The core treats the result as an opaque locator and never
// inspects document content. Render is the only potentially slow step in the
// workflow; callers bound it with a context timeout.
type DocumentRenderer interface {
	Render(ctx context.Context, snapshot LeaseSnapshot) (string, error)
}
