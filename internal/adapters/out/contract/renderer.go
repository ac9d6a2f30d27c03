// Package contract renders lease contract documents as PDF files on local
// disk. The rest of the system treats the returned path as an opaque
// locator; swapping this package for an object-store backed renderer only
// requires honoring the same port.
package contract

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"renthub/internal/core/ports"
	"renthub/internal/pkg/errs"

	"github.com/go-pdf/fpdf"
)

const contractDateLayout = "2006-01-02"

// PDFRenderer implements the document renderer port with fpdf, writing one
// PDF per lease under a configured directory.
type PDFRenderer struct {
	dir string
}

// NewPDFRenderer creates a renderer writing contracts under dir. The
// directory is created on first use if missing.
func NewPDFRenderer(dir string) *PDFRenderer {
	return &PDFRenderer{dir: dir}
}

// Render produces the contract document for a lease and returns its file
// path. The context is checked before the expensive write so a timed-out
// confirmation does not leave half-written files behind.
func (r *PDFRenderer) Render(ctx context.Context, snapshot ports.LeaseSnapshot) (string, error) {
	if snapshot.LeaseID == "" {
		return "", errs.NewValueIsRequiredError("lease id")
	}

	if err := ctx.Err(); err != nil {
		return "", errs.NewGenerationErrorWithCause("lease contract", err)
	}

	if err := os.MkdirAll(r.dir, 0o755); err != nil {
		return "", errs.NewGenerationErrorWithCause("lease contract", err)
	}

	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Lease Contract "+snapshot.OrderNo, false)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 18)
	pdf.CellFormat(0, 12, "Residential Lease Contract", "", 1, "C", false, 0, "")
	pdf.Ln(4)

	pdf.SetFont("Helvetica", "", 11)
	r.writeRow(pdf, "Contract No", snapshot.OrderNo)
	r.writeRow(pdf, "Unit", snapshot.HouseID)
	r.writeRow(pdf, "Lease Term", fmt.Sprintf("%s to %s",
		snapshot.StartDate.Format(contractDateLayout),
		snapshot.EndDate.Format(contractDateLayout)))
	r.writeRow(pdf, "Rent", snapshot.RentAmount.StringFixed(2))
	r.writeRow(pdf, "Deposit", snapshot.Deposit.StringFixed(2))
	r.writeRow(pdf, "Payment Cycle", snapshot.PaymentCycle)
	pdf.Ln(6)

	pdf.SetFont("Helvetica", "B", 13)
	pdf.CellFormat(0, 10, "Parties", "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 11)
	r.writeRow(pdf, "Tenant", fmt.Sprintf("%s (%s)", snapshot.TenantName, snapshot.TenantPhone))
	r.writeRow(pdf, "Landlord", fmt.Sprintf("%s (%s)", snapshot.LandlordName, snapshot.LandlordPhone))
	pdf.Ln(6)

	pdf.SetFont("Helvetica", "", 10)
	pdf.MultiCell(0, 6,
		"The landlord lets and the tenant takes the unit identified above for the "+
			"term stated. Rent falls due per the agreed payment cycle. The deposit is "+
			"refundable at the end of the tenancy subject to the condition of the unit.",
		"", "L", false)

	if err := ctx.Err(); err != nil {
		return "", errs.NewGenerationErrorWithCause("lease contract", err)
	}

	path := filepath.Join(r.dir, fmt.Sprintf("lease-%s.pdf", snapshot.LeaseID))
	if err := pdf.OutputFileAndClose(path); err != nil {
		return "", errs.NewGenerationErrorWithCause("lease contract", err)
	}

	return path, nil
}

func (r *PDFRenderer) writeRow(pdf *fpdf.Fpdf, label, value string) {
	pdf.SetFont("Helvetica", "B", 11)
	pdf.CellFormat(40, 8, label, "", 0, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 11)
	pdf.CellFormat(0, 8, value, "", 1, "L", false, 0, "")
}
