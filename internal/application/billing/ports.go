package billing

import (
	"context"

	"github.com/jhoicas/tienda-cli/internal/application/dto"
)

// ReceiptPDFGenerator genera la representación en PDF de una factura de sesión.
type ReceiptPDFGenerator interface {
	GenerateReceiptPDF(ctx context.Context, storeName string, bill *dto.BillResponse) ([]byte, error)
}
