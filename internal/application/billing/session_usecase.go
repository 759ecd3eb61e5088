package billing

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/tienda-cli/internal/application/dto"
	"github.com/jhoicas/tienda-cli/internal/domain"
	"github.com/jhoicas/tienda-cli/internal/domain/entity"
	"github.com/jhoicas/tienda-cli/internal/domain/pricing"
	"github.com/jhoicas/tienda-cli/internal/domain/repository"
)

// SessionUseCase maneja la factura de una sesión de cobro.
// Las líneas guardan la Key del producto y se resuelven contra el inventario en cada cálculo,
// así que los cambios de precio posteriores se reflejan en los totales. El stock solo se
// verifica al agregar; nunca se reserva ni se descuenta.
type SessionUseCase struct {
	productRepo repository.ProductRepository
	bill        *entity.Bill
}

// NewSessionUseCase abre una sesión con una factura vacía y la tasa de impuesto indicada (porcentaje).
func NewSessionUseCase(productRepo repository.ProductRepository, taxRate decimal.Decimal) *SessionUseCase {
	return &SessionUseCase{
		productRepo: productRepo,
		bill:        entity.NewBill(uuid.New().String(), taxRate, time.Now()),
	}
}

// BillID identificador de la factura de esta sesión.
func (uc *SessionUseCase) BillID() string {
	return uc.bill.ID
}

// AddItem agrega qty unidades del primer producto con ese ID.
// Devuelve domain.ErrNotFound si no existe y domain.ErrInsufficientStock si qty supera las existencias.
func (uc *SessionUseCase) AddItem(productID, qty int) (*dto.BillLineResponse, error) {
	product, err := uc.productRepo.GetByID(productID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	if qty > product.Quantity {
		return nil, fmt.Errorf("producto %d: pedido %d, disponible %d: %w",
			productID, qty, product.Quantity, domain.ErrInsufficientStock)
	}
	uc.bill.AddItem(product.Key, qty)
	return &dto.BillLineResponse{
		ProductID:   product.ID,
		ProductName: product.Name,
		Quantity:    qty,
		Total:       product.CalculateTotal(qty),
	}, nil
}

// Subtotal suma de los totales de línea vigentes. Se recalcula en cada llamada.
func (uc *SessionUseCase) Subtotal() decimal.Decimal {
	subtotal := decimal.Zero
	for _, line := range uc.resolve() {
		subtotal = subtotal.Add(line.Total)
	}
	return subtotal
}

// Tax impuesto sobre el subtotal.
func (uc *SessionUseCase) Tax() decimal.Decimal {
	return pricing.TaxAmount(uc.Subtotal(), uc.bill.TaxRate)
}

// GrandTotal subtotal más impuesto.
func (uc *SessionUseCase) GrandTotal() decimal.Decimal {
	subtotal := uc.Subtotal()
	return pricing.GrandTotal(subtotal, pricing.TaxAmount(subtotal, uc.bill.TaxRate))
}

// Clear vacía la factura.
func (uc *SessionUseCase) Clear() {
	uc.bill.Clear()
}

// Summary factura detallada: líneas, subtotal, impuesto y total.
func (uc *SessionUseCase) Summary() *dto.BillResponse {
	lines := uc.resolve()
	subtotal := decimal.Zero
	for _, line := range lines {
		subtotal = subtotal.Add(line.Total)
	}
	tax := pricing.TaxAmount(subtotal, uc.bill.TaxRate)
	return &dto.BillResponse{
		ID:         uc.bill.ID,
		Date:       uc.bill.CreatedAt,
		Lines:      lines,
		Subtotal:   subtotal,
		TaxRate:    uc.bill.TaxRate,
		Tax:        tax,
		GrandTotal: pricing.GrandTotal(subtotal, tax),
	}
}

// ReceiptPDF genera el recibo en PDF de la factura actual.
func (uc *SessionUseCase) ReceiptPDF(ctx context.Context, gen ReceiptPDFGenerator, storeName string) ([]byte, error) {
	if uc.bill.IsEmpty() {
		return nil, domain.ErrEmptyBill
	}
	doc, err := gen.GenerateReceiptPDF(ctx, storeName, uc.Summary())
	if err != nil {
		return nil, fmt.Errorf("recibo %s: %w", uc.bill.ID, err)
	}
	return doc, nil
}

// resolve lee precio y descuento actuales de cada línea. Una Key que ya no resuelve
// (producto eliminado) produce una línea Stale con total 0.
func (uc *SessionUseCase) resolve() []dto.BillLineResponse {
	lines := make([]dto.BillLineResponse, 0, len(uc.bill.Items))
	for _, item := range uc.bill.Items {
		product, err := uc.productRepo.GetByKey(item.ProductKey)
		if err != nil || product == nil {
			lines = append(lines, dto.BillLineResponse{
				Quantity: item.Quantity,
				Total:    decimal.Zero,
				Stale:    true,
			})
			continue
		}
		lines = append(lines, dto.BillLineResponse{
			ProductID:   product.ID,
			ProductName: product.Name,
			Quantity:    item.Quantity,
			Total:       product.CalculateTotal(item.Quantity),
		})
	}
	return lines
}
