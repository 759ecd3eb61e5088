package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/jhoicas/tienda-cli/internal/application/billing"
	"github.com/jhoicas/tienda-cli/internal/application/inventory"
	"github.com/jhoicas/tienda-cli/internal/domain"
	"github.com/jhoicas/tienda-cli/pkg/logger"
)

// Deps dependencias del Dispatcher.
type Deps struct {
	Inventory  *inventory.UseCase
	NewSession func() *billing.SessionUseCase // abre una factura nueva al entrar a facturación
	Receipts   billing.ReceiptPDFGenerator    // nil deshabilita la exportación PDF
	StoreName  string
	ReceiptDir string
	Log        *logger.Logger
}

// Dispatcher ejecuta comandos contra el inventario y la sesión de facturación y devuelve
// mensajes para el usuario. No hace E/S de terminal: ningún resultado es un error fatal.
type Dispatcher struct {
	deps    Deps
	session *billing.SessionUseCase
}

// NewDispatcher construye el despachador.
func NewDispatcher(deps Deps) *Dispatcher {
	if deps.Log == nil {
		deps.Log = logger.Nop()
	}
	return &Dispatcher{deps: deps}
}

// InBilling indica si hay una factura abierta (menú de facturación activo).
func (d *Dispatcher) InBilling() bool {
	return d.session != nil
}

// Dispatch ejecuta el comando.
func (d *Dispatcher) Dispatch(ctx context.Context, cmd Command) Result {
	d.deps.Log.Debug().Str("action", cmd.Action.String()).Msg("comando recibido")

	switch cmd.Action {
	case ActionAddProduct:
		return d.addProduct(cmd)
	case ActionUpdateProduct:
		return d.updateProduct(cmd)
	case ActionListProducts:
		return d.listProducts()
	case ActionDeleteProduct:
		return d.deleteProduct(cmd)
	case ActionFindProduct:
		return d.findProduct(cmd)
	case ActionStartBilling:
		d.session = d.deps.NewSession()
		d.deps.Log.Info().Str("bill_id", d.session.BillID()).Msg("factura abierta")
		return message(true, msgBillingStarted)
	case ActionExit:
		d.session = nil
		return Result{Lines: []string{msgGoodbye}, OK: true, Exit: true}
	}

	if d.session == nil {
		return message(false, msgNoSession)
	}
	switch cmd.Action {
	case ActionBillAddItem:
		return d.addItem(cmd)
	case ActionBillView:
		return d.viewBill()
	case ActionBillClear:
		d.session.Clear()
		return message(true, msgBillCleared)
	case ActionBillExportPDF:
		return d.exportPDF(ctx)
	case ActionBillBack:
		d.deps.Log.Info().Str("bill_id", d.session.BillID()).Msg("factura descartada")
		d.session = nil
		return message(true, msgBackToMain)
	default:
		return message(false, msgInvalidChoice)
	}
}

func (d *Dispatcher) addProduct(cmd Command) Result {
	out, err := d.deps.Inventory.Add(cmd.Product)
	if err != nil {
		return d.unexpected(cmd, err)
	}
	d.deps.Log.Info().
		Int("product_id", out.ID).
		Str("kind", out.Kind).
		Int("count", d.deps.Inventory.Count()).
		Msg("producto agregado")
	return message(true, msgProductAdded)
}

func (d *Dispatcher) updateProduct(cmd Command) Result {
	if _, err := d.deps.Inventory.Update(cmd.ProductID, cmd.Update); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return message(false, msgProductNotFound)
		}
		return d.unexpected(cmd, err)
	}
	d.deps.Log.Info().Int("product_id", cmd.ProductID).Msg("producto actualizado")
	return message(true, msgProductUpdated)
}

func (d *Dispatcher) deleteProduct(cmd Command) Result {
	if err := d.deps.Inventory.Delete(cmd.ProductID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return message(false, msgProductNotFound)
		}
		return d.unexpected(cmd, err)
	}
	d.deps.Log.Info().
		Int("product_id", cmd.ProductID).
		Int("count", d.deps.Inventory.Count()).
		Msg("producto eliminado")
	return message(true, msgProductDeleted)
}

func (d *Dispatcher) findProduct(cmd Command) Result {
	out, err := d.deps.Inventory.FindByID(cmd.ProductID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return message(false, msgProductNotFound)
		}
		return d.unexpected(cmd, err)
	}
	return message(true, out.Summary)
}

func (d *Dispatcher) listProducts() Result {
	list, err := d.deps.Inventory.List()
	if err != nil {
		return d.unexpected(Command{Action: ActionListProducts}, err)
	}
	if list.IsEmpty() {
		return message(true, msgNoProducts)
	}
	lines := make([]string, 0, len(list.Items)+1)
	lines = append(lines, msgProductsHeader)
	for _, p := range list.Items {
		lines = append(lines, p.Summary)
	}
	return message(true, lines...)
}

func (d *Dispatcher) addItem(cmd Command) Result {
	_, err := d.session.AddItem(cmd.ProductID, cmd.Quantity)
	switch {
	case err == nil:
	case errors.Is(err, domain.ErrNotFound):
		return message(false, msgProductNotFound)
	case errors.Is(err, domain.ErrInsufficientStock):
		d.deps.Log.Warn().
			Str("bill_id", d.session.BillID()).
			Int("product_id", cmd.ProductID).
			Int("qty", cmd.Quantity).
			Msg("stock insuficiente")
		return message(false, msgInsufficient)
	default:
		return d.unexpected(cmd, err)
	}
	d.deps.Log.Info().
		Str("bill_id", d.session.BillID()).
		Int("product_id", cmd.ProductID).
		Int("qty", cmd.Quantity).
		Msg("ítem agregado a la factura")
	return message(true, msgItemAdded)
}

func (d *Dispatcher) viewBill() Result {
	bill := d.session.Summary()
	if bill.IsEmpty() {
		return message(true, msgEmptyBill)
	}
	lines := make([]string, 0, len(bill.Lines)+4)
	lines = append(lines, msgBillHeader)
	for _, l := range bill.Lines {
		name := l.ProductName
		if l.Stale {
			name = msgStaleProduct
			d.deps.Log.Warn().Str("bill_id", bill.ID).Msg("línea con producto eliminado")
		}
		lines = append(lines, fmt.Sprintf("%s x %d = $%s", name, l.Quantity, l.Total.StringFixed(2)))
	}
	lines = append(lines,
		"Subtotal: $"+bill.Subtotal.StringFixed(2),
		fmt.Sprintf("IVA (%s%%): $%s", bill.TaxRate.String(), bill.Tax.StringFixed(2)),
		"Total: $"+bill.GrandTotal.StringFixed(2),
	)
	return message(true, lines...)
}

func (d *Dispatcher) exportPDF(ctx context.Context) Result {
	if d.deps.Receipts == nil {
		return message(false, msgPDFUnavailable)
	}
	doc, err := d.session.ReceiptPDF(ctx, d.deps.Receipts, d.deps.StoreName)
	if err != nil {
		if errors.Is(err, domain.ErrEmptyBill) {
			return message(false, msgEmptyBill)
		}
		return d.unexpected(Command{Action: ActionBillExportPDF}, err)
	}
	path := filepath.Join(d.deps.ReceiptDir, "recibo-"+d.session.BillID()+".pdf")
	if err := os.WriteFile(path, doc, 0o644); err != nil {
		return d.unexpected(Command{Action: ActionBillExportPDF}, fmt.Errorf("escribir %s: %w", path, err))
	}
	d.deps.Log.Info().Str("bill_id", d.session.BillID()).Str("path", path).Msg("recibo exportado")
	return message(true, "Recibo guardado en "+path)
}

func (d *Dispatcher) unexpected(cmd Command, err error) Result {
	d.deps.Log.Error().Err(err).Str("action", cmd.Action.String()).Msg("comando fallido")
	return message(false, msgUnexpectedPrefix+err.Error())
}
