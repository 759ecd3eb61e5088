package cli

import "github.com/jhoicas/tienda-cli/internal/application/dto"

// Action operación que el Dispatcher sabe ejecutar.
type Action int

// Acciones del menú principal y del menú de facturación.
const (
	ActionAddProduct Action = iota + 1
	ActionUpdateProduct
	ActionListProducts
	ActionDeleteProduct
	ActionStartBilling
	ActionExit

	ActionFindProduct
	ActionBillAddItem
	ActionBillView
	ActionBillClear
	ActionBillExportPDF
	ActionBillBack
)

var actionNames = map[Action]string{
	ActionAddProduct:    "add_product",
	ActionUpdateProduct: "update_product",
	ActionListProducts:  "list_products",
	ActionDeleteProduct: "delete_product",
	ActionStartBilling:  "start_billing",
	ActionExit:          "exit",
	ActionFindProduct:   "find_product",
	ActionBillAddItem:   "bill_add_item",
	ActionBillView:      "bill_view",
	ActionBillClear:     "bill_clear",
	ActionBillExportPDF: "bill_export_pdf",
	ActionBillBack:      "bill_back",
}

func (a Action) String() string {
	if s, ok := actionNames[a]; ok {
		return s
	}
	return "unknown"
}

// Command valor que describe una operación y sus argumentos ya leídos.
type Command struct {
	Action    Action
	ProductID int // update, delete, find, bill_add_item
	Quantity  int // bill_add_item
	Product   dto.CreateProductRequest
	Update    dto.UpdateProductRequest
}

// Result resultado de un comando: líneas a mostrar y estado.
// OK es false cuando el resultado informa un "no encontrado", "stock insuficiente", etc.
type Result struct {
	Lines []string
	OK    bool
	Exit  bool
}

func message(ok bool, lines ...string) Result {
	return Result{Lines: lines, OK: ok}
}

// Opciones del menú principal.
var mainMenu = map[int]Action{
	1: ActionAddProduct,
	2: ActionUpdateProduct,
	3: ActionListProducts,
	4: ActionDeleteProduct,
	5: ActionStartBilling,
	6: ActionExit,
}

// Opciones del menú de facturación.
var billingMenu = map[int]Action{
	1: ActionListProducts,
	2: ActionBillAddItem,
	3: ActionBillView,
	4: ActionBillClear,
	5: ActionBillExportPDF,
	6: ActionBillBack,
}

// MainAction traduce una opción del menú principal.
func MainAction(choice int) (Action, bool) {
	a, ok := mainMenu[choice]
	return a, ok
}

// BillingAction traduce una opción del menú de facturación.
func BillingAction(choice int) (Action, bool) {
	a, ok := billingMenu[choice]
	return a, ok
}
