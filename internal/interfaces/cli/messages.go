package cli

// Textos visibles para el usuario.
const (
	msgProductAdded     = "¡Producto agregado correctamente!"
	msgProductUpdated   = "¡Producto actualizado correctamente!"
	msgProductDeleted   = "¡Producto eliminado correctamente!"
	msgProductNotFound  = "¡Producto no encontrado!"
	msgNoProducts       = "No hay productos en inventario."
	msgProductsHeader   = "=== PRODUCTOS ==="
	msgInsufficient     = "¡Stock insuficiente!"
	msgItemAdded        = "¡Producto agregado a la factura!"
	msgEmptyBill        = "¡No hay ítems en la factura!"
	msgBillHeader       = "=== FACTURA DEL CLIENTE ==="
	msgBillCleared      = "¡Factura limpiada!"
	msgBillingStarted   = "Nueva factura abierta."
	msgBackToMain       = "Volviendo al menú principal..."
	msgGoodbye          = "Saliendo... ¡Hasta luego!"
	msgInvalidChoice    = "¡Opción inválida!"
	msgInvalidInput     = "Entrada inválida."
	msgNoSession        = "No hay una factura abierta."
	msgPDFUnavailable   = "La exportación a PDF no está disponible."
	msgStaleProduct     = "(producto eliminado)"
	msgUnexpectedPrefix = "Error: "

	mainMenuText = `
=== MENÚ PRINCIPAL ===
1. Agregar producto
2. Actualizar producto
3. Ver productos
4. Eliminar producto
5. Facturación
6. Salir`

	billingMenuText = `
=== MENÚ DE FACTURACIÓN ===
1. Ver productos
2. Agregar producto a la factura
3. Ver factura
4. Limpiar factura
5. Exportar recibo PDF
6. Volver al menú principal`
)
