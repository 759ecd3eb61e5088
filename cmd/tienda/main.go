package main

import (
	"context"
	"os"

	"github.com/jhoicas/tienda-cli/internal/application/billing"
	"github.com/jhoicas/tienda-cli/internal/application/inventory"
	infrapdf "github.com/jhoicas/tienda-cli/internal/infrastructure/pdf"
	"github.com/jhoicas/tienda-cli/internal/infrastructure/memory"
	"github.com/jhoicas/tienda-cli/internal/interfaces/cli"
	"github.com/jhoicas/tienda-cli/pkg/config"
	"github.com/jhoicas/tienda-cli/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.Log.Level,
		Out:   os.Stderr,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("tax_rate", cfg.Billing.TaxRate.String()).
		Msg("iniciando aplicación")

	// El inventario vive solo en memoria durante el proceso.
	productRepo := memory.NewProductRepository()
	inventoryUC := inventory.NewUseCase(productRepo)

	dispatcher := cli.NewDispatcher(cli.Deps{
		Inventory: inventoryUC,
		NewSession: func() *billing.SessionUseCase {
			return billing.NewSessionUseCase(productRepo, cfg.Billing.TaxRate)
		},
		Receipts:   infrapdf.NewMarotoReceiptGenerator(),
		StoreName:  cfg.App.Name,
		ReceiptDir: cfg.Billing.ReceiptDir,
		Log:        log,
	})

	if err := cli.NewShell(dispatcher, os.Stdin, os.Stdout).Run(context.Background()); err != nil {
		log.Error().Err(err).Msg("lectura de la entrada")
	}

	log.Info().Int("products", inventoryUC.Count()).Msg("aplicación detenida")
}
