package config

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/spf13/viper"
)

// Config agrupa la configuración de la aplicación (lectura vía Viper desde env y opcionalmente archivo).
type Config struct {
	App     AppConfig
	Log     LogConfig
	Billing BillingConfig
}

// AppConfig configuración general de la aplicación.
type AppConfig struct {
	Env  string // development, production
	Name string // nombre de la tienda (encabezado del recibo)
}

// LogConfig nivel de log: trace, debug, info, warn, error.
type LogConfig struct {
	Level string
}

// BillingConfig configuración de la facturación por sesión.
type BillingConfig struct {
	TaxRate    decimal.Decimal // porcentaje, 5 = 5%
	ReceiptDir string          // carpeta de salida de los recibos PDF
}

// Load lee la configuración desde variables de entorno (y opcionalmente desde archivo).
// Las env vars tienen prioridad. Nombres esperados: APP_ENV, APP_NAME, LOG_LEVEL, BILL_TAX_RATE, RECEIPT_DIR.
func Load() (*Config, error) {
	v := viper.New()

	// Opcional: archivo de configuración (.env o config.env)
	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	_ = v.ReadInConfig() // ignoramos error si no existe

	v.SetConfigName("config")
	v.AddConfigPath("./config")
	_ = v.ReadInConfig()

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	return fromViper(v)
}

func fromViper(v *viper.Viper) (*Config, error) {
	rate, err := getDecimal(v, "BILL_TAX_RATE", "5.0")
	if err != nil {
		return nil, fmt.Errorf("BILL_TAX_RATE: %w", err)
	}
	return &Config{
		App: AppConfig{
			Env:  getString(v, "APP_ENV", "development"),
			Name: getString(v, "APP_NAME", "tienda"),
		},
		Log: LogConfig{
			Level: getString(v, "LOG_LEVEL", "info"),
		},
		Billing: BillingConfig{
			TaxRate:    rate,
			ReceiptDir: getString(v, "RECEIPT_DIR", "."),
		},
	}, nil
}

func getString(v *viper.Viper, key, def string) string {
	if v.IsSet(key) {
		if s := strings.TrimSpace(v.GetString(key)); s != "" {
			return s
		}
	}
	return def
}

func getDecimal(v *viper.Viper, key, def string) (decimal.Decimal, error) {
	return decimal.NewFromString(getString(v, key, def))
}
