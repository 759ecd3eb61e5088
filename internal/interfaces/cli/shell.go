package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/unicode/norm"

	"github.com/jhoicas/tienda-cli/internal/application/dto"
)

var errInvalidInput = errors.New("entrada inválida")

// Shell menú de texto orientado a líneas sobre el Dispatcher.
// Solo valida tipos (entero, decimal); el resto lo decide el Dispatcher.
type Shell struct {
	d   *Dispatcher
	in  *bufio.Scanner
	out io.Writer
}

// NewShell construye el menú sobre la entrada y salida indicadas.
func NewShell(d *Dispatcher, in io.Reader, out io.Writer) *Shell {
	return &Shell{d: d, in: bufio.NewScanner(in), out: out}
}

// Run muestra menús hasta que el usuario elige salir o se agota la entrada.
func (s *Shell) Run(ctx context.Context) error {
	for {
		menu, lookup := mainMenuText, MainAction
		if s.d.InBilling() {
			menu, lookup = billingMenuText, BillingAction
		}
		fmt.Fprintln(s.out, menu)

		choice, err := s.readInt("Elija una opción: ")
		if errors.Is(err, io.EOF) {
			return s.in.Err()
		}
		if err != nil {
			s.println(msgInvalidChoice)
			continue
		}
		action, ok := lookup(choice)
		if !ok {
			s.println(msgInvalidChoice)
			continue
		}

		cmd, err := s.readCommand(ctx, action)
		if errors.Is(err, io.EOF) {
			return s.in.Err()
		}
		if errors.Is(err, errInvalidInput) {
			s.println(msgInvalidInput)
			continue
		}
		if err != nil {
			// readCommand ya mostró el resultado intermedio (ej. producto no encontrado).
			continue
		}

		res := s.d.Dispatch(ctx, cmd)
		for _, l := range res.Lines {
			s.println(l)
		}
		if res.Exit {
			return nil
		}
	}
}

// errHandled indica que readCommand ya informó al usuario y no hay nada que despachar.
var errHandled = errors.New("resultado ya mostrado")

// readCommand pide los argumentos de la acción.
func (s *Shell) readCommand(ctx context.Context, action Action) (Command, error) {
	cmd := Command{Action: action}
	var err error
	switch action {
	case ActionAddProduct:
		cmd.Product, err = s.readNewProduct()
	case ActionUpdateProduct:
		if cmd.ProductID, err = s.readInt("ID del producto a actualizar: "); err != nil {
			return cmd, err
		}
		cmd.Update, err = s.readUpdate()
	case ActionDeleteProduct:
		cmd.ProductID, err = s.readInt("ID del producto a eliminar: ")
	case ActionBillAddItem:
		if cmd.ProductID, err = s.readInt("ID del producto: "); err != nil {
			return cmd, err
		}
		// Igual que en caja: primero se confirma que el producto existe y luego se pide la cantidad.
		if res := s.d.Dispatch(ctx, Command{Action: ActionFindProduct, ProductID: cmd.ProductID}); !res.OK {
			for _, l := range res.Lines {
				s.println(l)
			}
			return cmd, errHandled
		}
		cmd.Quantity, err = s.readInt("Cantidad: ")
	}
	return cmd, err
}

func (s *Shell) readNewProduct() (dto.CreateProductRequest, error) {
	var in dto.CreateProductRequest
	var err error
	if in.ID, err = s.readInt("Ingrese ID: "); err != nil {
		return in, err
	}
	if in.Name, err = s.readName("Ingrese nombre: "); err != nil {
		return in, err
	}
	if in.Price, err = s.readDecimal("Ingrese precio: $"); err != nil {
		return in, err
	}
	if in.Quantity, err = s.readInt("Ingrese cantidad: "); err != nil {
		return in, err
	}
	kind, err := s.readInt("Tipo (1-Regular, 2-Con descuento): ")
	if err != nil {
		return in, err
	}
	if kind == 2 {
		in.Discounted = true
		if in.DiscountPercent, err = s.readDecimal("Ingrese descuento %: "); err != nil {
			return in, err
		}
	}
	return in, nil
}

func (s *Shell) readUpdate() (dto.UpdateProductRequest, error) {
	var in dto.UpdateProductRequest
	var err error
	if in.Name, err = s.readName("Nuevo nombre: "); err != nil {
		return in, err
	}
	if in.Price, err = s.readDecimal("Nuevo precio: $"); err != nil {
		return in, err
	}
	in.Quantity, err = s.readInt("Nueva cantidad: ")
	return in, err
}

func (s *Shell) readLine(prompt string) (string, error) {
	fmt.Fprint(s.out, prompt)
	if !s.in.Scan() {
		return "", io.EOF
	}
	return strings.TrimSpace(s.in.Text()), nil
}

// readName normaliza a NFC para que "Café" escrito con o sin acento combinado sea el mismo nombre.
func (s *Shell) readName(prompt string) (string, error) {
	line, err := s.readLine(prompt)
	if err != nil {
		return "", err
	}
	return norm.NFC.String(line), nil
}

func (s *Shell) readInt(prompt string) (int, error) {
	line, err := s.readLine(prompt)
	if err != nil {
		return 0, err
	}
	n, err := strconv.Atoi(line)
	if err != nil {
		return 0, errInvalidInput
	}
	return n, nil
}

func (s *Shell) readDecimal(prompt string) (decimal.Decimal, error) {
	line, err := s.readLine(prompt)
	if err != nil {
		return decimal.Zero, err
	}
	d, err := decimal.NewFromString(line)
	if err != nil {
		return decimal.Zero, errInvalidInput
	}
	return d, nil
}

func (s *Shell) println(line string) {
	fmt.Fprintln(s.out, line)
}
