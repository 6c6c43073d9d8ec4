package view

import (
	"context"
	"fmt"
	"time"
)

const dbTimeout = 5 * time.Second

// FormatAmount formats a monetary amount with two decimal places.
func FormatAmount(amount float64) string {
	return fmt.Sprintf("%.2f", amount)
}

// FormatDate formats a time.Time into YYYY-MM-DD.
func FormatDate(t time.Time) string {
	return t.Format("2006-01-02")
}

// FormatCPF renders a normalized CPF in the usual 000.000.000-00 shape.
func FormatCPF(cpf string) string {
	if len(cpf) != 11 {
		return cpf
	}

	return fmt.Sprintf("%s.%s.%s-%s", cpf[:3], cpf[3:6], cpf[6:9], cpf[9:])
}

// DbCtx returns a context with a standard timeout for database operations.
func DbCtx() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), dbTimeout)
}
