package service

import (
	"fmt"
	"strings"
)

const (
	conceptWidth = 56
	amountWidth  = 20
)

// Render lays the ticket out as plain text in the same order as the printed ticket.
func Render(t *Ticket, money *Money) string {
	var b strings.Builder
	rule := strings.Repeat("=", conceptWidth+amountWidth+1)

	fmt.Fprintln(&b, rule)
	fmt.Fprintln(&b, "FreezeStore")
	fmt.Fprintln(&b, "Sistema de Gestión de Bodega de Congelados")
	fmt.Fprintln(&b, rule)
	fmt.Fprintln(&b)

	fmt.Fprintln(&b, "TICKET DE COBRO")
	fmt.Fprintf(&b, "Folio: %s\n", t.Folio)
	fmt.Fprintf(&b, "Fecha: %s\n", t.IssuedAt)
	fmt.Fprintln(&b)

	fmt.Fprintln(&b, "DATOS DEL CLIENTE")
	fmt.Fprintf(&b, "Cliente: %s\n", t.Client.Name)
	fmt.Fprintf(&b, "RFC: %s\n", t.Client.RFC)
	fmt.Fprintf(&b, "Teléfono: %s\n", t.Client.Phone)
	fmt.Fprintf(&b, "Email: %s\n", t.Client.Email)
	fmt.Fprintln(&b)

	fmt.Fprintln(&b, "DETALLES DE LA RESERVACIÓN")
	fmt.Fprintf(&b, "Fecha Inicio: %s\n", t.StartDate)
	fmt.Fprintf(&b, "Fecha Fin: %s\n", t.EndDate)
	fmt.Fprintf(&b, "Días Totales: %d\n", t.TotalDays)
	fmt.Fprintf(&b, "Espacios Utilizados: %s\n", t.Spaces)
	fmt.Fprintln(&b)

	line := func(concept, amount string) {
		fmt.Fprintf(&b, "%-*s %*s\n", conceptWidth, concept, amountWidth, amount)
	}
	line("CONCEPTO", "IMPORTE")
	for _, item := range t.LineItems {
		line(item.Concept, money.Format(item.Amount))
	}
	fmt.Fprintln(&b)
	line("SUBTOTAL:", money.Format(t.Subtotal))
	line(t.TaxLabel+":", money.Format(t.Tax))
	line("TOTAL:", money.Format(t.Total)+" "+t.Currency)
	fmt.Fprintln(&b)

	fmt.Fprintln(&b, "Gracias por su preferencia")
	fmt.Fprintln(&b, "FreezeStore - Sistema de Gestión de Bodega de Congelados")
	return b.String()
}
