package pulllist

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Nombres deterministas de los documentos: la pull list siempre sobreescribe
// el mismo archivo; la factura deriva su nombre del cliente.
const pullListFilename = "pull_list.pdf"

// invoiceFilename deriva el nombre del PDF de factura a partir del nombre del
// cliente: transliteración a ASCII (NFD + remoción de diacríticos), espacios
// a guiones bajos y descarte de cualquier otro carácter no seguro para un
// nombre de archivo. Regenerar para el mismo cliente sobreescribe el anterior.
func invoiceFilename(customerName string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	ascii, _, err := transform.String(t, customerName)
	if err != nil {
		ascii = customerName
	}

	var b strings.Builder
	for _, r := range ascii {
		switch {
		case r == ' ':
			b.WriteByte('_')
		case r == '-' || r == '_':
			b.WriteRune(r)
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			b.WriteRune(r)
		}
	}
	name := b.String()
	if name == "" {
		name = "customer"
	}
	return "invoice_" + name + ".pdf"
}
