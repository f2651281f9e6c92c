package card

import (
	"encoding/csv"
	"io"
	"strings"

	"git.thinkinpower.net/bingen/mod"
	"github.com/pkg/errors"
)

var csvHeader = []string{"Card Number", "CVV", "Expiration", "Type"}

// WriteCSV writes records as number,cvv,MM/YY,network rows under a header.
// Numbers are written ungrouped.
func WriteCSV(w io.Writer, records []mod.CardRecord) error {
	writer := csv.NewWriter(w)
	if err := writer.Write(csvHeader); err != nil {
		return errors.Wrap(err, "write csv header")
	}
	for _, r := range records {
		row := []string{
			r.Number,
			r.Cvv,
			FormatExpiration(r.ExpirationMonth, r.ExpirationYear),
			string(r.Type),
		}
		if err := writer.Write(row); err != nil {
			return errors.Wrapf(err, "write csv row %s", Mask(r.Number))
		}
	}
	writer.Flush()
	return errors.Wrap(writer.Error(), "flush csv")
}

// PipeLine renders number|cvv|MM/YY.
func PipeLine(r mod.CardRecord) string {
	return strings.Join([]string{r.Number, r.Cvv, FormatExpiration(r.ExpirationMonth, r.ExpirationYear)}, "|")
}

func WritePipe(w io.Writer, records []mod.CardRecord) error {
	for _, r := range records {
		if _, err := io.WriteString(w, PipeLine(r)+"\n"); err != nil {
			return errors.Wrap(err, "write pipe line")
		}
	}
	return nil
}
