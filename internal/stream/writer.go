package stream

import (
	"encoding/csv"
	"io"
	"strconv"

	"github.com/ruralpay/txengine/internal/models"
)

// WriteSummary emits the final account projection as CSV: one row per
// account, balances rounded to the given number of fractional digits with
// banker's rounding. Rounding happens only here, at the output boundary;
// internal arithmetic stays exact.
func WriteSummary(w io.Writer, accounts []*models.Account, precision int) error {
	cw := csv.NewWriter(w)

	if err := cw.Write([]string{"client", "available", "held", "total", "locked"}); err != nil {
		return err
	}

	for _, acc := range accounts {
		row := []string{
			strconv.FormatUint(uint64(acc.ClientID), 10),
			acc.Available.StringFixedBank(int32(precision)),
			acc.Held.StringFixedBank(int32(precision)),
			acc.Total.StringFixedBank(int32(precision)),
			strconv.FormatBool(acc.Locked),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}
