package cli

import (
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	"github.com/benx421/privacy-go/models"
	"github.com/shopspring/decimal"
)

// amountFlag parses a major unit amount such as 12.50 into cents
type amountFlag struct {
	cents models.Cents
}

func (a *amountFlag) String() string {
	return a.cents.String()
}

func (a *amountFlag) Set(value string) error {
	cents, err := parseAmount(value)
	if err != nil {
		return err
	}
	a.cents = cents
	return nil
}

var hundred = decimal.NewFromInt(100)

func parseAmount(value string) (models.Cents, error) {
	d, err := decimal.NewFromString(value)
	if err != nil {
		return 0, fmt.Errorf("invalid amount %q", value)
	}
	if d.IsNegative() {
		return 0, fmt.Errorf("invalid amount %q: must not be negative", value)
	}

	cents := d.Mul(hundred)
	if !cents.Equal(cents.Truncate(0)) {
		return 0, fmt.Errorf("invalid amount %q: at most two decimal places", value)
	}
	return models.Cents(cents.IntPart()), nil
}

func formatTime(t time.Time) string {
	if t.IsZero() {
		return "-"
	}
	return t.UTC().Format(time.RFC3339)
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

func writeCards(w io.Writer, cards []models.Card, page *models.Page[models.Card]) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "TOKEN\tTYPE\tSTATE\tLAST FOUR\tEXP\tSPEND LIMIT\tDURATION\tMEMO")
	for _, card := range cards {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s/%s\t%s\t%s\t%s\n",
			card.Token,
			card.Type,
			card.State,
			card.LastFour,
			card.ExpMonth,
			card.ExpYear,
			card.SpendLimit,
			orDash(string(card.SpendLimitDuration)),
			orDash(card.Memo),
		)
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	if page != nil {
		return writePageFooter(w, page.Page, page.TotalPages, page.TotalEntries)
	}
	return nil
}

func writeTransactions(w io.Writer, page models.Page[models.Transaction]) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "TOKEN\tCREATED\tSTATUS\tRESULT\tAMOUNT\tSETTLED\tMERCHANT\tCARD")
	for _, txn := range page.Data {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
			txn.Token,
			formatTime(txn.Created),
			txn.Status,
			txn.Result,
			txn.Amount,
			txn.SettledAmount,
			orDash(txn.Merchant.Descriptor),
			orDash(txn.Card.LastFour),
		)
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	return writePageFooter(w, page.Page, page.TotalPages, page.TotalEntries)
}

func writePageFooter(w io.Writer, page, totalPages, totalEntries int64) error {
	_, err := fmt.Fprintf(w, "page %d of %d (%d entries)\n", page, totalPages, totalEntries)
	return err
}
