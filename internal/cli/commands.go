package cli

import (
	"context"
	"flag"
	"fmt"

	"github.com/benx421/privacy-go/client"
	"github.com/benx421/privacy-go/models"
)

type listFlags struct {
	page      int
	pageSize  int
	begin     string
	end       string
	cardToken string
}

func (l *listFlags) register(fs *flag.FlagSet) {
	fs.IntVar(&l.page, "page", 1, "page number")
	fs.IntVar(&l.pageSize, "page-size", 50, "entries per page (max 1000)")
	fs.StringVar(&l.begin, "begin", "", "only entries created on or after this YYYY-MM-DD date")
	fs.StringVar(&l.end, "end", "", "only entries created on or before this YYYY-MM-DD date")
	fs.StringVar(&l.cardToken, "card-token", "", "only entries for this card")
}

func (c *command) listCards(ctx context.Context, args []string) error {
	fs := c.newFlagSet("cards")
	var lf listFlags
	lf.register(fs)
	if err := parseFlags(fs, args); err != nil {
		return err
	}
	set := explicitFlags(fs)

	doc, err := c.client.ListCards(ctx, &client.ListCardsParams{
		Page:      optional(set, "page", lf.page),
		PageSize:  optional(set, "page-size", lf.pageSize),
		Begin:     optional(set, "begin", lf.begin),
		End:       optional(set, "end", lf.end),
		CardToken: optional(set, "card-token", lf.cardToken),
	})
	if err != nil {
		return err
	}
	if c.raw {
		return c.printRaw(doc)
	}

	page, err := models.DecodeCardPage(doc)
	if err != nil {
		return err
	}
	return writeCards(c.stdout, page.Data, &page)
}

func (c *command) listTransactions(ctx context.Context, args []string) error {
	fs := c.newFlagSet("transactions")
	var lf listFlags
	lf.register(fs)
	status := fs.String("status", string(models.ApprovalStatusAll), "approvals, declines or all")
	txnToken := fs.String("transaction-token", "", "only this transaction")
	if err := parseFlags(fs, args); err != nil {
		return err
	}
	set := explicitFlags(fs)

	doc, err := c.client.ListTransactions(ctx, models.ApprovalStatus(*status), &client.ListTransactionsParams{
		Page:             optional(set, "page", lf.page),
		PageSize:         optional(set, "page-size", lf.pageSize),
		Begin:            optional(set, "begin", lf.begin),
		End:              optional(set, "end", lf.end),
		CardToken:        optional(set, "card-token", lf.cardToken),
		TransactionToken: optional(set, "transaction-token", *txnToken),
	})
	if err != nil {
		return err
	}
	if c.raw {
		return c.printRaw(doc)
	}

	page, err := models.DecodeTransactionPage(doc)
	if err != nil {
		return err
	}
	return writeTransactions(c.stdout, page)
}

type cardFlags struct {
	memo       string
	spendLimit amountFlag
	duration   string
	state      string
}

func (f *cardFlags) register(fs *flag.FlagSet) {
	fs.StringVar(&f.memo, "memo", "", "card memo")
	fs.Var(&f.spendLimit, "spend-limit", "spend limit in major units, e.g. 25.00")
	fs.StringVar(&f.duration, "duration", "", "spend limit duration: TRANSACTION, MONTHLY, ANNUALLY or FOREVER")
	fs.StringVar(&f.state, "state", "", "card state")
}

func (c *command) createCard(ctx context.Context, args []string) error {
	fs := c.newFlagSet("create-card")
	cardType := fs.String("type", "", "SINGLE_USE, MERCHANT_LOCKED or UNLOCKED (required)")
	var cf cardFlags
	cf.register(fs)
	if err := parseFlags(fs, args); err != nil {
		return err
	}
	set := explicitFlags(fs)
	if err := required(fs, set, "type"); err != nil {
		return err
	}

	doc, err := c.client.CreateCard(ctx, client.CreateCardParams{
		Type:               models.CardType(*cardType),
		Memo:               optional(set, "memo", cf.memo),
		SpendLimit:         optional(set, "spend-limit", cf.spendLimit.cents),
		SpendLimitDuration: optional(set, "duration", models.SpendLimitDuration(cf.duration)),
		State:              optional(set, "state", models.CardState(cf.state)),
	})
	if err != nil {
		return err
	}
	return c.printCard(doc)
}

func (c *command) updateCard(ctx context.Context, args []string) error {
	fs := c.newFlagSet("update-card")
	token := fs.String("token", "", "card token (required)")
	var cf cardFlags
	cf.register(fs)
	if err := parseFlags(fs, args); err != nil {
		return err
	}
	set := explicitFlags(fs)
	if err := required(fs, set, "token"); err != nil {
		return err
	}

	doc, err := c.client.UpdateCard(ctx, *token, client.UpdateCardParams{
		State:              optional(set, "state", models.CardState(cf.state)),
		Memo:               optional(set, "memo", cf.memo),
		SpendLimit:         optional(set, "spend-limit", cf.spendLimit.cents),
		SpendLimitDuration: optional(set, "duration", models.SpendLimitDuration(cf.duration)),
	})
	if err != nil {
		return err
	}
	return c.printCard(doc)
}

func (c *command) printCard(doc models.Document) error {
	if c.raw {
		return c.printRaw(doc)
	}

	card, err := models.DecodeCard(doc)
	if err != nil {
		return err
	}
	return writeCards(c.stdout, []models.Card{card}, nil)
}

func (c *command) simulate(ctx context.Context, name string, args []string) error {
	fs := c.newFlagSet("simulate " + name)
	var amount amountFlag
	fs.Var(&amount, "amount", "amount in major units, e.g. 12.50")

	switch name {
	case "authorize", "return":
		descriptor := fs.String("descriptor", "", "merchant descriptor (required)")
		pan := fs.String("pan", "", "card number (required)")
		if err := parseFlags(fs, args); err != nil {
			return err
		}
		if err := required(fs, explicitFlags(fs), "descriptor", "pan", "amount"); err != nil {
			return err
		}

		simulateFn := c.client.SimulateAuthorization
		if name == "return" {
			simulateFn = c.client.SimulateReturn
		}
		token, err := simulateFn(ctx, *descriptor, *pan, amount.cents)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(c.stdout, token)
		return err

	case "void", "clearing":
		token := fs.String("token", "", "transaction token (required)")
		if err := parseFlags(fs, args); err != nil {
			return err
		}
		if err := required(fs, explicitFlags(fs), "token"); err != nil {
			return err
		}

		simulateFn := c.client.SimulateVoid
		if name == "clearing" {
			simulateFn = c.client.SimulateClearing
		}
		if err := simulateFn(ctx, *token, amount.cents); err != nil {
			return err
		}
		_, err := fmt.Fprintf(c.stdout, "%s %s: ok\n", name, *token)
		return err

	default:
		fmt.Fprintf(c.stderr, "unknown simulation %q (want authorize, void, clearing or return)\n", name)
		return errUsage
	}
}
