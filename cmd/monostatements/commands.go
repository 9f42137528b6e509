package main

import (
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"
	"text/tabwriter"
	"time"

	"mono-statements/internal"
	"mono-statements/internal/service/statements"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

const dayLayout = "2006-01-02"

func newRatesCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "rates",
		Short: "Print the current monobank exchange rates",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := a.client()
			if err != nil {
				return err
			}
			if _, err := client.ExchangeRates(cmd.Context()); err != nil {
				return fmt.Errorf("exchange rates: %w", err)
			}
			return printRates(cmd.OutOrStdout(), client.Rates(), a.location())
		},
	}
}

func newAccountsCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "accounts",
		Short: "Print the client's accounts with balances",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := a.client()
			if err != nil {
				return err
			}
			svc := statements.New(client, nil, a.cfg.StatementsTTL, a.logger)

			info, err := svc.Refresh(cmd.Context())
			if err != nil {
				return err
			}
			return printAccounts(cmd.OutOrStdout(), info, svc)
		},
	}
}

func newStatementsCommand(a *app) *cobra.Command {
	var (
		accountID string
		fromRaw   string
		toRaw     string
		convertTo string
	)

	cmd := &cobra.Command{
		Use:   "statements",
		Short: "Print account statements converted to a currency",
		Long: "Print statements of one account, or of every account when --account is omitted.\n" +
			"Dates are YYYY-MM-DD in LOCATION or unix seconds. The window defaults to the last 30 days.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			loc := a.location()
			now := time.Now().In(loc)

			from, err := parseDay(fromRaw, loc, statements.DefaultFrom(now))
			if err != nil {
				return fmt.Errorf("--from: %w", err)
			}
			to, err := parseDay(toRaw, loc, time.Time{})
			if err != nil {
				return fmt.Errorf("--to: %w", err)
			}
			target, err := internal.NewCurrencyCode(convertTo)
			if err != nil {
				return fmt.Errorf("--convert-to: %w", err)
			}

			client, err := a.client()
			if err != nil {
				return err
			}
			svc := statements.New(client, nil, a.cfg.StatementsTTL, a.logger)

			info, err := svc.Refresh(cmd.Context())
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if accountID != "" {
				rows, err := svc.Rows(cmd.Context(), accountID, from, to, target)
				if err != nil {
					return err
				}
				return printRows(out, rows, loc)
			}

			all, err := svc.AllStatements(cmd.Context(), from, to)
			if err != nil {
				return err
			}
			for _, acc := range info.Accounts {
				fmt.Fprintf(out, "== %s (%s)\n", acc.Label(), acc.ID)
				if err := printRows(out, svc.BuildRows(acc, all[acc.ID], target), loc); err != nil {
					return err
				}
				fmt.Fprintln(out)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&accountID, "account", "", "account id; all accounts when empty")
	cmd.Flags().StringVar(&fromRaw, "from", "", "window start (default 30 days ago)")
	cmd.Flags().StringVar(&toRaw, "to", "", "window end (default now)")
	cmd.Flags().StringVar(&convertTo, "convert-to", "UAH", "currency to convert amounts and balance to")

	return cmd
}

func newConvertCommand(a *app) *cobra.Command {
	var (
		amountRaw string
		fromRaw   string
		toRaw     string
	)

	cmd := &cobra.Command{
		Use:   "convert",
		Short: "Convert an amount with the current monobank rates",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			amount, err := parseAmount(amountRaw)
			if err != nil {
				return fmt.Errorf("--amount: %w", err)
			}
			from, err := internal.NewCurrencyCode(fromRaw)
			if err != nil {
				return fmt.Errorf("--from: %w", err)
			}
			to, err := internal.NewCurrencyCode(toRaw)
			if err != nil {
				return fmt.Errorf("--to: %w", err)
			}

			client, err := a.client()
			if err != nil {
				return err
			}
			if _, err := client.ExchangeRates(cmd.Context()); err != nil {
				return fmt.Errorf("exchange rates: %w", err)
			}

			svc := statements.New(client, nil, a.cfg.StatementsTTL, a.logger)
			res := svc.Convert(amount, from, to)

			_, err = fmt.Fprintf(cmd.OutOrStdout(), "%s %s = %s %s\n", amount, from, res, to)
			return err
		},
	}

	cmd.Flags().StringVar(&amountRaw, "amount", "", "amount in major units, e.g. 100.50")
	cmd.Flags().StringVar(&fromRaw, "from", "", "source currency, alphabetic or numeric")
	cmd.Flags().StringVar(&toRaw, "to", "UAH", "target currency, alphabetic or numeric")
	_ = cmd.MarkFlagRequired("amount")
	_ = cmd.MarkFlagRequired("from")

	return cmd
}

func (a *app) location() *time.Location {
	loc, err := time.LoadLocation(a.cfg.Location)
	if err != nil {
		return time.Local
	}
	return loc
}

// parseDay accepts YYYY-MM-DD in loc or unix seconds. An empty value gives def.
func parseDay(s string, loc *time.Location, def time.Time) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return def, nil
	}
	if sec, err := strconv.ParseInt(s, 10, 64); err == nil {
		return time.Unix(sec, 0), nil
	}
	t, err := time.ParseInLocation(dayLayout, s, loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("want %s or unix seconds, got %q", dayLayout, s)
	}
	return t, nil
}

// parseAmount reads a major-unit decimal into minor units, dropping anything
// below a cent.
func parseAmount(s string) (internal.Amount, error) {
	d, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("parse %q: %w", s, err)
	}
	return internal.Amount(d.Shift(2).Truncate(0).IntPart()), nil
}

func printRates(w io.Writer, snap *internal.RateSnapshot, loc *time.Location) error {
	if snap.IsEmpty() {
		_, err := fmt.Fprintln(w, "no exchange rates")
		return err
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "fetched at %s\n", snap.FetchedAt.In(loc).Format(time.DateTime))
	fmt.Fprintln(tw, "A\tB\tDATE\tBUY\tSELL\tCROSS")
	for _, r := range snap.Rates {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\n",
			r.CurrencyCodeA, r.CurrencyCodeB, r.Date.In(loc).Format(time.DateTime),
			formatRate(r.RateBuy), formatRate(r.RateSell), formatRate(r.RateCross))
	}
	return tw.Flush()
}

func printAccounts(w io.Writer, info *internal.UserInfo, conv internal.Converter) error {
	accounts := make([]internal.Account, len(info.Accounts))
	copy(accounts, info.Accounts)
	sort.SliceStable(accounts, func(i, j int) bool {
		return accounts[i].CurrencyCode < accounts[j].CurrencyCode
	})

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "%s (%s)\n", info.Name, info.ClientID)
	fmt.Fprintln(tw, "ID\tACCOUNT\tBALANCE\tCREDIT LIMIT\tBALANCE UAH\tCASHBACK")
	for _, acc := range accounts {
		cashback := string(acc.CashbackType)
		if cashback == "" {
			cashback = "-"
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\n",
			acc.ID, acc.Label(), acc.Balance, acc.CreditLimit,
			conv.Convert(acc.Balance, acc.CurrencyCode, internal.UAH), cashback)
	}
	return tw.Flush()
}

func printRows(w io.Writer, rows []statements.Row, loc *time.Location) error {
	if len(rows) == 0 {
		_, err := fmt.Fprintln(w, "no statements")
		return err
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "TIME\tDESCRIPTION\tMCC\tAMOUNT %s\tAMOUNT UAH\tAMOUNT %s\tBALANCE %s\n",
		rows[0].Currency, rows[0].ConvertTo, rows[0].ConvertTo)
	for _, r := range rows {
		desc := r.Description
		if r.Hold {
			desc += " (hold)"
		}
		fmt.Fprintf(tw, "%s\t%s\t%d\t%s\t%s\t%s\t%s\n",
			r.Time.In(loc).Format(time.DateTime), desc, r.MCC, r.Amount, r.AmountUAH, r.Converted, r.Balance)
	}
	return tw.Flush()
}

func formatRate(f *float64) string {
	if f == nil {
		return "-"
	}
	return decimal.NewFromFloat(*f).String()
}
