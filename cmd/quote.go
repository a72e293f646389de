package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"listing-app/domain"
	"listing-app/templates"
)

var (
	quoteRate     float64
	quoteCheckIn  string
	quoteCheckOut string
	quoteFee      float64
)

var quoteCmd = &cobra.Command{
	Use:   "quote",
	Short: "Print the price of a stay without calling the API",
	Example: `  listing-app quote --rate 100 --check-in 2024-08-20 --check-out 2024-08-23
  listing-app quote --rate 80 --check-in 2024-03-09 --check-out 2024-03-11 --fee 0`,
	RunE: runQuote,
}

func init() {
	quoteCmd.Flags().Float64Var(&quoteRate, "rate", 0, "nightly rate")
	quoteCmd.Flags().StringVar(&quoteCheckIn, "check-in", "", "check-in date (YYYY-MM-DD)")
	quoteCmd.Flags().StringVar(&quoteCheckOut, "check-out", "", "check-out date (YYYY-MM-DD)")
	quoteCmd.Flags().Float64Var(&quoteFee, "fee", 65, "booking fee added to the subtotal")
	_ = quoteCmd.MarkFlagRequired("rate")
	_ = quoteCmd.MarkFlagRequired("check-in")
	_ = quoteCmd.MarkFlagRequired("check-out")
}

func runQuote(cmd *cobra.Command, args []string) error {
	if quoteRate <= 0 {
		return fmt.Errorf("rate must be positive")
	}

	q, err := domain.QuoteStay(quoteCheckIn, quoteCheckOut, quoteRate)
	if err != nil {
		return err
	}
	if !q.Valid() {
		return &domain.ValidationError{Message: domain.MsgInvalidDates}
	}

	summary := domain.NewOrderSummary(domain.Property{}, q, quoteFee)
	policy := domain.NewCancellationPolicy(q.CheckIn)

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "%s × %s = %s\n", templates.Money(q.Rate), templates.NightsLabel(q.Nights), templates.Money(q.Total))
	fmt.Fprintf(out, "Booking Fee: %s\n", templates.Money(summary.BookingFee))
	fmt.Fprintf(out, "Grand Total: %s\n", templates.Money(summary.GrandTotal))
	fmt.Fprintln(out, policy.Summary())
	return nil
}
