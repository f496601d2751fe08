package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/nexmo-community/nexmo-go/filter"
)

var (
	numberPattern string
	numberType    string
	whereExpr     string
)

// numbersCmd represents the numbers command group
var numbersCmd = &cobra.Command{
	Use:   "numbers",
	Short: "Inspect and search phone numbers",
}

var numbersListCmd = &cobra.Command{
	Use:   "list",
	Short: "List numbers owned by the account",
	Long: `List all numbers on the account. --pattern narrows the search on the
API side; --where applies a client-side predicate expression, e.g.
--where 'contains(Country, "GB") and daysSince(parseDate("2024-01-01")) > 0'.`,
	RunE: runNumbersList,
}

var numbersSearchCmd = &cobra.Command{
	Use:   "search <country>",
	Short: "Search numbers available for purchase",
	Args:  cobra.ExactArgs(1),
	RunE:  runNumbersSearch,
}

func init() {
	rootCmd.AddCommand(numbersCmd)
	numbersCmd.AddCommand(numbersListCmd)
	numbersCmd.AddCommand(numbersSearchCmd)

	numbersListCmd.Flags().StringVar(&numberPattern, "pattern", "", "server-side number pattern")
	numbersListCmd.Flags().StringVarP(&whereExpr, "where", "w", "", "client-side predicate expression")
	numbersSearchCmd.Flags().StringVar(&numberPattern, "pattern", "", "server-side number pattern")
	numbersSearchCmd.Flags().StringVar(&numberType, "type", "", "number type (landline, mobile-lvn, landline-toll-free)")
}

func runNumbersList(cmd *cobra.Command, args []string) error {
	f := filter.New()
	if numberPattern != "" {
		f.Set("pattern", numberPattern).SetInt("search_pattern", 1)
	}

	owned, err := client.Numbers.ListOwned(context.Background(), f)
	if err != nil {
		return err
	}

	pred, err := compileWhere()
	if err != nil {
		return err
	}

	shown := 0
	for _, n := range owned {
		if pred != nil {
			match, err := pred.Match(map[string]any{
				"Country":  n.Country,
				"MSISDN":   n.MSISDN,
				"Type":     n.Type,
				"Features": n.Features,
			})
			if err != nil {
				return err
			}
			if !match {
				continue
			}
		}
		shown++
		fmt.Printf("• %s (%s, %s) [%s]\n", n.MSISDN, n.Country, n.Type, strings.Join(n.Features, ","))
	}

	fmt.Printf("\n%d of %d numbers shown\n", shown, len(owned))
	return nil
}

func runNumbersSearch(cmd *cobra.Command, args []string) error {
	f := filter.New()
	if numberPattern != "" {
		f.Set("pattern", numberPattern).SetInt("search_pattern", 1)
	}
	if numberType != "" {
		f.Set("type", numberType)
	}

	available, err := client.Numbers.Search(context.Background(), strings.ToUpper(args[0]), f)
	if err != nil {
		return err
	}

	if len(available) == 0 {
		fmt.Println("No numbers available matching the criteria.")
		return nil
	}

	for _, n := range available {
		fmt.Printf("• %s (%s, %s) cost %s [%s]\n", n.MSISDN, n.Country, n.Type, n.Cost, strings.Join(n.Features, ","))
	}
	return nil
}

// compileWhere compiles the --where flag into a predicate, or returns nil
// when the flag is unset.
func compileWhere() (*filter.Predicate, error) {
	if whereExpr == "" {
		return nil, nil
	}
	pred, err := filter.Compile(whereExpr)
	if err != nil {
		return nil, fmt.Errorf("invalid --where expression: %w", err)
	}
	return pred, nil
}
