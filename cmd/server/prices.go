package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/junglerando/rando-api/internal/pkg/rng"
	"github.com/junglerando/rando-api/internal/placement/prices"
)

var (
	priceWeight string
	priceSeed   int64
)

var pricesCmd = &cobra.Command{
	Use:   "prices",
	Short: "Print the price table a weight and seed produce",
	Long: `Draw a price table the same way generation does and print it as JSON.

  rando-api prices --weight medium --seed 1234567`,
	Args: cobra.NoArgs,
	RunE: printPrices,
}

func init() {
	pricesCmd.Flags().StringVar(&priceWeight, "weight", string(prices.WeightMedium), "Price weight (vanilla, free, low, medium, high)")
	pricesCmd.Flags().Int64Var(&priceSeed, "seed", 0, "Seed for the price draw")
}

func printPrices(cmd *cobra.Command, args []string) error {
	weight, err := prices.ParseWeight(priceWeight)
	if err != nil {
		return err
	}

	table, err := prices.RandomizePrices(weight, rng.New(priceSeed))
	if err != nil {
		return fmt.Errorf("failed to randomize prices: %w", err)
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(table)
}
