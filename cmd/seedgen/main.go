// seedgen generates a random demo catalog file for the food ordering API.
// It is a standalone fixture tool; the order engine never depends on it.
package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/liwei-dev/food-order-api/internal/models"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

var (
	outPath       string
	numProducts   int
	numGroups     int
	numCategories int
	seed          uint64
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "seedgen",
		Short: "Generate a random catalog JSON file for the food ordering API",
		RunE: func(cmd *cobra.Command, args []string) error {
			return run()
		},
		SilenceUsage: true,
	}

	rootCmd.Flags().StringVarP(&outPath, "out", "o", "catalog.json", "output file path")
	rootCmd.Flags().IntVar(&numProducts, "products", 100, "number of products to generate")
	rootCmd.Flags().IntVar(&numGroups, "option-groups", 20, "size of the option group pool")
	rootCmd.Flags().IntVar(&numCategories, "categories", 10, "number of categories")
	rootCmd.Flags().Uint64Var(&seed, "seed", 0, "random seed (0 means non-deterministic)")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func run() error {
	faker := gofakeit.New(seed)

	catalog := generateCatalog(faker)

	data, err := json.MarshalIndent(catalog, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal catalog: %w", err)
	}

	if err := os.WriteFile(outPath, data, 0o644); err != nil {
		return fmt.Errorf("write catalog: %w", err)
	}

	fmt.Printf("wrote %d products to %s\n", len(catalog.Products), outPath)
	return nil
}

// generateCatalog builds categories, a pool of option groups, and
// products that each reference a few groups from the pool
func generateCatalog(faker *gofakeit.Faker) models.Catalog {
	categories := make([]string, numCategories)
	for i := range categories {
		categories[i] = faker.Noun()
	}

	var optionID int64
	groups := make([]models.OptionGroup, numGroups)
	for i := range groups {
		minCount := faker.Number(0, 5)
		maxCount := faker.Number(minCount, 6)

		// Every group offers at least maxCount options so its bounds
		// are always satisfiable.
		options := make([]models.Option, faker.Number(max(maxCount, 1), 10))
		for j := range options {
			optionID++
			options[j] = models.Option{
				ID:    optionID,
				Title: faker.Noun(),
				Price: randomPrice(faker, 0, 10),
			}
		}

		groups[i] = models.OptionGroup{
			ID:       int64(i + 1),
			Title:    faker.Noun(),
			MinCount: minCount,
			MaxCount: &maxCount,
			Options:  options,
		}
	}

	products := make([]models.Product, numProducts)
	for i := range products {
		groupCount := faker.Number(1, min(5, numGroups))
		picked := make(map[int]bool)
		var productGroups []models.OptionGroup
		for len(productGroups) < groupCount {
			idx := faker.Number(0, numGroups-1)
			if picked[idx] {
				continue
			}
			picked[idx] = true
			productGroups = append(productGroups, groups[idx])
		}

		products[i] = models.Product{
			ID:           int64(i + 1),
			Title:        faker.Noun(),
			Description:  faker.Sentence(8),
			Price:        randomPrice(faker, 0, 100),
			Category:     categories[faker.Number(0, numCategories-1)],
			OptionGroups: productGroups,
		}
	}

	return models.Catalog{Products: products}
}

func randomPrice(faker *gofakeit.Faker, min, max float64) decimal.Decimal {
	return decimal.NewFromFloat(faker.Price(min, max)).Round(2)
}
