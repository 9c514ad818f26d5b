package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dcode-github/property_valuation/valuation"
)

func newLocationsCmd() *cobra.Command {
	var city string
	cmd := &cobra.Command{
		Use:   "locations",
		Short: "Rank the neighborhoods of a city by price per sq ft",
		RunE: func(cmd *cobra.Command, args []string) error {
			c, _ := valuation.ParseCity(city)
			ranked := engine().RankedLocationFactors(c)

			out := cmd.OutOrStdout()
			if jsonMode {
				return printJSON(out, ranked)
			}
			for i, lf := range ranked {
				fmt.Fprintf(out, "%2d. %-22s %8.0f\n", i+1, lf.Name, lf.Value)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&city, "city", string(valuation.DefaultCity), "city")
	return cmd
}

func newTrendsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "trends",
		Short: "Print the historical average price series",
		RunE: func(cmd *cobra.Command, args []string) error {
			series := valuation.PriceTrend()

			out := cmd.OutOrStdout()
			if jsonMode {
				return printJSON(out, series)
			}
			fmt.Fprintln(out, series.Name)
			for i, year := range series.Labels {
				fmt.Fprintf(out, "  %d  %8.0f\n", year, series.Values[i])
			}
			return nil
		},
	}
}

func newImportanceCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "importance",
		Short: "Print the feature importance weights",
		RunE: func(cmd *cobra.Command, args []string) error {
			weights := valuation.FeatureImportance()

			out := cmd.OutOrStdout()
			if jsonMode {
				return printJSON(out, weights)
			}
			for _, fw := range weights {
				bar := strings.Repeat("█", int(fw.Weight*50+0.5))
				fmt.Fprintf(out, "  %-14s %s %.0f%%\n", fw.Feature, bar, fw.Weight*100)
			}
			return nil
		},
	}
}

type optionSet struct {
	Cities        []valuation.City            `json:"cities"`
	Neighborhoods map[valuation.City][]string `json:"neighborhoods"`
	PropertyTypes []valuation.PropertyType    `json:"propertyTypes"`
	Furnishing    []valuation.Furnishing      `json:"furnishing"`
	Amenities     []valuation.Amenity         `json:"amenities"`
}

func newOptionsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "options",
		Short: "List the accepted cities, neighborhoods and categories",
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := optionSet{
				Cities:        valuation.Cities(),
				Neighborhoods: make(map[valuation.City][]string),
				PropertyTypes: valuation.PropertyTypes(),
				Furnishing:    valuation.FurnishingOptions(),
				Amenities:     valuation.AmenityCatalog(),
			}
			for _, c := range opts.Cities {
				opts.Neighborhoods[c] = valuation.Neighborhoods(c)
			}

			out := cmd.OutOrStdout()
			if jsonMode {
				return printJSON(out, opts)
			}
			for _, c := range opts.Cities {
				fmt.Fprintf(out, "%s: %s\n", c, strings.Join(opts.Neighborhoods[c], ", "))
			}
			fmt.Fprintf(out, "Property types: %v\n", opts.PropertyTypes)
			fmt.Fprintf(out, "Furnishing: %v\n", opts.Furnishing)
			fmt.Fprintf(out, "Amenities: %v\n", opts.Amenities)
			return nil
		},
	}
}
