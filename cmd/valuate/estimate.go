package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dcode-github/property_valuation/models"
	"github.com/dcode-github/property_valuation/valuation"
)

func newEstimateCmd() *cobra.Command {
	var (
		city, neighborhood, propertyType, furnishing string
		amenities                                    []string
		d                                            valuation.PropertyDescriptor
	)

	cmd := &cobra.Command{
		Use:   "estimate",
		Short: "Estimate the price of one property",
		Example: `  valuate estimate --city Mumbai --neighborhood Colaba --size 1000 \
    --bedrooms 2 --bathrooms 2 --age 5 --furnishing Semi-Furnished \
    --amenity Parking --amenity Lift --amenity Security`,
		RunE: func(cmd *cobra.Command, args []string) error {
			d.City, _ = valuation.ParseCity(city)
			d.Neighborhood = neighborhood
			d.PropertyType, _ = valuation.ParsePropertyType(propertyType)
			d.Furnishing, _ = valuation.ParseFurnishing(furnishing)
			d.Amenities = d.Amenities[:0]
			for _, a := range amenities {
				amenity, ok := valuation.ParseAmenity(a)
				if !ok {
					fmt.Fprintf(cmd.ErrOrStderr(), "warning: %q is not in the amenity catalog\n", a)
				}
				d.Amenities = append(d.Amenities, amenity)
			}

			res, err := engine().Estimate(d)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if jsonMode {
				return printJSON(out, models.NewEstimateResponse(res))
			}
			b := res.Breakdown
			fmt.Fprintf(out, "Estimated price : %s (%d)\n", valuation.FormatPrice(res.Price), res.Price)
			fmt.Fprintf(out, "Confidence      : %.0f%% (%s)\n", res.Confidence*100, valuation.ConfidenceLabel(res.Confidence))
			fmt.Fprintf(out, "Base price      : %.0f/sq ft (rate %.0f x location %.2f)\n", b.BasePrice, b.BaseRate, b.LocationMultiplier)
			fmt.Fprintf(out, "Price per sq ft : %.0f\n", b.PricePerSqFt)
			fmt.Fprintf(out, "Factors         : type %.2f  furnishing %.2f  age %.4f  amenities %.2f  bedrooms %.2f  bathrooms %.2f\n",
				b.PropertyTypeFactor, b.FurnishingFactor, b.AgeFactor, b.AmenitiesFactor, b.BedroomsFactor, b.BathroomsFactor)
			return nil
		},
	}

	f := cmd.Flags()
	f.StringVar(&city, "city", string(valuation.DefaultCity), "city")
	f.StringVar(&neighborhood, "neighborhood", "", "neighborhood within the city")
	f.StringVar(&propertyType, "type", string(valuation.Apartment), "property type")
	f.Float64Var(&d.SizeSqFt, "size", 1000, "built-up area in sq ft")
	f.IntVar(&d.Bedrooms, "bedrooms", 2, "number of bedrooms")
	f.IntVar(&d.Bathrooms, "bathrooms", 2, "number of bathrooms")
	f.Float64Var(&d.AgeYears, "age", 0, "years since construction")
	f.StringVar(&furnishing, "furnishing", string(valuation.Unfurnished), "furnishing status")
	f.StringArrayVar(&amenities, "amenity", nil, "amenity (repeatable)")
	return cmd
}
