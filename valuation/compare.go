package valuation

import (
	"errors"
	"fmt"
)

// CompareItem is one candidate in a side-by-side comparison.
type CompareItem struct {
	Label      string             `json:"label"`
	Descriptor PropertyDescriptor `json:"descriptor"`
}

type ComparedValuation struct {
	Label        string             `json:"label"`
	Descriptor   PropertyDescriptor `json:"descriptor"`
	Result       ValuationResult    `json:"result"`
	PricePerSqFt float64            `json:"pricePerSqFt"`
}

// Comparison holds the estimates in input order. Cheapest, MostExpensive and
// BestValue index into Items; ties go to the earlier item.
type Comparison struct {
	Items         []ComparedValuation `json:"items"`
	Cheapest      int                 `json:"cheapest"`
	MostExpensive int                 `json:"mostExpensive"`
	BestValue     int                 `json:"bestValue"`
}

// Compare estimates every item. All descriptors are validated before the
// first estimate, so an error never leaves a partial comparison.
func (e *Engine) Compare(items []CompareItem) (*Comparison, error) {
	if len(items) == 0 {
		return nil, invalid("items", "must not be empty")
	}
	for i, it := range items {
		if err := Validate(it.Descriptor); err != nil {
			var ie *InvalidInputError
			if errors.As(err, &ie) {
				return nil, invalid(fmt.Sprintf("items[%d].%s", i, ie.Field), ie.Reason)
			}
			return nil, err
		}
	}

	cmp := &Comparison{Items: make([]ComparedValuation, 0, len(items))}
	for i, it := range items {
		res, err := e.Estimate(it.Descriptor)
		if err != nil {
			return nil, err
		}
		label := it.Label
		if label == "" {
			label = fmt.Sprintf("Property %d", i+1)
		}
		cmp.Items = append(cmp.Items, ComparedValuation{
			Label:        label,
			Descriptor:   it.Descriptor,
			Result:       res,
			PricePerSqFt: float64(res.Price) / it.Descriptor.SizeSqFt,
		})

		if res.Price < cmp.Items[cmp.Cheapest].Result.Price {
			cmp.Cheapest = i
		}
		if res.Price > cmp.Items[cmp.MostExpensive].Result.Price {
			cmp.MostExpensive = i
		}
		if cmp.Items[i].PricePerSqFt < cmp.Items[cmp.BestValue].PricePerSqFt {
			cmp.BestValue = i
		}
	}
	return cmp, nil
}
