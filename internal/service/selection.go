package service

import "github.com/liwei-dev/food-order-api/internal/models"

// selectedOption is one chosen option together with the group it belongs
// to, as matched by validateSelections
type selectedOption struct {
	Option models.Option
	Group  models.OptionGroup
}

// validateSelections checks the chosen option ids against every option
// group of the product and returns the matched {option, group} pairs in
// catalog order (group order, then option order within the group).
//
// For each group, the number of chosen ids belonging to that group must
// fall within [MinCount, MaxCount]; a violation fails the whole call with
// a SelectionCountError. Chosen ids that belong to none of the product's
// groups are dropped silently: they carry no price and no snapshot.
func validateSelections(product models.Product, chosen map[int64]bool) ([]selectedOption, error) {
	var selected []selectedOption

	for _, group := range product.OptionGroups {
		matched := 0
		for _, option := range group.Options {
			if !chosen[option.ID] {
				continue
			}
			matched++
			selected = append(selected, selectedOption{Option: option, Group: group})
		}

		if matched < group.MinCount || (group.MaxCount != nil && matched > *group.MaxCount) {
			return nil, &SelectionCountError{
				ProductID:  product.ID,
				GroupID:    group.ID,
				GroupTitle: group.Title,
				Selected:   matched,
				MinCount:   group.MinCount,
				MaxCount:   group.MaxCount,
			}
		}
	}

	return selected, nil
}

// optionIDSet collapses the requested option ids into a set, so
// duplicated ids count once toward group bounds
func optionIDSet(ids []int64) map[int64]bool {
	set := make(map[int64]bool, len(ids))
	for _, id := range ids {
		set[id] = true
	}
	return set
}
