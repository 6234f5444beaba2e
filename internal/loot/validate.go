package loot

import "fmt"

func validateBudget(budget int) error {
	if budget <= 0 {
		return fmt.Errorf("%w: budget must be a positive integer, got %d", ErrInvalidArgument, budget)
	}
	return nil
}

func validateTrials(trials int) error {
	if trials <= 0 {
		return fmt.Errorf("%w: trials must be a positive integer, got %d", ErrInvalidArgument, trials)
	}
	return nil
}
