package commands

import "fmt"

// Human-readable entity numbers are a zero-padded sequence value behind a
// kind prefix. The sequence increments inside the creating transaction, so
// numbers are unique and a rolled-back creation returns its draw. Gaps can
// remain after a failed commit.

func formatTripNumber(n int64) string {
	return fmt.Sprintf("TRP-%06d", n)
}

func formatServiceLogNumber(n int64) string {
	return fmt.Sprintf("SRV-%06d", n)
}

func formatExpenseLogNumber(n int64) string {
	return fmt.Sprintf("EXP-%06d", n)
}
