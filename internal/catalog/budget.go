package catalog

import (
	"strconv"
	"strings"

	"github.com/proraahi-core/server/internal/agent/model"
)

const (
	DefaultBaseRate = 3000.0
	DefaultTripDays = 5
	Currency        = "INR"
)

var budgetIncludes = []string{"accommodation", "meals", "activities", "local transport"}

// EstimateBudget prices a trip at baseRate per day. "luxury" doubles the rate, "budget"
// takes 60% of it; luxury wins when both are present. The day count is the leading
// integer of duration, DefaultTripDays when there is none.
func EstimateBudget(duration string, interests []string, baseRate float64) model.Budget {
	if baseRate <= 0 {
		baseRate = DefaultBaseRate
	}
	days := LeadingDays(duration)
	if days <= 0 {
		days = DefaultTripDays
	}

	multiplier := 1.0
	switch {
	case hasInterest(interests, "luxury"):
		multiplier = 2.0
	case hasInterest(interests, "budget"):
		multiplier = 0.6
	}

	perDay := baseRate * multiplier
	return model.Budget{
		TotalEstimated: perDay * float64(days),
		PerDay:         perDay,
		Currency:       Currency,
		Includes:       append([]string(nil), budgetIncludes...),
	}
}

// LeadingDays parses the integer prefix of the first token of a duration such as
// "3 days". It returns 0 when there is none.
func LeadingDays(s string) int {
	fields := strings.Fields(s)
	if len(fields) == 0 {
		return 0
	}
	tok := fields[0]
	end := 0
	for end < len(tok) && tok[end] >= '0' && tok[end] <= '9' {
		end++
	}
	n, err := strconv.Atoi(tok[:end])
	if err != nil {
		return 0
	}
	return n
}

func hasInterest(interests []string, want string) bool {
	for _, i := range interests {
		if strings.EqualFold(strings.TrimSpace(i), want) {
			return true
		}
	}
	return false
}
