// README: Keyword intent classifier; ordered substring rules, first match wins.
package chat

import "strings"

// Intent is a fixed category produced by classification; it selects the
// canned reply returned to the user.
type Intent string

const (
	IntentBudgetLow     Intent = "budget_low"
	IntentWhereTravel   Intent = "where_travel"
	IntentEatSafe       Intent = "eat_safe"
	IntentTransportBest Intent = "transport_best"
	IntentGirlsSafety   Intent = "girls_safety"
	IntentPacking       Intent = "packing"
	IntentCostReduce    Intent = "cost_reduce"
	IntentConfusingPlan Intent = "confusing_plan"
	IntentHiddenPlaces  Intent = "hidden_places"
	IntentLostItem      Intent = "lost_item"
	IntentScared        Intent = "scared"
	IntentAdventures    Intent = "adventures"
	IntentGeneral       Intent = "general"
)

// rule matches when any keyword is present and, if set, any required term too.
type rule struct {
	intent   Intent
	keywords []string
	requires []string
}

// Rule order is a contract: the first matching rule wins, so earlier rules
// deliberately shadow later ones for inputs that hit both (budget beats
// girls_safety, girls_safety beats scared). Do not reorder.
var rules = []rule{
	{intent: IntentBudgetLow, keywords: []string{"budget", "low money", "cheap"}},
	{intent: IntentWhereTravel, keywords: []string{"where should i travel", "go where", "destination"}},
	{intent: IntentEatSafe, keywords: []string{"eat", "food", "restaurant", "safe to eat"}},
	{intent: IntentTransportBest, keywords: []string{"transport", "bus", "train", "cab"}},
	{intent: IntentGirlsSafety, keywords: []string{"girl", "women", "female"}, requires: []string{"safe"}},
	{intent: IntentPacking, keywords: []string{"pack", "packing", "luggage"}},
	{intent: IntentCostReduce, keywords: []string{"reduce cost", "save money", "cost down"}},
	{intent: IntentConfusingPlan, keywords: []string{"confusing", "fix plan", "improve itinerary"}},
	{intent: IntentHiddenPlaces, keywords: []string{"hidden", "offbeat", "secret"}},
	{intent: IntentLostItem, keywords: []string{"lost", "missing", "misplaced"}},
	{intent: IntentScared, keywords: []string{"scared", "unsafe", "help me"}},
	{intent: IntentAdventures, keywords: []string{"adventure", "activities"}},
}

// Classify lowercases the input and returns the first matching rule's intent,
// or IntentGeneral when nothing matches.
func Classify(text string) Intent {
	t := strings.ToLower(text)
	for _, r := range rules {
		if !containsAny(t, r.keywords) {
			continue
		}
		if len(r.requires) > 0 && !containsAny(t, r.requires) {
			continue
		}
		return r.intent
	}
	return IntentGeneral
}

func containsAny(s string, terms []string) bool {
	for _, term := range terms {
		if strings.Contains(s, term) {
			return true
		}
	}
	return false
}
