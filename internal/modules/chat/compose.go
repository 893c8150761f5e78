// README: Response composer; canned replies, follow-ups, tips, and the demo translator.
package chat

import "strings"

// knowledge maps each problem intent to its canned advice line.
var knowledge = map[Intent]string{
	IntentBudgetLow:     "Try hostels, public buses/metros, cook sometimes, pick free walking tours, travel off-peak.",
	IntentEatSafe:       "Choose busy places with recent reviews, bottled water, avoid raw salads if unsure, prefer hot cooked food.",
	IntentTransportBest: "Short city hops: metro/bus. Intercity: train or budget coach. Late night: licensed cabs only.",
	IntentGirlsSafety:   "Stick to well-lit areas, share live location, avoid isolated spots late night, verify cabs, trust your instinct.",
	IntentPacking:       "Layered clothes, power bank, universal adapter, basic meds, copies of IDs, padlock, quick-dry towel.",
	IntentCostReduce:    "Travel off-season, fly mid-week, use passes, city cards, shared rides, cook breakfasts, compare across apps.",
	IntentConfusingPlan: "Group by region, reduce hotel hops, add buffer time, keep max 2-3 key activities per day.",
	IntentHiddenPlaces:  "Ask locals, explore neighborhoods beyond the center, check community maps and Reddit threads.",
	IntentLostItem:      "Note location/time, contact venue/transport lost-and-found, file a police diary entry if needed, block cards.",
	IntentScared:        "Find a lit public place, call a trusted contact, share live location, approach staff/security, use emergency numbers.",
	IntentAdventures:    "Look for guided hikes, cycling tours, river rafting (seasonal), zip-lines, local cooking or art workshops.",
}

const (
	whereTravelReply = "Tell me your month, budget and vibe (beach/mountains/city). I’ll shortlist 3 destinations with pros/cons."
	generalReply     = "I’ve got you. Share your city, dates and budget. I’ll suggest options, safety notes and a simple plan."
	generalReplyHi   = "Bilkul! Apna budget, tareekh aur vibe batayein. Main aapko behtareen options, safety tips aur simple plan dunga/dungi."
)

var followups = []string{
	"What’s your budget range?",
	"When are you traveling?",
	"Solo or with friends/family?",
}

var tipsDefault = []string{
	"Keep digital + paper copies of IDs.",
	"Share your live location when traveling late.",
	"Avoid exchanging cash at airports; use ATMs or cards.",
}

var tipsHindi = []string{
	"ID ki digital aur paper copies rakhein.",
	"Late travel pe live location share karein.",
	"Airport par currency exchange mehenga ho sakta hai.",
}

// Compose returns the canned reply for an intent. Follow-ups are
// locale-invariant; tips switch to the Hindi variant for "hi*" locales, and
// the general reply has a Hindi special case. Any other locale falls back to
// the default variant.
func Compose(intent Intent, locale string) Reply {
	var txt string
	switch {
	case intent == IntentWhereTravel:
		txt = whereTravelReply
	case knowledge[intent] != "":
		txt = knowledge[intent]
	default:
		txt = generalReply
	}

	tips := tipsDefault
	if strings.HasPrefix(locale, "hi") {
		if intent == IntentGeneral {
			txt = generalReplyHi
		}
		tips = tipsHindi
	}

	return Reply{Reply: txt, Followups: followups, Tips: tips, Locale: locale}
}

var dailyTipsDefault = []Tip{
	{Title: "Scan documents", Body: "Keep passport/IDs in cloud + local copy."},
	{Title: "Local SIM", Body: "Buy at airport/train hubs for instant connectivity."},
	{Title: "Hydration", Body: "Carry a refillable bottle and purification tabs."},
}

var dailyTipsHindi = []Tip{
	{Title: "Docs ka backup", Body: "Passport/ID ki copies cloud me rakhein."},
	{Title: "Local SIM", Body: "Airport ya station par lena aasaan hota hai."},
	{Title: "Paani", Body: "Refillable bottle saath rakhein."},
}

// DailyTips returns the fixed tip cards for a locale.
func DailyTips(locale string) []Tip {
	if strings.HasPrefix(locale, "hi") {
		return dailyTipsHindi
	}
	return dailyTipsDefault
}

// Translate is the demo en<->hi placeholder, not a real translator.
func Translate(text, target string) string {
	text = strings.TrimSpace(text)
	if strings.HasPrefix(target, "hi") {
		return "[HI] " + text
	}
	return strings.ReplaceAll(text, " hai ", " is ")
}
