package domain

var motivationalQuotes = []string{
	"The strength is already inside you. 🥷",
	"Every workout is a battle won! ⚔️",
	"The warrior's path never ends. 🎌",
	"Discipline yourself like a true samurai! 🗾",
	"Your power level is increasing! ⚡",
	"Train hard, become legendary! 🏆",
	"The ninja way: never give up! 🌟",
	"Forge your body, strengthen your spirit! 🔥",
	"Every rep brings you closer to greatness! 💯",
	"Unlock your hidden potential, warrior! 🗝️",
}

// QuoteFor picks the motivational quote shown on day. The same day always
// gets the same quote.
func QuoteFor(day DayKey) string {
	n := DaysBetween(NewDayKey(1970, 1, 1), day) % len(motivationalQuotes)
	if n < 0 {
		n += len(motivationalQuotes)
	}
	return motivationalQuotes[n]
}
