package personality

import (
	"regexp"
	"strings"

	"github.com/alexanderramin/studypal/internal/domain"
)

// rewriteRule is a single case-insensitive substitution.
type rewriteRule struct {
	pattern *regexp.Regexp
	replace string
}

func word(words string, replace string) rewriteRule {
	return rewriteRule{
		pattern: regexp.MustCompile(`(?i)\b(?:` + words + `)\b`),
		replace: replace,
	}
}

func literal(expr string, replace string) rewriteRule {
	return rewriteRule{pattern: regexp.MustCompile(expr), replace: replace}
}

// rewrite applies rules in order; later rules see the output of earlier ones.
func rewrite(text string, rules ...rewriteRule) string {
	for _, r := range rules {
		text = r.pattern.ReplaceAllLiteralString(text, r.replace)
	}
	return text
}

// Tier maps a fierceness level to one of five tiers: [0,1] [2,3] [4,5] [6,7] [8,9].
func Tier(fierceness int) int {
	return domain.ClampLevel(fierceness) / 2
}

var (
	calmTierRules = []rewriteRule{
		literal(`!$`, "."),
		word(`great|awesome`, "Good"),
	}
	strictTierRules = []rewriteRule{
		word(`let's|i can`, "You should"),
	}
	commandTierRules = []rewriteRule{
		word(`let's|i can|you should`, "You WILL"),
	}
)

// ApplyFierceness rewrites text according to the fierceness tier.
// Tier [2,3] is the identity.
func ApplyFierceness(text string, fierceness int) string {
	f := domain.ClampLevel(fierceness)
	switch Tier(f) {
	case 0:
		return text + " 💕"
	case 1:
		return text
	case 2:
		return rewrite(text, calmTierRules...) + " 👍"
	case 3:
		return rewrite(text, strictTierRules...) + " Focus! 🔥"
	default:
		emoji := "👑"
		if f == domain.MaxLevel {
			emoji = "💥"
		}
		return rewrite(text, commandTierRules...) + " NOW! " + emoji
	}
}

var (
	intellectualRules = []rewriteRule{
		word(`interesting`, "fascinating"),
		word(`good`, "intellectually stimulating"),
	}
	casualRules = []rewriteRule{
		word(`hello`, "hey"),
		word(`going to`, "gonna"),
	}
	poeticRules = []rewriteRule{
		word(`task`, "quest"),
		word(`today`, "this fleeting day"),
	}
	coachRules = []rewriteRule{
		word(`task`, "play"),
	}
	genZRules = []rewriteRule{
		word(`very`, "lowkey"),
		word(`really`, "fr"),
	}
	drillRules = []rewriteRule{
		word(`you should`, "You MUST"),
		literal(`(?i)\bmaybe\s+`, ""),
	}
)

var sarcasticPrefixes = [5]string{
	"Oh, how lovely. ",
	"Oh sure. ",
	"Wow, shocking. ",
	"Oh great, another excuse. ",
	"Oh, PLEASE. ",
}

var styleTransforms = [domain.MaxLevel + 1]func(text string, fierceness int) string{
	// 0 warm
	func(text string, fierceness int) string {
		if fierceness < 4 {
			return text + " 🤗"
		}
		return text + " 🙂"
	},
	// 1 intellectual
	func(text string, _ int) string {
		return rewrite(text, intellectualRules...)
	},
	// 2 casual
	func(text string, _ int) string {
		return rewrite(text, casualRules...) + " ✌️"
	},
	// 3 poetic
	func(text string, _ int) string {
		return rewrite(text, poeticRules...) + " ✨"
	},
	// 4 sarcastic
	func(text string, fierceness int) string {
		return sarcasticPrefixes[Tier(fierceness)] + text
	},
	// 5 coach
	func(text string, _ int) string {
		return rewrite(text, coachRules...) + " 🏆 Game time!"
	},
	// 6 gen-z
	func(text string, _ int) string {
		return rewrite(text, genZRules...) + " no cap 💯"
	},
	// 7 drill
	func(text string, _ int) string {
		return rewrite(text, drillRules...) + " Move it! 💪"
	},
	// 8 zen
	func(text string, _ int) string {
		return strings.ReplaceAll(text, "!", ".") + " Breathe. 🧘"
	},
	// 9 robot
	func(text string, _ int) string {
		return "PROCESSING: " + strings.ToUpper(text)
	},
}

// ApplyStyle rewrites text according to the communication style. Some styles
// vary with fierceness.
func ApplyStyle(text string, style, fierceness int) string {
	return styleTransforms[domain.ClampLevel(style)](text, domain.ClampLevel(fierceness))
}

// Transform applies the fierceness rewrite followed by the style rewrite.
func Transform(text string, level domain.PersonalityLevel) string {
	level = level.Clamp()
	return ApplyStyle(ApplyFierceness(text, level.Fierceness), level.Style, level.Fierceness)
}
