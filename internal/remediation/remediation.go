// Package remediation turns weak must-cover keys into "next time" questions and mini-lessons.
package remediation

import "github.com/Techascendconsulting/stakeholder-v1-sub011/internal/types"

// Defaults for the remediation caps
const (
	DefaultMaxScripts = 5
	DefaultMaxLessons = 3
)

// genericTips pad the script list, in this order, when weak keys run out
var genericTips = []string{
	"Start with \"What\", \"How\" or \"Walk me through\" so the stakeholder can answer in their own words.",
	"When an answer surprises you, follow up with \"Tell me more about that\" before changing topic.",
	"Reflect back what you heard (\"You mentioned...\") to confirm and deepen the point.",
	"Ask for a recent concrete example rather than a general opinion.",
	"Hold back on proposing solutions until the problem and its impact are clear.",
	"Let the stakeholder do most of the talking; aim for a roughly even split at most.",
}

// GenericTips returns a copy of the padding tips in order
func GenericTips() []string {
	out := make([]string, len(genericTips))
	copy(out, genericTips)
	return out
}

// NextTimeScripts drains each weak key's sample questions in order, then pads
// with generic technique tips until maxScripts (0 = default 5) is reached or
// the tips run out. Keys missing from table contribute nothing.
func NextTimeScripts(weakKeys []string, table types.CoverMetaTable, maxScripts int) []string {
	if maxScripts <= 0 {
		maxScripts = DefaultMaxScripts
	}

	scripts := make([]string, 0, maxScripts)
	for _, key := range weakKeys {
		meta, ok := table[key]
		if !ok {
			continue
		}
		for _, q := range meta.SampleQuestions {
			if len(scripts) == maxScripts {
				return scripts
			}
			scripts = append(scripts, q)
		}
	}

	for _, tip := range genericTips {
		if len(scripts) == maxScripts {
			break
		}
		scripts = append(scripts, tip)
	}

	return scripts
}

// MiniLessons returns the coaching tip, verbatim, for up to maxLessons (0 = default 3)
// weak keys in order. Keys without a tip are skipped.
func MiniLessons(weakKeys []string, table types.CoverMetaTable, maxLessons int) []types.MiniLesson {
	if maxLessons <= 0 {
		maxLessons = DefaultMaxLessons
	}

	lessons := make([]types.MiniLesson, 0, maxLessons)
	for _, key := range weakKeys {
		if len(lessons) == maxLessons {
			break
		}
		meta, ok := table[key]
		if !ok || meta.CoachingTip == "" {
			continue
		}
		lessons = append(lessons, types.MiniLesson{Key: key, Tip: meta.CoachingTip})
	}

	return lessons
}

// Build assembles both remediation lists for the weak keys
func Build(weakKeys []string, table types.CoverMetaTable, maxScripts, maxLessons int) types.Remediation {
	return types.Remediation{
		NextTimeScripts: NextTimeScripts(weakKeys, table, maxScripts),
		MiniLessons:     MiniLessons(weakKeys, table, maxLessons),
	}
}
