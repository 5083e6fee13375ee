package rules

import "fmt"

// Settings are the tunable knobs of the rule set.
type Settings struct {
	// LowHealth is the health below which an ant stops what it is doing
	// and heads home.
	LowHealth int
	// SeekToxin sends toxin gatherers that carry nothing after the nearest
	// toxin instead of straight to sugar gathering.
	SeekToxin bool
}

func DefaultSettings() Settings {
	return Settings{LowHealth: 5}
}

// Validate clamps the settings to their valid ranges.
func (s *Settings) Validate() {
	s.LowHealth = clampInt(s.LowHealth, 0, 64)
}

// CompileRules generates the rule set for the given settings. Conditions
// are built with fmt.Sprintf from validated values, so they always compile.
func CompileRules(s Settings) []*Rule {
	s.Validate()
	rules := []*Rule{
		{
			Name:         "stay-loaded",
			Priority:     100,
			ConditionSrc: fmt.Sprintf(`Health < %d && HasToxin`, s.LowHealth),
			Action:       ActionStay,
		},
		{
			Name:         "retreat",
			Priority:     90,
			ConditionSrc: fmt.Sprintf(`Health < %d`, s.LowHealth),
			Action:       ActionRetreat,
		},
		{
			Name:         "hunt",
			Priority:     50,
			ConditionSrc: `Strategy == "hunt"`,
			Action:       ActionHunt,
		},
		{
			Name:         "deliver-toxin",
			Priority:     40,
			ConditionSrc: `Strategy == "gatherToxin" && HasToxin`,
			Action:       ActionDeliverToxin,
		},
	}
	if s.SeekToxin {
		rules = append(rules, &Rule{
			Name:         "seek-toxin",
			Priority:     35,
			ConditionSrc: `Strategy == "gatherToxin"`,
			Action:       ActionSeekToxin,
		})
	}
	rules = append(rules, &Rule{
		Name:         "gather-sugar",
		Priority:     0,
		ConditionSrc: `true`,
		Action:       ActionGatherSugar,
	})
	return rules
}

// clampInt restricts v to [min, max].
func clampInt(v, min, max int) int {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}
