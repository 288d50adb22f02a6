package classify

import (
	"fmt"

	"github.com/alexanderramin/herald/internal/domain"
	"github.com/alexanderramin/herald/internal/timetext"
)

// renderRequirement answers the one parametric topic. The first number in
// the text is the town center level (truncated to an integer); the second,
// if present, is a construction-speed percent applied to the upgrade time.
func (c *Classifier) renderRequirement(text string) *domain.ResponseCard {
	nums := extractNumbers(text)
	level := int(nums[0])
	percent := 0.0
	if len(nums) > 1 {
		percent = nums[1]
	}
	return c.requirementCard(level, percent)
}

func (c *Classifier) requirementCard(level int, percent float64) *domain.ResponseCard {
	rec, ok := c.reqs.Lookup(level)
	if !ok {
		return &domain.ResponseCard{
			Title:       "❗ Invalid Town Center Level",
			Description: fmt.Sprintf("Valid levels are between %d and %d.", domain.MinTCLevel, domain.MaxTCLevel),
			Accent:      domain.AccentRed,
		}
	}

	upgradeTime := rec.UpgradeTime
	if percent > 0 {
		// The scaling formula misbehaves at or below zero, so the stored
		// text passes through untouched in that case.
		base := timetext.ParseSeconds(upgradeTime)
		upgradeTime = timetext.FormatSeconds(timetext.ScaleSeconds(base, percent))
	}

	title := fmt.Sprintf("📋 Town Center Level **%d** Requirements", level)
	if percent != 0 {
		title = fmt.Sprintf("📋 Town Center Level **%d** Requirements with **%v**%% construction speed", level, percent)
	}

	return &domain.ResponseCard{
		Title: title,
		Description: fmt.Sprintf(
			"• **Prerequisites**: %s\n"+
				"• **Base Bread**: %s\n"+
				"• **Base Wood**: %s\n"+
				"• **Base Coal**: %s\n"+
				"• **Base Iron**: %s\n"+
				"• **Upgrade Time**: %s",
			rec.Prerequisites, rec.Bread, rec.Wood, rec.Coal, rec.Iron, upgradeTime),
		Accent: domain.AccentGreen,
	}
}
