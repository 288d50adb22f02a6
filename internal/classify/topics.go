package classify

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/herald/internal/domain"
)

// Topic names, in cascade priority order. Stable identifiers used by the
// replay tool, the match log, and no-match suggestions.
const (
	TopicTCRequirements   = "tc-requirements"
	TopicLiveness         = "liveness"
	TopicGiftCodes        = "gift-codes"
	TopicStateMove        = "state-move"
	TopicAutoBear         = "auto-bear"
	TopicBearHeroes       = "bear-heroes"
	TopicFog              = "fog"
	TopicKeys             = "keys"
	TopicGems             = "gems"
	TopicGen2Release      = "gen2-release"
	TopicGen2ReleaseAlt   = "gen2-release-alt"
	TopicAmadeusZoe       = "amadeus-zoe"
	TopicHeroRoulette     = "hero-roulette"
	TopicPets             = "pets"
	TopicKingsCastle      = "kings-castle"
	TopicHeroGear         = "hero-gear"
	TopicGovernorGear     = "governor-gear"
	TopicCharmTC          = "charm-tc"
	TopicFishing          = "fishing"
	TopicHallOfGovernors  = "hall-of-governors"
	TopicSwordland        = "swordland"
	TopicVIP              = "vip"
	TopicBannerRefund     = "banner-refund"
	TopicHeroShards       = "hero-shards"
	TopicPurchaseTransfer = "purchase-transfer"
	TopicKillEvent        = "kill-event"
	TopicSuggestions      = "suggestions"
	TopicBurstOfLife      = "burst-of-life"
	TopicCharmEvent       = "charm-event"
	TopicShowMeVIP        = "show-me-vip"
	TopicShowMeExample    = "show-me-example"
)

// cascade assembles the full matcher list. Order is the contract: several
// keyword sets overlap, and a text satisfying two predicates must always
// resolve to the earlier topic.
func (c *Classifier) cascade() []Matcher {
	var ms []Matcher

	if c.reqs != nil {
		ms = append(ms, Matcher{
			Name: TopicTCRequirements,
			// Needs a cost synonym, a town-center synonym, and at least
			// one number to use as the level; with no number the text
			// falls through to the rest of the cascade.
			Match: func(t string) bool {
				return hasAny(t, "requirements", "prerequisites", "cost") &&
					hasAny(t, "tc", "town center", "town centre") &&
					len(extractNumbers(t)) > 0
			},
			Render: c.renderRequirement,
		})
	}

	ms = append(ms,
		Matcher{
			Name:   TopicLiveness,
			Match:  func(t string) bool { return has(t, "helpbotactive?") },
			Render: staticCard(domain.ResponseCard{Title: "Hello! 👋", Accent: domain.AccentBlack}),
		},
		Matcher{
			Name: TopicGiftCodes,
			Match: func(t string) bool {
				return hasAny(t, "are", "any", "how") && has(t, "code")
			},
			Render: c.renderGiftCodes,
		},
		Matcher{
			Name: TopicStateMove,
			Match: func(t string) bool {
				return (startsAny(t, "how", "can", "is", "does") || has(t, "?")) &&
					hasAny(t, "change", "move", "teleport", "transfer") &&
					hasAny(t, "state", "server", "region")
			},
			Render: staticCard(domain.ResponseCard{
				Title: "📦 Can you move states?",
				Description: "There's no way to move your city to another state.\n" +
					"👉 However, you can create a new character:\n" +
					"`Profile Pic > Settings > Characters > Create New Character`",
				Accent: domain.AccentBlue,
			}),
		},
		Matcher{
			Name: TopicAutoBear,
			Match: func(t string) bool {
				return hasAll(t, "does", "auto") && hasAny(t, "bear", "pitfall")
			},
			Render: staticCard(domain.ResponseCard{
				Title:       "🐾 Does auto-rally work for bear trap?",
				Description: "No, you must be online and manually join rallies.",
				Accent:      domain.AccentRed,
			}),
		},
		Matcher{
			Name: TopicBearHeroes,
			Match: func(t string) bool {
				return hasAny(t, "what", "which", "?") &&
					hasAny(t, "bear trap", "bear", "pitfall") &&
					hasAny(t, "heroes", "use")
			},
			Render: staticCard(domain.ResponseCard{
				Title:       "🐻 What heroes do you use for the bear trap?",
				Description: "For the bear trap, use you three strongest attacking heroes when starting rallies.  When joining rallies use a lead hero that boosts rally lethality. During gen1 these heroes are only Amadaeus and Chenko",
				Accent:      domain.AccentBlue,
			}),
		},
		Matcher{
			Name: TopicFog,
			Match: func(t string) bool {
				return hasAll(t, "when", "does") && hasAny(t, "fog", "fertile land", "plains")
			},
			Render: staticCard(domain.ResponseCard{
				Title: "🌫️ When does the fog move?",
				Description: "• **Day 14** — Reveals the *Plains*\n" +
					"• **Day 39** — Reveals the *Fertile Land*",
				Accent: domain.AccentPurple,
			}),
		},
		Matcher{
			Name: TopicKeys,
			Match: func(t string) bool {
				return hasAny(t, "should", "?") && hasAll(t, "save", "keys")
			},
			Render: staticCard(domain.ResponseCard{
				Title:       "🔑 Should I save my keys?",
				Description: "**No**, there are no standard events that require keys.\nHowever there may be special events in the future that take them.\n",
				Accent:      domain.AccentGreen,
			}),
		},
		Matcher{
			Name: TopicGems,
			Match: func(t string) bool {
				return hasAny(t, "what", "which", "?") &&
					hasAny(t, "thing", "way", "should", "spend gems", "use gems") &&
					has(t, "gems")
			},
			Render: staticCard(domain.ResponseCard{
				Title: "💎 What is the best thing to use gems on?",
				Description: "• **Lucky wheel** - This is the primary thing you should use gems on.\n" +
					"• VIP, Hero Rally, Teleports and troop speedups can also be good depending on your situation.\n",
				Accent: domain.AccentViolet,
			}),
		},
		Matcher{
			Name: TopicGen2Release,
			Match: func(t string) bool {
				return hasAny(t, "how to", "how do", "when") &&
					hasAny(t, "are", "?") &&
					hasAny(t, "get", "released") &&
					hasAny(t, "gen2", "gen 2", "generation 2")
			},
			Render: staticCard(domain.ResponseCard{
				Title:       "🦸‍♂️ When are Gen 2 heroes released?",
				Description: "Gen2 heroes are released between day 40 and 50 of your state with the third Hall of Governors",
				Accent:      domain.AccentSteel,
			}),
		},
		Matcher{
			Name: TopicGen2ReleaseAlt,
			Match: func(t string) bool {
				return has(t, "when are") &&
					hasAny(t, "gen2", "gen 2", "generation 2") &&
					hasAny(t, "released", "available")
			},
			Render: staticCard(domain.ResponseCard{
				Title:       "🦸‍♂️ When are Gen 2 heroes released?",
				Description: "Gen2 heroes are released between day 40 and 50 of your state. With the third Hall of Governors",
				Accent:      domain.AccentSteel,
			}),
		},
		Matcher{
			Name: TopicAmadeusZoe,
			Match: func(t string) bool {
				return hasAll(t, "amadeus", "or", "zoe")
			},
			Render: staticCard(domain.ResponseCard{
				Title: "🦸‍♂️ Amadeus or Zoe?",
				Description: "• **Amadeus** is better on attack.\n" +
					"• **Zoe** is better for defense.\n",
				Accent: domain.AccentSteel,
			}),
		},
		Matcher{
			Name: TopicHeroRoulette,
			Match: func(t string) bool {
				return hasAny(t, "which", "who", "what") &&
					has(t, "hero") &&
					hasAny(t, "wheel", "roulette")
			},
			Render: staticCard(domain.ResponseCard{
				Title: "🎡 Which heroes are in hero roulette?",
				Description: "• gen1: Saul\n" +
					"• gen2: Zoe\n",
				Accent: domain.AccentBlue,
			}),
		},
		Matcher{
			Name: TopicPets,
			Match: func(t string) bool {
				return (startsAny(t, "when") || hasAny(t, "time", "?")) &&
					has(t, "pets") &&
					hasAny(t, "released", "available", "come", "arrive")
			},
			Render: staticCard(domain.ResponseCard{
				Title:       "🐾 When are pets released?",
				Description: "Pets are released on day 55 of your state (The day after King's Castle). \n",
				Accent:      domain.AccentBlue,
			}),
		},
		Matcher{
			Name: TopicKingsCastle,
			// Deliberately loose: fires on any "when/what day/how often"
			// text that also contains "is", with no castle keyword
			// required. Several later topics are unreachable for such
			// inputs; that shadowing is contract.
			Match: func(t string) bool {
				return hasAny(t, "when", "what day", "how often") && has(t, "is")
			},
			Render: staticCard(domain.ResponseCard{
				Title: "🏰 When is King's Castle?",
				Description: "• The first King's Castle is on day 54 of your state.\n" +
					"• After that it will take place every 2 weeks on Saturdays.\n" +
					"• King's Castle always starts at 12:00 UTC.\n",
				Accent: domain.AccentYellow,
			}),
		},
		Matcher{
			Name: TopicHeroGear,
			Match: func(t string) bool {
				return has(t, "what") &&
					hasAny(t, "tc", "town center", "town centre") &&
					has(t, "hero gear")
			},
			Render: staticCard(domain.ResponseCard{
				Title: "🏰 What TC level is required for hero gear?",
				Description: "• **TC15** is required for hero gear.\n" +
					"• **TC20** is required for hero gear mastery foraging.\n",
				Accent: domain.AccentBlue,
			}),
		},
		Matcher{
			Name: TopicGovernorGear,
			Match: func(t string) bool {
				return has(t, "what") &&
					hasAny(t, "tc", "town center", "town centre") &&
					has(t, "governor gear")
			},
			Render: staticCard(domain.ResponseCard{
				Title:       "🏰 What TC level is required for governor gear?",
				Description: "• **TC22** is required for governor gear.\n",
				Accent:      domain.AccentBlue,
			}),
		},
		Matcher{
			Name: TopicCharmTC,
			Match: func(t string) bool {
				return has(t, "what") &&
					hasAny(t, "tc", "town center", "town centre") &&
					has(t, "charm")
			},
			Render: staticCard(domain.ResponseCard{
				Title:       "🏰 What TC level is required for charms?",
				Description: "• **TC25** is required for governor charms\n",
				Accent:      domain.AccentBlue,
			}),
		},
		Matcher{
			Name: TopicFishing,
			Match: func(t string) bool {
				return (hasAll(t, "how", "often") || hasAll(t, "when", "is")) && has(t, "fishing")
			},
			Render: staticCard(domain.ResponseCard{
				Title:       "🎣 How often is the fishing even?",
				Description: "The fishing event is **monthly**\n",
				Accent:      domain.AccentBlue,
			}),
		},
		Matcher{
			Name: TopicHallOfGovernors,
			Match: func(t string) bool {
				return (hasAll(t, "how", "often") || hasAll(t, "when", "is")) &&
					hasAny(t, "hall of governors", "hog")
			},
			Render: staticCard(domain.ResponseCard{
				Title:       "🏰 How often is the Hall of Governors event?",
				Description: "The Hall of Governors event is generally every **2 weeks**\n",
				Accent:      domain.AccentBlue,
			}),
		},
		Matcher{
			Name: TopicSwordland,
			Match: func(t string) bool {
				return (hasAll(t, "how", "often") || hasAll(t, "when", "is")) && has(t, "swordland")
			},
			Render: staticCard(domain.ResponseCard{
				Title:       "⚔️ How often is the Swordland Sowdown event?",
				Description: "The Swordland event is generally every **2 weeks**\n",
				Accent:      domain.AccentBlue,
			}),
		},
		Matcher{
			Name: TopicVIP,
			Match: func(t string) bool {
				return startsAny(t, "what", "how") &&
					has(t, "vip") &&
					(hasAny(t, "cost", "requirements") || hasAll(t, "much", "xp"))
			},
			Render: staticCard(domain.ResponseCard{
				Title:    "💎 What are the VIP requirements?",
				Accent:   domain.AccentBlue,
				ImageURL: "https://i.imgur.com/YLhEDYv.png",
			}),
		},
		Matcher{
			Name: TopicBannerRefund,
			Match: func(t string) bool {
				return has(t, "how") &&
					hasAny(t, "much", "many") &&
					hasAny(t, "res", "resources") &&
					hasAny(t, "banner", "flag") &&
					hasAny(t, "destroy", "dismantle")
			},
			Render: staticCard(domain.ResponseCard{
				Title:       "🏴 How many resources are refunded when you destroy a banner?",
				Description: "You get **10%** of the resources back from destroying a banner.\n",
				Accent:      domain.AccentBlue,
			}),
		},
		Matcher{
			Name: TopicHeroShards,
			Match: func(t string) bool {
				return hasAny(t, "can", "what", "?") &&
					hasAny(t, "do", "use") &&
					hasAny(t, "extra", "leftover") &&
					hasAny(t, "hero shards", "shards")
			},
			Render: staticCard(domain.ResponseCard{
				Title: "🦸‍♂️ Can I do anything with extra hero shards?",
				Description: "Yes there is an event called **Champagne Fair** where you can exchange extra hero shards for tickets.\n" +
					"1 rare shard = 6 tickets\n" +
					"1 epic shard = 10 tickets\n" +
					"1 legendary shard = 200 tickets\n",
				Accent: domain.AccentBlue,
			}),
		},
		Matcher{
			Name: TopicPurchaseTransfer,
			Match: func(t string) bool {
				return hasAny(t, "do", "will", "?") &&
					hasAny(t, "purchases", "items", "packs") &&
					hasAny(t, "transfer", "move") &&
					hasAny(t, "account", "server", "state")
			},
			Render: staticCard(domain.ResponseCard{
				Title:       "💰 Do purchases on account transfer to new servers?",
				Description: "No, purchases made on an account do not transfer to new servers. Items and packs are tied to the state/character where they were purchased.",
				Accent:      domain.AccentRed,
			}),
		},
		Matcher{
			Name: TopicKillEvent,
			Match: func(t string) bool {
				return hasAny(t, "how many", "?", "how long", "how often") &&
					hasAny(t, "dayz", "days", "long") &&
					hasAny(t, "ke", "kill event", "all out", "allout")
			},
			Render: staticCard(domain.ResponseCard{
				Title: "⚔️ How many days is KE?",
				Description: "The Kill Event (All Out), lasts for **2 days**.\n" +
					"It is generally every **2 weeks** and takes place onf Friday to Saturday.\n",
				Accent: domain.AccentRed,
			}),
		},
		Matcher{
			Name: TopicSuggestions,
			Match: func(t string) bool {
				return hasAny(t, "how", "where", "?") &&
					hasAny(t, "make", "give") &&
					hasAny(t, "suggestion", "feedback")
			},
			Render: staticCard(domain.ResponseCard{
				Title:       "💡 How to make a suggestion?",
				Description: "See the **#feedback** channel to share your suggestions!",
				Accent:      domain.AccentBlue,
			}),
		},
		Matcher{
			Name: TopicBurstOfLife,
			Match: func(t string) bool {
				return hasAny(t, "how", "?") &&
					hasAny(t, "get", "unlock") &&
					(has(t, "burst of life") || hasAll(t, "burst", "life"))
			},
			Render: staticCard(domain.ResponseCard{
				Title:       "🌟 How to get the Burst of Life skin?",
				Description: "Reach **4M power** during the **Rookies Growth** event in the first week of a state.",
				Accent:      domain.AccentBlue,
			}),
		},
		Matcher{
			Name: TopicCharmEvent,
			Match: func(t string) bool {
				return hasAny(t, "is there", "?") && hasAll(t, "event", "charms")
			},
			Render: staticCard(domain.ResponseCard{
				Title:       "🏰 Is there an event for upgrading charms?",
				Description: "The 4th Hall of Governors has a day for upgrading charms.",
				Accent:      domain.AccentBlue,
			}),
		},
	)

	ms = append(ms, showMeMatchers()...)
	return ms
}

const (
	redeemWebURL  = "https://ks-giftcode.centurygame.com/"
	redeemInGame  = "Avatar(top-left on Main Interface) -> Settings -> Gift Code"
	expiryTimeUTC = "23:59 UTC"
)

func (c *Classifier) renderGiftCodes(string) *domain.ResponseCard {
	var entries []domain.PromoEntry
	if c.promos != nil {
		entries = c.promos.Active()
	}
	if len(entries) == 0 {
		return &domain.ResponseCard{
			Title:       "🎁 Gift Codes:",
			Description: "None currently active",
			Accent:      domain.AccentRed,
		}
	}

	var b strings.Builder
	for i, e := range entries {
		if i > 0 {
			b.WriteString("\n")
		}
		fmt.Fprintf(&b, "• **%s (Expire %s at %s)**", e.Code, e.Expires, expiryTimeUTC)
	}
	fmt.Fprintf(&b, "\n\n🔗 Redeem on Website: %s", redeemWebURL)
	fmt.Fprintf(&b, "\n🕹️ Redeem in-game(Android users only): %s", redeemInGame)

	return &domain.ResponseCard{
		Title:       "🎁 Gift Codes:",
		Description: b.String(),
		Accent:      domain.AccentMint,
	}
}
