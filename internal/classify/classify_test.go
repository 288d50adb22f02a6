package classify

import (
	"strings"
	"testing"

	"github.com/alexanderramin/herald/internal/domain"
	"github.com/alexanderramin/herald/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const requirementFixture = `Level|Prerequisites|Bread|Wood|Coal|Iron|Upgrade Time
5|TC4|100|200|50|10|2 days 3 hours
6|TC5, Embassy 5|1.2M|1.2M|240K|60K|3 days
`

func fixtureClassifier(t *testing.T) *Classifier {
	t.Helper()
	reqs, err := store.ParseRequirements(strings.NewReader(requirementFixture))
	require.NoError(t, err)
	promos, err := store.ParsePromos(strings.NewReader("ABC123 2025-01-01\n"))
	require.NoError(t, err)
	return New(reqs, promos)
}

func TestClassify_RequirementLookup(t *testing.T) {
	c := fixtureClassifier(t)

	card, ok := c.Classify("tc5 requirements")
	require.True(t, ok)
	assert.Equal(t, "📋 Town Center Level **5** Requirements", card.Title)
	assert.Contains(t, card.Description, "• **Prerequisites**: TC4")
	assert.Contains(t, card.Description, "• **Base Bread**: 100")
	// percent=0 leaves the stored duration text untouched.
	assert.Contains(t, card.Description, "• **Upgrade Time**: 2 days 3 hours")
	assert.Equal(t, domain.AccentGreen, card.Accent)
}

func TestClassify_RequirementWithSpeedBonus(t *testing.T) {
	c := fixtureClassifier(t)

	card, ok := c.Classify("tc5 requirements with 20% speed")
	require.True(t, ok)
	assert.Contains(t, card.Title, "**20**% construction speed")
	// 183600s scaled by 1.2 and reformatted.
	assert.Contains(t, card.Description, "• **Upgrade Time**: 1 day, 18 hours, 30 minutes")
	// The other fields stay verbatim.
	assert.Contains(t, card.Description, "• **Base Iron**: 10")
}

func TestClassify_RequirementInvalidLevel(t *testing.T) {
	c := fixtureClassifier(t)

	for _, text := range []string{"tc31 requirements", "cost of town center 1", "tc 99 prerequisites"} {
		card, ok := c.Classify(text)
		require.True(t, ok, text)
		assert.Equal(t, "❗ Invalid Town Center Level", card.Title)
		assert.Equal(t, "Valid levels are between 2 and 30.", card.Description)
		assert.Equal(t, domain.AccentRed, card.Accent)
	}
}

func TestClassify_RequirementWithoutNumberFallsThrough(t *testing.T) {
	c := fixtureClassifier(t)

	// Cost + town-center synonyms but no level digit: the requirement
	// matcher must not fire, and nothing later matches this text either.
	_, ok := c.Classify("town center requirements")
	assert.False(t, ok)
}

func TestClassify_LivenessProbe(t *testing.T) {
	c := fixtureClassifier(t)

	card, ok := c.Classify("helpbotactive?")
	require.True(t, ok)
	assert.Equal(t, "Hello! 👋", card.Title)
	assert.Equal(t, domain.AccentBlack, card.Accent)
	assert.Empty(t, card.Description)
}

func TestClassify_GiftCodes(t *testing.T) {
	c := fixtureClassifier(t)

	card, ok := c.Classify("any gift codes?")
	require.True(t, ok)
	assert.Equal(t, "🎁 Gift Codes:", card.Title)
	assert.Contains(t, card.Description, "ABC123 (Expire 2025-01-01 at 23:59 UTC)")
	assert.Contains(t, card.Description, "Redeem on Website")
	assert.Equal(t, domain.AccentMint, card.Accent)
}

func TestClassify_GiftCodesEmptyList(t *testing.T) {
	reqs, err := store.ParseRequirements(strings.NewReader(requirementFixture))
	require.NoError(t, err)
	promos, err := store.ParsePromos(strings.NewReader(""))
	require.NoError(t, err)
	c := New(reqs, promos)

	card, ok := c.Classify("any gift codes?")
	require.True(t, ok)
	assert.Equal(t, "None currently active", card.Description)
	assert.Equal(t, domain.AccentRed, card.Accent)
}

func TestClassify_NoMatch(t *testing.T) {
	c := fixtureClassifier(t)

	for _, text := range []string{"hello", "good morning everyone", ""} {
		_, ok := c.Classify(text)
		assert.False(t, ok, "expected no match for %q", text)
	}
}

// A text satisfying two predicates must always resolve to the earlier
// topic, every time.
func TestClassify_PriorityOrderDeterminism(t *testing.T) {
	c := fixtureClassifier(t)

	// Satisfies both the requirement predicate (cost+tc+number) and the
	// kings-castle predicate (when+is). Requirement lookup is earlier.
	text := "when is the best time to pay the cost for tc 5?"
	for i := 0; i < 10; i++ {
		card, ok := c.Classify(text)
		require.True(t, ok)
		assert.Equal(t, "📋 Town Center Level **5** Requirements", card.Title)
	}
}

// The loose kings-castle predicate shadows later "when is X" topics.
func TestClassify_KingsCastleShadowsFishing(t *testing.T) {
	c := fixtureClassifier(t)

	card, ok := c.Classify("when is the fishing event?")
	require.True(t, ok)
	assert.Equal(t, "🏰 When is King's Castle?", card.Title)

	// "how often" phrasing reaches the fishing topic because kings-castle
	// also needs "is".
	// "fishing" itself contains the substring "is", so any "how often"
	// phrasing is shadowed too; the topic needs "how" and "often" apart.
	card, ok = c.Classify("how many times is fishing held? often?")
	require.True(t, ok)
	assert.Equal(t, "🎣 How often is the fishing even?", card.Title)
}

func TestClassify_CaseFolding(t *testing.T) {
	c := fixtureClassifier(t)

	card, ok := c.Classify("TC5 REQUIREMENTS")
	require.True(t, ok)
	assert.Equal(t, "📋 Town Center Level **5** Requirements", card.Title)

	card, ok = c.Classify("HelpBotActive?")
	require.True(t, ok)
	assert.Equal(t, "Hello! 👋", card.Title)
}

func TestClassify_FixedTopics(t *testing.T) {
	c := fixtureClassifier(t)

	tests := []struct {
		text      string
		wantTitle string
	}{
		{"how do I move to another state?", "📦 Can you move states?"},
		{"does auto rally work for bear trap", "🐾 Does auto-rally work for bear trap?"},
		{"which heroes to use for bear trap", "🐻 What heroes do you use for the bear trap?"},
		{"when does the fog move", "🌫️ When does the fog move?"},
		{"should i save my keys", "🔑 Should I save my keys?"},
		{"what is the best thing to spend gems on", "💎 What is the best thing to use gems on?"},
		{"when are gen2 heroes released", "🦸‍♂️ When are Gen 2 heroes released?"},
		{"amadeus or zoe", "🦸‍♂️ Amadeus or Zoe?"},
		{"which hero is in the wheel", "🎡 Which heroes are in hero roulette?"},
		{"what tc is needed for hero gear", "🏰 What TC level is required for hero gear?"},
		{"what tc for governor gear", "🏰 What TC level is required for governor gear?"},
		{"what tc do i need for charms", "🏰 What TC level is required for charms?"},
		{"how often do we get hog", "🏰 How often is the Hall of Governors event?"},
		{"how often does swordland happen", "⚔️ How often is the Swordland Sowdown event?"},
		{"what does vip 5 cost", "💎 What are the VIP requirements?"},
		{"how much resources do you get back when you destroy a banner", "🏴 How many resources are refunded when you destroy a banner?"},
		{"can i use extra hero shards", "🦸‍♂️ Can I do anything with extra hero shards?"},
		{"will my packs transfer to the new server", "💰 Do purchases on account transfer to new servers?"},
		{"how many days is ke", "⚔️ How many days is KE?"},
		{"where do i give feedback", "💡 How to make a suggestion?"},
		{"how do i unlock burst of life", "🌟 How to get the Burst of Life skin?"},
		{"is there an event for charms", "🏰 Is there an event for upgrading charms?"},
	}
	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			card, ok := c.Classify(tt.text)
			require.True(t, ok, "expected a match for %q", tt.text)
			assert.Equal(t, tt.wantTitle, card.Title)
		})
	}
}

// Broad single-keyword containment may fire on unrelated phrasing; that
// is accepted behavior, not a defect.
func TestClassify_BroadPredicatesFalsePositive(t *testing.T) {
	c := fixtureClassifier(t)

	// "when" + "is" is enough for kings-castle.
	card, ok := c.Classify("when is dinner")
	require.True(t, ok)
	assert.Equal(t, "🏰 When is King's Castle?", card.Title)
}

func TestClassify_VIPImageCard(t *testing.T) {
	c := fixtureClassifier(t)

	card, ok := c.Classify("what are the vip requirements")
	require.True(t, ok)
	assert.Equal(t, "https://i.imgur.com/YLhEDYv.png", card.ImageURL)
	assert.Empty(t, card.Description)
}

func TestClassify_ShowMe(t *testing.T) {
	c := fixtureClassifier(t)

	card, ok := c.Classify("show.me vip req")
	require.True(t, ok)
	assert.Equal(t, "💎 VIP requirements", card.Title)
	assert.Equal(t, "https://i.imgur.com/YLhEDYv.png", card.ImageURL)

	card, ok = c.Classify("show.me example")
	require.True(t, ok)
	assert.Equal(t, "📘 Example Command", card.Title)
}

func TestClassify_DegradedWithoutRequirements(t *testing.T) {
	promos, err := store.ParsePromos(strings.NewReader("ABC123 2025-01-01\n"))
	require.NoError(t, err)
	c := New(nil, promos)

	// Requirement topic is disabled; everything else keeps working.
	_, ok := c.Classify("tc5 requirements")
	assert.False(t, ok)

	card, ok := c.Classify("any gift codes?")
	require.True(t, ok)
	assert.Contains(t, card.Description, "ABC123")
}

func TestClassifyTopic(t *testing.T) {
	c := fixtureClassifier(t)

	_, name, ok := c.ClassifyTopic("any gift codes?")
	require.True(t, ok)
	assert.Equal(t, TopicGiftCodes, name)

	_, name, ok = c.ClassifyTopic("what is this")
	if ok {
		assert.NotEmpty(t, name)
	}
}

func TestTopicNames_OrderStable(t *testing.T) {
	c := fixtureClassifier(t)

	names := c.TopicNames()
	require.NotEmpty(t, names)
	assert.Equal(t, TopicTCRequirements, names[0])
	assert.Equal(t, TopicLiveness, names[1])
	assert.Equal(t, TopicGiftCodes, names[2])
	assert.Equal(t, TopicShowMeExample, names[len(names)-1])
}
