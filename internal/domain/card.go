package domain

// Accent is a 24-bit RGB color applied to the edge of a response card.
type Accent int

// Fixed card palette. Values are part of the delivery contract: downstream
// senders map them straight onto platform embed colors.
const (
	AccentGreen  Accent = 0x2ecc71
	AccentRed    Accent = 0xe74c3c
	AccentBlue   Accent = 0x3498db
	AccentPurple Accent = 0x9b59b6
	AccentViolet Accent = 0x8e44ad
	AccentSteel  Accent = 0x2980b9
	AccentYellow Accent = 0xf1c40f
	AccentMint   Accent = 0x00ff99
	AccentBlack  Accent = 0x000000
)

// ResponseCard is the structured answer produced for a classified message.
// Cards are transient: built per message, handed to a sender, not retained.
type ResponseCard struct {
	Title       string
	Description string
	Accent      Accent
	ImageURL    string
}
