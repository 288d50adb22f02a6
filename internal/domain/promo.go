package domain

// PromoEntry is one redeemable gift code with its expiry date text.
// The expiry is display-only; entries are never filtered by clock time.
type PromoEntry struct {
	Code    string
	Expires string
}
