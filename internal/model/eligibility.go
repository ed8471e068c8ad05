package model

// MintEligibility is derived on every render and never stored.
type MintEligibility struct {
	PresaleOpen          bool
	WhitelistOpen        bool
	WhitelistRemaining   Uint
	HolderClaimAvailable bool
}

// Any reports whether at least one mint option is open.
func (e MintEligibility) Any() bool {
	return e.PresaleOpen || e.WhitelistOpen || e.HolderClaimAvailable
}

// Allows reports whether the given button is eligible.
func (e MintEligibility) Allows(kind MintKind) bool {
	switch kind {
	case Presale:
		return e.PresaleOpen
	case Whitelist:
		return e.WhitelistOpen
	case HolderClaim:
		return e.HolderClaimAvailable
	default:
		return false
	}
}
