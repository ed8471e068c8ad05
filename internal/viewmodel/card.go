package viewmodel

import (
	"github.com/goodnatureofminers/cryptocator-backend/internal/model"
)

const (
	MintingLabel       = "Minting..."
	NoOptionsNotice    = "No minting options available at the moment"
	NeedsFalconNotice  = "You need to own at least 1 Falcon NFT to claim free Whales"
	holderClaimLabel   = "Claim 1 Whale (Free)"
	holderClaimDetail  = "(Free for Falcon owners)"
	presaleButtonTitle = "Presale Mint"
)

type Stat struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

type Button struct {
	Kind    model.MintKind `json:"kind"`
	Title   string         `json:"title"`
	Detail  string         `json:"detail,omitempty"`
	CostETH string         `json:"costEth,omitempty"`
	Label   string         `json:"label"`
	Enabled bool           `json:"enabled"`
}

type Holdings struct {
	FalconsOwned  string `json:"falconsOwned"`
	WhalesClaimed string `json:"whalesClaimed,omitempty"`
}

// Card is the detail panel of one collection.
type Card struct {
	Collection  model.Collection `json:"collection"`
	Title       string           `json:"title"`
	Description string           `json:"description"`
	Stats       []Stat           `json:"stats"`
	Holdings    *Holdings        `json:"holdings,omitempty"`
	// MintSection is present only while a wallet is connected.
	MintSection *MintSection `json:"mintSection,omitempty"`
}

type MintSection struct {
	Amount  uint64   `json:"amount"`
	Minting bool     `json:"minting"`
	Buttons []Button `json:"buttons"`
	Notices []string `json:"notices,omitempty"`
}

// BuildCard renders the detail panel from the latest stats.
func BuildCard(stats model.CollectionStats, wallet model.WalletSnapshot, amount uint64, minting bool) Card {
	supply := stats.Supply()
	card := Card{
		Collection: stats.Collection,
		Stats: []Stat{
			{Label: "Minted", Value: uintText(supply.TotalSupply)},
			{Label: "Max Supply", Value: uintText(supply.MaxSupply)},
			{Label: "Remaining", Value: uintText(supply.Remaining())},
			{Label: "Your NFTs", Value: uintText(supply.UserBalance)},
		},
	}
	if info, ok := Catalog[stats.Collection]; ok {
		card.Title = info.DetailTitle
		card.Description = info.DetailDescription
	}

	_, connected := wallet.Account()
	if stats.Whales != nil && connected {
		h := &Holdings{FalconsOwned: uintText(stats.Whales.FalconsBalance)}
		if claimed, ok := model.ReadyUint(stats.Whales.ClaimedAmount); ok {
			h.WhalesClaimed = claimed.String()
		}
		card.Holdings = h
	}
	if !connected {
		return card
	}

	section := &MintSection{Amount: amount, Minting: minting}
	eligibility := Eligibility(stats, amount)
	enabled := !minting && amount >= 1

	switch {
	case stats.Falcons != nil:
		section.Buttons = falconsButtons(*stats.Falcons, eligibility, amount, minting, enabled)
	case stats.Whales != nil:
		section.Buttons = whalesButtons(*stats.Whales, eligibility, amount, minting, enabled)
	}

	if !eligibility.Any() {
		section.Notices = append(section.Notices, NoOptionsNotice)
	}
	if stats.Whales != nil && !eligibility.HolderClaimAvailable {
		if balance, ok := model.ReadyUint(stats.Whales.FalconsBalance); ok && balance.Sign() == 0 {
			section.Notices = append(section.Notices, NeedsFalconNotice)
		}
	}
	card.MintSection = section
	return card
}

func falconsButtons(stats model.FalconsStats, e model.MintEligibility, amount uint64, minting, enabled bool) []Button {
	var buttons []Button
	label := mintLabel(amount, "Falcon", minting)
	if e.PresaleOpen {
		b := Button{Kind: model.Presale, Title: presaleButtonTitle, Label: label, Enabled: enabled}
		if cost, ok := model.ReadyUint(stats.TotalCost); ok {
			b.CostETH = FormatEther(cost)
		}
		buttons = append(buttons, b)
	}
	if e.WhitelistOpen {
		buttons = append(buttons, Button{
			Kind:    model.Whitelist,
			Title:   "Whitelist Mint",
			Detail:  "(" + uintText(e.WhitelistRemaining) + " remaining)",
			Label:   label,
			Enabled: enabled,
		})
	}
	return buttons
}

func whalesButtons(stats model.WhalesStats, e model.MintEligibility, amount uint64, minting, enabled bool) []Button {
	var buttons []Button
	if e.PresaleOpen {
		b := Button{Kind: model.Presale, Title: presaleButtonTitle, Label: mintLabel(amount, "Whale", minting), Enabled: enabled}
		if value, ok := WhalesPresaleValue(stats, amount); ok {
			b.CostETH = FormatEther(value)
		}
		buttons = append(buttons, b)
	}
	if e.HolderClaimAvailable {
		label := holderClaimLabel
		if minting {
			label = MintingLabel
		}
		buttons = append(buttons, Button{
			Kind:    model.HolderClaim,
			Title:   "Falcons Holder Mint",
			Detail:  holderClaimDetail,
			Label:   label,
			Enabled: !minting,
		})
	}
	return buttons
}

func mintLabel(amount uint64, noun string, minting bool) string {
	if minting {
		return MintingLabel
	}
	return "Mint " + plural(amount, noun)
}
