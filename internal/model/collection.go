// Package model holds the view-model values shared by the mint console components.
package model

import "fmt"

type Collection string

var (
	Falcons Collection = "falcons"
	Whales  Collection = "whales"
)

// Collections lists the cards in display order.
var Collections = []Collection{Falcons, Whales}

// ParseCollection validates a collection name coming from the outside.
func ParseCollection(s string) (Collection, error) {
	switch Collection(s) {
	case Falcons, Whales:
		return Collection(s), nil
	default:
		return "", fmt.Errorf("unknown collection %q", s)
	}
}

type MintKind string

var (
	Presale     MintKind = "presale"
	Whitelist   MintKind = "whitelist"
	HolderClaim MintKind = "holderClaim"
)

// Action identifies one mint button.
type Action struct {
	Collection Collection
	Kind       MintKind
}

func (a Action) String() string {
	return string(a.Collection) + "/" + string(a.Kind)
}

var (
	FalconsPresale     = Action{Collection: Falcons, Kind: Presale}
	FalconsWhitelist   = Action{Collection: Falcons, Kind: Whitelist}
	WhalesPresale      = Action{Collection: Whales, Kind: Presale}
	WhalesHolderClaim  = Action{Collection: Whales, Kind: HolderClaim}
	supportedMintKinds = map[Action]struct{}{
		FalconsPresale:    {},
		FalconsWhitelist:  {},
		WhalesPresale:     {},
		WhalesHolderClaim: {},
	}
)

// ParseAction resolves a collection/kind pair into one of the four mint buttons.
func ParseAction(collection, kind string) (Action, error) {
	c, err := ParseCollection(collection)
	if err != nil {
		return Action{}, err
	}
	a := Action{Collection: c, Kind: MintKind(kind)}
	if _, ok := supportedMintKinds[a]; !ok {
		return Action{}, fmt.Errorf("mint kind %q not supported for %s", kind, c)
	}
	return a, nil
}
