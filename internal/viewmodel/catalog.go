package viewmodel

import "github.com/goodnatureofminers/cryptocator-backend/internal/model"

// CollectionInfo is the static copy shown on the collection picker.
type CollectionInfo struct {
	Collection        model.Collection `json:"collection"`
	Title             string           `json:"title"`
	Description       string           `json:"description"`
	Features          []string         `json:"features"`
	Action            string           `json:"action"`
	DetailTitle       string           `json:"-"`
	DetailDescription string           `json:"-"`
}

var Catalog = map[model.Collection]CollectionInfo{
	model.Falcons: {
		Collection:        model.Falcons,
		Title:             "Falcons Club",
		Description:       "Exclusive NFT collection with presale and whitelist minting",
		Features:          []string{"7777 Max Supply", "Tiered Pricing System", "Royalty Support"},
		Action:            "Explore Falcons",
		DetailTitle:       "Cryptocator Falcons Club",
		DetailDescription: "Exclusive NFT collection on Sepolia Testnet",
	},
	model.Whales: {
		Collection:        model.Whales,
		Title:             "Whales Club",
		Description:       "Premium NFT collection for Falcon holders with exclusive benefits",
		Features:          []string{"1520 Max Supply", "Free Claims for Falcons", "Presale Access"},
		Action:            "Explore Whales",
		DetailTitle:       "Cryptocator Whales",
		DetailDescription: "Exclusive NFT collection for Falcon holders on Sepolia Testnet",
	},
}

// CatalogList returns the picker cards in display order.
func CatalogList() []CollectionInfo {
	out := make([]CollectionInfo, 0, len(model.Collections))
	for _, c := range model.Collections {
		out = append(out, Catalog[c])
	}
	return out
}
