// Package quote compares supplier offers of a price map.
//
// Money is summed with shopspring/decimal and rounded to cents before it is
// handed back as float64.
package quote

import (
	"strings"

	"gestao_compras/internal/domain/entities"

	"github.com/shopspring/decimal"
)

// OfferTotal is the priced view of one supplier offer.
type OfferTotal struct {
	Supplier         string  `json:"supplier"`
	TotalProducts    float64 `json:"totalProducts"`
	Freight          float64 `json:"freight"`
	TotalWithFreight float64 `json:"totalWithFreight"`
	DeliveryDeadline string  `json:"deliveryDeadline"`
	QuotedItems      int     `json:"quotedItems"`
}

// Comparison is the outcome of comparing every offer of a price map.
type Comparison struct {
	Totals       []OfferTotal       `json:"totals"`
	LowestPrices map[string]float64 `json:"lowestPrices"`
	ItemWinners  map[string]string  `json:"itemWinners"`
	Winner       *OfferTotal        `json:"winner,omitempty"`
	// Spread is the percentage between the most expensive and the winning total.
	Spread *float64 `json:"spread,omitempty"`
}

// LowestPrices returns, per item id, the minimum strictly positive price.
// Items nobody bid on are absent from the map.
func LowestPrices(pm entities.PriceMap) map[string]float64 {
	lowest := make(map[string]float64, len(pm.Items))
	for _, item := range pm.Items {
		for _, offer := range pm.Offers {
			p, ok := offer.Prices[item.ID]
			if !ok || p <= 0 {
				continue
			}
			if cur, seen := lowest[item.ID]; !seen || p < cur {
				lowest[item.ID] = p
			}
		}
	}
	return lowest
}

// ItemWinners names, per item id, the first supplier offering the lowest price.
func ItemWinners(pm entities.PriceMap) map[string]string {
	lowest := LowestPrices(pm)
	winners := make(map[string]string, len(lowest))
	for _, item := range pm.Items {
		best, ok := lowest[item.ID]
		if !ok {
			continue
		}
		for _, offer := range pm.Offers {
			if offer.Prices[item.ID] == best {
				winners[item.ID] = offer.Supplier
				break
			}
		}
	}
	return winners
}

// Totals prices every offer. A missing price counts as zero.
func Totals(pm entities.PriceMap) []OfferTotal {
	out := make([]OfferTotal, 0, len(pm.Offers))
	for _, offer := range pm.Offers {
		products := decimal.Zero
		quoted := 0
		for _, item := range pm.Items {
			p := offer.Prices[item.ID]
			if p > 0 {
				quoted++
			}
			line := decimal.NewFromFloat(p).Mul(decimal.NewFromFloat(item.Quantity))
			products = products.Add(line)
		}
		freight := decimal.NewFromFloat(offer.Freight)
		out = append(out, OfferTotal{
			Supplier:         offer.Supplier,
			TotalProducts:    products.Round(2).InexactFloat64(),
			Freight:          freight.Round(2).InexactFloat64(),
			TotalWithFreight: products.Add(freight).Round(2).InexactFloat64(),
			DeliveryDeadline: offer.DeliveryDeadline,
			QuotedItems:      quoted,
		})
	}
	return out
}

// Compare computes totals, lowest prices and the winning offer. Offers whose
// total is not strictly positive can never win.
func Compare(pm entities.PriceMap) Comparison {
	c := Comparison{
		Totals:       Totals(pm),
		LowestPrices: LowestPrices(pm),
		ItemWinners:  ItemWinners(pm),
	}

	var maxTotal float64
	for i := range c.Totals {
		t := c.Totals[i]
		if t.TotalWithFreight <= 0 {
			continue
		}
		if c.Winner == nil || t.TotalWithFreight < c.Winner.TotalWithFreight {
			winner := t
			c.Winner = &winner
		}
		if t.TotalWithFreight > maxTotal {
			maxTotal = t.TotalWithFreight
		}
	}
	if c.Winner != nil && c.Winner.TotalWithFreight > 0 {
		spread := decimal.NewFromFloat(maxTotal).
			Div(decimal.NewFromFloat(c.Winner.TotalWithFreight)).
			Sub(decimal.NewFromInt(1)).
			Mul(decimal.NewFromInt(100)).
			Round(2).
			InexactFloat64()
		c.Spread = &spread
	}
	return c
}

// SetPrice returns a copy of offers where only the supplier's price for the
// item is replaced. An unknown supplier gets a new offer.
func SetPrice(offers []entities.SupplierOffer, supplier, itemID string, price float64) []entities.SupplierOffer {
	return updateOffer(offers, supplier, func(o *entities.SupplierOffer) {
		o.Prices[itemID] = price
	})
}

// SetFreight replaces the freight of one supplier's offer.
func SetFreight(offers []entities.SupplierOffer, supplier string, freight float64) []entities.SupplierOffer {
	return updateOffer(offers, supplier, func(o *entities.SupplierOffer) {
		o.Freight = freight
	})
}

// SetDeliveryDeadline replaces the delivery deadline of one supplier's offer.
func SetDeliveryDeadline(offers []entities.SupplierOffer, supplier, deadline string) []entities.SupplierOffer {
	return updateOffer(offers, supplier, func(o *entities.SupplierOffer) {
		o.DeliveryDeadline = deadline
	})
}

func updateOffer(offers []entities.SupplierOffer, supplier string, mutate func(*entities.SupplierOffer)) []entities.SupplierOffer {
	supplier = strings.TrimSpace(supplier)
	out := make([]entities.SupplierOffer, len(offers), len(offers)+1)
	copy(out, offers)

	for i := range out {
		if out[i].Supplier != supplier {
			continue
		}
		replaced := cloneOffer(out[i])
		mutate(&replaced)
		out[i] = replaced
		return out
	}

	fresh := entities.SupplierOffer{Supplier: supplier, Prices: map[string]float64{}}
	mutate(&fresh)
	return append(out, fresh)
}

func cloneOffer(o entities.SupplierOffer) entities.SupplierOffer {
	prices := make(map[string]float64, len(o.Prices))
	for k, v := range o.Prices {
		prices[k] = v
	}
	o.Prices = prices
	return o
}
