package services

import "sort"

// Pricing maps league types to their entry fee in rupees
type Pricing struct {
	prices   map[string]int64
	fallback int64
}

// NewPricing copies prices so later changes to the map do not leak in
func NewPricing(prices map[string]int64, fallback int64) *Pricing {
	p := &Pricing{prices: make(map[string]int64, len(prices)), fallback: fallback}
	for k, v := range prices {
		p.prices[k] = v
	}
	return p
}

// PriceFor returns the fee of a league. Leagues that were removed from the
// configuration after players signed up fall back to the default fee.
func (p *Pricing) PriceFor(leagueType string) int64 {
	if price, ok := p.prices[leagueType]; ok {
		return price
	}
	return p.fallback
}

// IsKnown reports whether new signups may use leagueType
func (p *Pricing) IsKnown(leagueType string) bool {
	_, ok := p.prices[leagueType]
	return ok
}

// Leagues lists the configured league types in name order
func (p *Pricing) Leagues() []string {
	out := make([]string, 0, len(p.prices))
	for k := range p.prices {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
