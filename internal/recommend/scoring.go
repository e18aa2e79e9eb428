// Basketwise - Purchase History Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/basketwise

package recommend

import (
	"slices"
	"sort"
)

// Recommend returns up to topN product names for a customer, best first.
//
// A topN of zero or less uses the configured default. Customers absent from
// the model receive the cold-start list instead of an error. Products the
// customer already bought are never returned on the personalized path.
func (m *Model) Recommend(customerID, topN int) []string {
	if topN <= 0 {
		topN = m.scoring.DefaultTopN
	}

	ranked, ok := m.Rank(customerID)
	if !ok {
		return m.ColdStart(topN)
	}

	if len(ranked) > topN {
		ranked = ranked[:topN]
	}

	names := make([]string, len(ranked))
	for i, r := range ranked {
		names[i] = r.Product
	}
	return names
}

// ColdStart returns the fallback list truncated to topN.
func (m *Model) ColdStart(topN int) []string {
	return coldStart(m.coldStartItems, topN)
}

func coldStart(items []string, topN int) []string {
	if topN > len(items) {
		topN = len(items)
	}
	return slices.Clone(items[:topN])
}

// Rank scores every candidate product for a customer and returns them sorted
// by descending score. Ties keep the order in which products first received
// a contribution. The second return is false for an unknown customer.
func (m *Model) Rank(customerID int) ([]Recommendation, bool) {
	row, ok := m.matrix.Customers().Position(customerID)
	if !ok {
		return nil, false
	}
	if m.rankings == nil {
		return m.rank(row), true
	}

	ranked := m.rankings.GetOrAdd(customerID, func() []Recommendation {
		return m.rank(row)
	})
	return slices.Clone(ranked), true
}

func (m *Model) rank(row int) []Recommendation {
	s := &scorer{
		quantities: m.matrix.Row(row),
		products:   m.matrix.Products(),
		board:      newScoreBoard(),
	}

	s.itemSimilarity(m.productSim)
	s.peerCustomers(m.customerSim, row, m.matrix, m.scoring.PeerCount)
	s.coPurchases(m.patterns, m.patternKeys, m.scoring.PatternMinCount, m.scoring.PatternWeight)

	return s.board.ranked()
}

// scoreBoard accumulates contributions per product and remembers the order
// in which products first appeared.
type scoreBoard struct {
	scores map[string]float64
	order  []string
}

func newScoreBoard() *scoreBoard {
	return &scoreBoard{scores: make(map[string]float64)}
}

func (b *scoreBoard) add(product string, score float64) {
	if _, seen := b.scores[product]; !seen {
		b.order = append(b.order, product)
	}
	b.scores[product] += score
}

func (b *scoreBoard) ranked() []Recommendation {
	recs := make([]Recommendation, len(b.order))
	for i, product := range b.order {
		recs[i] = Recommendation{Product: product, Score: b.scores[product]}
	}
	sort.SliceStable(recs, func(i, j int) bool {
		return recs[i].Score > recs[j].Score
	})
	return recs
}

// scorer computes the three signals for one customer row.
type scorer struct {
	// quantities is the customer's row of the interaction matrix.
	quantities []float64
	products   *Index[string]
	board      *scoreBoard
}

func (s *scorer) purchased(col int) bool {
	return s.quantities[col] > 0
}

// itemSimilarity credits each unpurchased product with its best single
// analogous purchase: max over purchased p of sim(candidate, p) * quantity(p).
func (s *scorer) itemSimilarity(productSim *SimilarityMatrix[string]) {
	var bought []int
	for col := range s.quantities {
		if s.purchased(col) {
			bought = append(bought, col)
		}
	}
	if len(bought) == 0 {
		return
	}

	for candidate := range s.quantities {
		if s.purchased(candidate) {
			continue
		}

		best := productSim.At(candidate, bought[0]) * s.quantities[bought[0]]
		for _, p := range bought[1:] {
			if v := productSim.At(candidate, p) * s.quantities[p]; v > best {
				best = v
			}
		}
		s.board.add(s.products.ID(candidate), best)
	}
}

// peerCustomers adds each of the most similar customers' similarity to every
// product that peer bought and the target did not.
func (s *scorer) peerCustomers(customerSim *SimilarityMatrix[int], self int, matrix *InteractionMatrix, peerCount int) {
	type peer struct {
		row        int
		similarity float64
	}

	peers := make([]peer, 0, customerSim.Len())
	for other := 0; other < customerSim.Len(); other++ {
		if other == self {
			continue
		}
		peers = append(peers, peer{row: other, similarity: customerSim.At(self, other)})
	}

	sort.SliceStable(peers, func(i, j int) bool {
		return peers[i].similarity > peers[j].similarity
	})
	if len(peers) > peerCount {
		peers = peers[:peerCount]
	}

	for _, p := range peers {
		for col, q := range matrix.Row(p.row) {
			if q > 0 && !s.purchased(col) {
				s.board.add(s.products.ID(col), p.similarity)
			}
		}
	}
}

// coPurchases credits the unpurchased member of each frequent pair when the
// customer bought exactly one of the two products.
func (s *scorer) coPurchases(patterns PatternCounts, keys []PairKey, minCount int, weight float64) {
	bought := func(product string) bool {
		col, ok := s.products.Position(product)
		return ok && s.purchased(col)
	}

	for _, key := range keys {
		count := patterns[key]
		if count <= minCount {
			continue
		}

		hasA, hasB := bought(key.A), bought(key.B)
		switch {
		case hasA && !hasB:
			s.board.add(key.B, float64(count)*weight)
		case hasB && !hasA:
			s.board.add(key.A, float64(count)*weight)
		}
	}
}
