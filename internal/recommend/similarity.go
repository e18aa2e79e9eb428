// Basketwise - Purchase History Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/basketwise

package recommend

import (
	"cmp"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// CosineSimilarity computes pairwise cosine similarity between the rows of m.
//
// For rows i and j the entry is dot(i, j) / (|i| * |j|). A row with zero norm
// has similarity 0 to every row, itself included, so downstream sums never
// see NaN. Only the upper triangle is computed; the result is exactly
// symmetric. Returns nil when m is nil or has no rows.
func CosineSimilarity(m mat.Matrix) *mat.SymDense {
	if m == nil {
		return nil
	}
	n, _ := m.Dims()
	if n == 0 {
		return nil
	}

	rows := make([][]float64, n)
	norms := make([]float64, n)
	for i := range rows {
		rows[i] = mat.Row(nil, i, m)
		norms[i] = floats.Norm(rows[i], 2)
	}

	sim := mat.NewSymDense(n, nil)
	for i := 0; i < n; i++ {
		if norms[i] == 0 {
			continue
		}
		sim.SetSym(i, i, 1.0)
		for j := i + 1; j < n; j++ {
			if norms[j] == 0 {
				continue
			}
			v := floats.Dot(rows[i], rows[j]) / (norms[i] * norms[j])
			// Rounding can push parallel vectors slightly above 1.
			sim.SetSym(i, j, min(v, 1.0))
		}
	}

	return sim
}

// SimilarityMatrix is a symmetric similarity table over one entity axis,
// paired with the index that maps entity IDs to positions.
type SimilarityMatrix[K cmp.Ordered] struct {
	index  *Index[K]
	values *mat.SymDense
}

// newSimilarityMatrix pairs computed values with their entity index.
func newSimilarityMatrix[K cmp.Ordered](index *Index[K], values *mat.SymDense) *SimilarityMatrix[K] {
	return &SimilarityMatrix[K]{index: index, values: values}
}

// Index returns the entity index of the matrix.
func (s *SimilarityMatrix[K]) Index() *Index[K] {
	return s.index
}

// At returns the similarity between positions i and j.
func (s *SimilarityMatrix[K]) At(i, j int) float64 {
	return s.values.At(i, j)
}

// Similarity returns the similarity between two entities, or 0 if either is unknown.
func (s *SimilarityMatrix[K]) Similarity(a, b K) float64 {
	i, ok := s.index.Position(a)
	if !ok {
		return 0
	}
	j, ok := s.index.Position(b)
	if !ok {
		return 0
	}
	return s.values.At(i, j)
}

// Len returns the number of entities on the axis.
func (s *SimilarityMatrix[K]) Len() int {
	return s.index.Len()
}
