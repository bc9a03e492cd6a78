// Package topology extracts the topological structure of a B-Rep shape as
// indexed entity lists and relation pair lists.
//
// Extraction deduplicates entity occurrences by identity token: the first
// occurrence of a token claims the next dense index, later occurrences map
// to the same index. Because the oracle's traversal order is deterministic,
// extraction of the same shape always yields the same indices. This
// reproducibility is a correctness requirement for downstream feature
// matrices, not an optimization.
//
// Incidence relations keep their multiplicity: a closed edge that repeats
// its bounding vertex produces two vertex→edge pairs, and a seam edge listed
// twice on a face's boundary produces two edge→face pairs. Face adjacency,
// by contrast, is deduplicated: each unordered face pair appears exactly
// once no matter how many edges the two faces share, materialized as two
// directed pairs.
package topology
