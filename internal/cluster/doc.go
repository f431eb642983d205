// Package cluster implements the clustering engine behind mdclust.
//
// Three interchangeable strategies partition a set of items given a pairwise
// adjacency matrix (max-clique, daura) or a pairwise distance matrix (qt),
// optionally weighted per item:
//
//   - MaxClique repeatedly extracts the maximum-weight maximal clique from
//     the similarity graph.
//   - Daura repeatedly picks the item with the highest weighted degree and
//     collapses its full neighborhood into a cluster.
//   - QT repeatedly grows the most compact cluster reachable under a distance
//     cutoff, breaking weight ties by smaller realized diameter.
//
// All strategies share the same contract: the caller's matrix and weight
// slices are never mutated, emitted clusters contain original item indices,
// and results are deterministic including all tie-break rules.
package cluster
