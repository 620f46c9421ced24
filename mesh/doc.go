// Package mesh: see mesh.go for the Neighborhood interface and the
// AdjacencyMesh reference implementation.
package mesh
