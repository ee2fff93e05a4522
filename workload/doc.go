// Package workload provides the standard ggbench suite: thirty rendering
// scenarios covering text layout, textured fills, grid meshes, procedural
// ring geometry with flat, per-quad-lit and per-pixel-lit shading, icon
// grids and list views, all drawn through gg.
//
// The suite is ordered and index-stable: results reported by the harness
// line up with Suite.Workloads. Textures are generated procedurally at
// construction; fonts are supplied by the caller.
package workload
