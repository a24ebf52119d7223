// Package watershed grows key-stroke seeds over a height-map by priority
// flooding and resolves thin, dominated regions with a conflict-driven
// cleanup pass.
//
// # Growth
//
// Every 4-connected component of a stroke's seed becomes a group. Seed
// pixels enter a priority queue ordered by (level, distance, insertion
// order), where level is the height-map value of the pixel and distance
// counts steps taken without changing level. Popping a task claims its
// pixel for the task's group if the pixel is still free, updates edge
// statistics against the four neighbours and enqueues the free ones.
//
// # Planes
//
// Statistics are kept per (group, level) plane:
//
//	positive   edges to the outside of the rect, or to a higher level of the same group
//	negative   edges to a lower level of the same group
//	foreign    edges to another colour, or to the same colour at another level
//	ally       edges to another group of the same colour at the same level
//	filled     claimed pixels
//
// Foreign edges at equal level between different colours are also recorded
// as conflicts: each plane keeps, per opposing group, the multiset of its
// own border pixels on that edge.
//
// # Cleanup
//
// With a positive cleanup amount, planes with conflicts are visited from
// the shortest total border up. A plane whose foreign share exceeds
//
//	base + span·(1 − amount)
//
// and whose conflicting neighbours are all larger (min ratio > MinMetric,
// mean ratio > MeanMetric) is removed: its border pixels are handed to the
// opposing groups and growth is rerun with the removed group as the
// background, so neighbours flood the freed area.
//
// A Worker is single-use and not safe for concurrent use. The growth loop
// does not poll for cancellation; progress is reported through
// progress.Updater every progress.Cadence claimed pixels.
package watershed
