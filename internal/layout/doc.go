// Package layout holds the static scaffolding data: the ordered directory
// set, the placeholder file table embedded from tree/, and the root workspace
// manifest. The tables are fixed at build time and never mutated; everything
// else in the tool is driven off them.
package layout
