// Package features encodes geometry descriptors into the fixed-width numeric
// rows carried by the graph container.
//
// Row layouts are positional and stable: each row starts with a one-hot kind
// block, followed by scalar fields at fixed offsets. Fields that do not apply
// to an entity's kind are zero-filled, never omitted, so every row of a kind
// has the same width and a consumer can slice columns without per-row
// branching.
package features
