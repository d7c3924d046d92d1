// Package gridio reads and writes staggered grid descriptions.
//
// A description is either explicit:
//
//	name: channel
//	nbulk_cells: 1
//	ilower_wall: 1
//	positions: [-0.5, 0, 0.5, 1, 1.5]
//
// or uniform:
//
//	uniform:
//	  cells: 64
//	  ghosts: 2
//	  lower: 0
//	  upper: 1
//
// Supported encodings are YAML, JSON and MessagePack, chosen explicitly or
// from the file extension (.yaml/.yml, .json, .msgpack/.mpk).
//
// Structural problems (both or neither of positions/uniform, negative
// counts) are reported as ErrInvalidDescription. Grid preconditions are
// left to grid1d, and its sentinels reach the caller intact through Build.
package gridio
