// Package output writes generated documents to disk.
//
// Each game gets one multi-document YAML file in the destination
// directory, named after the game with whitespace folded to underscores.
// Every record carries a unique name, a description, the game name, and
// the game's complete option assignment in schema declaration order:
//
//	name: Hollow Knight3
//	description: Hollow Knight3
//	game: Hollow Knight
//	Hollow Knight:
//	  goal: godhome
//	  grub_count: 23
//	---
//	…
package output
