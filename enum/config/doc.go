// Package config parses hyperenum run configurations.
//
// A run configuration is a multi-document YAML file, one document per
// game. Each document names the game, the options to enumerate with their
// specs, the fallback behavior for every other option, and optional fixed
// entries merged into every generated document:
//
//	game: Hollow Knight
//	options:
//	  goal: all                          # enumerate every declared value
//	  grub_count: 4                      # split a range into 4+2 points
//	  white_palace: [nothing, kingfragment]
//	others: default                      # default | random | minimum | maximum
//	fixed:
//	  progression_balancing: 0
//	---
//	game: …
//
// Spec shapes:
//
// The scalar "all" enumerates the full domain. A YAML sequence enumerates
// exactly those values. A bare integer is a splits count for range
// options. Any other bare scalar is shorthand for a single-value list.
package config
