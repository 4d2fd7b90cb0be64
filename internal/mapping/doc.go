// Package mapping loads and validates declarative key-mapping documents.
//
// A mapping document describes the desired button configuration for one
// tablet device: the device descriptor (display name and device class) plus
// an ordered list of mapping rules. Each rule is serialized as a tuple of
// [property, parameter, value] with an optional trailing label, e.g.:
//
//	name: Wacom Intuos Pro M Pad pad
//	type: PAD
//	map:
//	  - [Button, "1", key a, copy]
//	  - [Button, "2", key b]
//
// Both YAML and JSON documents are supported; the format is chosen by file
// extension (.json selects JSON, everything else is parsed as YAML).
//
// # File Resolution
//
// When no explicit path is given, Locate tries an ordered list of candidate
// locations and uses the first that exists as a regular file:
//
//  1. $XDG_CONFIG_HOME/padmap/keymap.yaml (then keymap.json),
//     falling back to $HOME/.config when XDG_CONFIG_HOME is unset
//  2. the path named by the PADMAP_KEYMAP environment variable
//  3. /etc/padmap/keymap.yaml
//
// # Validation
//
// A document must carry all three top-level fields: name, type, and map.
// A missing field, an unreadable file, or a malformed rule tuple yields an
// *InvalidMappingError. Rule order is preserved; it controls display and
// application sequencing only.
package mapping
