// Package registry loads the server's static dynamic-registry tables
// (biomes, dimension types, damage types, creature variants, painting
// variants) from embedded JSON, as a pure "load table of T by key"
// collaborator — out of scope for bespoke logic per §1.
package registry

import (
	"embed"
	"encoding/json"
	"fmt"

	"github.com/cespare/xxhash/v2"
)

//go:embed data/*.json
var dataFS embed.FS

// Entry is one row of a registry table: its identifier and its raw
// tagged-tree-compatible JSON element, sent verbatim in RegistryData.
type Entry struct {
	ID      string          `json:"id"`
	Element json.RawMessage `json:"element"`
}

// Table is a loaded registry: its wire identifier (e.g.
// "minecraft:worldgen/biome") and ordered entries plus a checksum of the
// source bytes it was parsed from. Verify re-derives the checksum from
// the embedded asset and fails if it differs from the stored Checksum.
type Table struct {
	RegistryID string
	Entries    []Entry
	Checksum   uint64
}

// tableFiles maps each registry's wire identifier to its embedded JSON
// file, covering every table RegistryData must send per §4.5's
// supplemented list (biomes, dimension types, damage types, every
// creature variant, painting variants).
var tableFiles = map[string]string{
	"minecraft:worldgen/biome":     "data/biomes.json",
	"minecraft:dimension_type":     "data/dimension_types.json",
	"minecraft:damage_type":        "data/damage_types.json",
	"minecraft:cat_variant":        "data/cat_variants.json",
	"minecraft:chicken_variant":    "data/chicken_variants.json",
	"minecraft:cow_variant":        "data/cow_variants.json",
	"minecraft:frog_variant":       "data/frog_variants.json",
	"minecraft:pig_variant":        "data/pig_variants.json",
	"minecraft:wolf_sound_variant": "data/wolf_sound_variants.json",
	"minecraft:wolf_variant":       "data/wolf_variants.json",
	"minecraft:painting_variant":   "data/painting_variants.json",
}

// RegistryIDs returns the full, fixed list of dynamic registries the
// Config state must send, in a stable order.
func RegistryIDs() []string {
	return []string{
		"minecraft:worldgen/biome",
		"minecraft:dimension_type",
		"minecraft:damage_type",
		"minecraft:cat_variant",
		"minecraft:chicken_variant",
		"minecraft:cow_variant",
		"minecraft:frog_variant",
		"minecraft:pig_variant",
		"minecraft:wolf_sound_variant",
		"minecraft:wolf_variant",
		"minecraft:painting_variant",
	}
}

// Load reads and parses every known registry table from the embedded
// JSON assets, failing fast if any is malformed.
func Load() (map[string]*Table, error) {
	out := make(map[string]*Table, len(tableFiles))
	for registryID, path := range tableFiles {
		raw, err := dataFS.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("registry: read %s: %w", path, err)
		}
		var entries []Entry
		if err := json.Unmarshal(raw, &entries); err != nil {
			return nil, fmt.Errorf("registry: parse %s: %w", path, err)
		}
		out[registryID] = &Table{
			RegistryID: registryID,
			Entries:    entries,
			Checksum:   xxhash.Sum64(raw),
		}
	}
	return out, nil
}

// Verify re-reads every embedded registry asset and confirms its
// checksum still matches the Checksum field of the corresponding loaded
// Table, and fails if a table is missing. Entries are not re-hashed, so
// a change to a Table's Entries after Load is not detected.
// Called once at startup, after Load.
func Verify(tables map[string]*Table) error {
	for registryID, path := range tableFiles {
		t, ok := tables[registryID]
		if !ok {
			return fmt.Errorf("registry: no loaded table for %s", registryID)
		}
		raw, err := dataFS.ReadFile(path)
		if err != nil {
			return fmt.Errorf("registry: read %s: %w", path, err)
		}
		if sum := xxhash.Sum64(raw); sum != t.Checksum {
			return fmt.Errorf("registry: checksum mismatch for %s: loaded table no longer matches its source", registryID)
		}
	}
	return nil
}
