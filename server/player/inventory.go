// Package player implements the Player data model: an entity plus a
// connection handle, profile, owning world, 54-slot inventory, game
// mode, chunk-streaming queue and last-keep-alive timestamp.
package player

import "sync"

// InventorySize is the player inventory's fixed slot count per §3 (this
// spec's 54 slots wins over the narrower stub the original prototyped).
const InventorySize = 54

// ItemStack is a material tag, count, and a map from component id to a
// typed payload, per §3. Component payloads are intentionally
// represented as an opaque map here: their per-id schema belongs to the
// packet registry (C3), not the inventory model.
type ItemStack struct {
	Item       string
	Count      int32
	Components map[int32]any
}

// Empty reports whether the slot holds no stack.
func (s ItemStack) Empty() bool { return s.Item == "" || s.Count <= 0 }

// Inventory is the player's fixed 54-slot item-stack storage.
type Inventory struct {
	mu    sync.RWMutex
	slots [InventorySize]ItemStack
}

// Get returns the stack in slot i.
func (inv *Inventory) Get(i int) ItemStack {
	inv.mu.RLock()
	defer inv.mu.RUnlock()
	return inv.slots[i]
}

// Set replaces the stack in slot i.
func (inv *Inventory) Set(i int, stack ItemStack) {
	inv.mu.Lock()
	defer inv.mu.Unlock()
	inv.slots[i] = stack
}

// Clear empties every slot.
func (inv *Inventory) Clear() {
	inv.mu.Lock()
	defer inv.mu.Unlock()
	inv.slots = [InventorySize]ItemStack{}
}
