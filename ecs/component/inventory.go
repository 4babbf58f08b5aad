package component

const DefaultInventoryCapacity = 3

// Inventory holds picked-up pills in slot order. Removing a pill shifts the
// later ones down a slot.
type Inventory struct {
	pills    []Pill
	capacity int
}

func NewInventory(capacity int) Inventory {
	if capacity <= 0 {
		capacity = DefaultInventoryCapacity
	}
	return Inventory{pills: make([]Pill, 0, capacity), capacity: capacity}
}

// Add stores p and reports false when the inventory is full.
func (inv *Inventory) Add(p Pill) bool {
	if len(inv.pills) >= inv.capacity {
		return false
	}
	inv.pills = append(inv.pills, p)
	return true
}

// Remove takes the pill in slot i out of the inventory.
func (inv *Inventory) Remove(i int) (Pill, bool) {
	if i < 0 || i >= len(inv.pills) {
		return Pill{}, false
	}
	p := inv.pills[i]
	inv.pills = append(inv.pills[:i], inv.pills[i+1:]...)
	return p, true
}

func (inv *Inventory) Get(i int) (Pill, bool) {
	if i < 0 || i >= len(inv.pills) {
		return Pill{}, false
	}
	return inv.pills[i], true
}

func (inv *Inventory) Pills() []Pill { return append([]Pill(nil), inv.pills...) }
func (inv *Inventory) Len() int      { return len(inv.pills) }
func (inv *Inventory) Capacity() int { return inv.capacity }
func (inv *Inventory) Full() bool    { return len(inv.pills) >= inv.capacity }

var InventoryComponent = NewComponent[Inventory]()
