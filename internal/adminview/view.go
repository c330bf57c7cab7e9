// Package adminview models the admin console's transient view state as an
// explicit state machine. Keeping the list and provisioning flows as typed
// states makes illegal combinations, like purchasing before any inventory is
// loaded, unrepresentable instead of merely unlikely.
//
// Nothing here persists. A new View starts over from scratch, matching a
// page reload.
package adminview

import (
	"fmt"

	"github.com/nordlys/outreach-admin/internal/scaledmail"
)

// ListState is the organization list flow.
type ListState string

const (
	ListIdle    ListState = "idle"
	ListLoading ListState = "loading-list"
	ListShown   ListState = "list-shown"
)

// ProvisioningState is the inventory/purchase modal flow.
type ProvisioningState string

const (
	ProvisioningClosed      ProvisioningState = "closed"
	LoadingInventory        ProvisioningState = "loading-inventory"
	InventoryShown          ProvisioningState = "inventory-shown"
	InventoryShownWithError ProvisioningState = "inventory-shown-with-error"
	Purchasing              ProvisioningState = "purchasing"
)

// Totals is the price of the current selection.
type Totals struct {
	OneTime float64
	Monthly float64
}

type View struct {
	list ListState
	prov ProvisioningState

	inventory *scaledmail.PreWarmInboxes
	selected  map[string]bool
	lastError string
}

func New() *View {
	return &View{
		list:     ListIdle,
		prov:     ProvisioningClosed,
		selected: map[string]bool{},
	}
}

func (v *View) ListState() ListState                 { return v.list }
func (v *View) ProvisioningState() ProvisioningState { return v.prov }
func (v *View) LastError() string                    { return v.lastError }

// BeginListLoad starts loading the organization list. Allowed from idle and
// from a shown list (refresh).
func (v *View) BeginListLoad() error {
	if v.list == ListLoading {
		return fmt.Errorf("list load already in flight")
	}
	v.list = ListLoading
	return nil
}

func (v *View) ListLoaded() error {
	if v.list != ListLoading {
		return fmt.Errorf("list not loading (state %s)", v.list)
	}
	v.list = ListShown
	return nil
}

// OpenProvisioning opens the purchase modal and starts the inventory fetch.
func (v *View) OpenProvisioning() error {
	if v.prov != ProvisioningClosed {
		return fmt.Errorf("provisioning already open (state %s)", v.prov)
	}
	v.prov = LoadingInventory
	return nil
}

// InventoryLoaded stores the fetched inventory and clears any previous
// selection. Inventory is never carried over between opens.
func (v *View) InventoryLoaded(inv *scaledmail.PreWarmInboxes) error {
	if v.prov != LoadingInventory {
		return fmt.Errorf("inventory not loading (state %s)", v.prov)
	}
	v.inventory = inv
	v.selected = map[string]bool{}
	v.lastError = ""
	v.prov = InventoryShown
	return nil
}

// ToggleSelection flips one inventory item in or out of the selection. The
// item must exist in the loaded inventory.
func (v *View) ToggleSelection(id string) error {
	if v.prov != InventoryShown && v.prov != InventoryShownWithError {
		return fmt.Errorf("no inventory shown (state %s)", v.prov)
	}
	if v.lookup(id) == nil {
		return fmt.Errorf("unknown inventory item %q", id)
	}
	if v.selected[id] {
		delete(v.selected, id)
	} else {
		v.selected[id] = true
	}
	return nil
}

// Selected returns the selected inventory item ids.
func (v *View) Selected() []string {
	ids := make([]string, 0, len(v.selected))
	for id := range v.selected {
		ids = append(ids, id)
	}
	return ids
}

// SelectionTotals folds the selection into one-time and monthly price totals.
func (v *View) SelectionTotals() Totals {
	var t Totals
	for id := range v.selected {
		if item := v.lookup(id); item != nil {
			t.OneTime += item.Pricing.OneTimePrice
			t.Monthly += item.Pricing.MonthlyPrice
		}
	}
	return t
}

// BeginPurchase submits the selection. The purchase control is disabled
// while a purchase is in flight, so re-entry is a bug, not a race.
func (v *View) BeginPurchase() error {
	if v.prov != InventoryShown && v.prov != InventoryShownWithError {
		return fmt.Errorf("no inventory shown (state %s)", v.prov)
	}
	if len(v.selected) == 0 {
		return fmt.Errorf("nothing selected")
	}
	v.prov = Purchasing
	return nil
}

// PurchaseSucceeded closes the modal and discards all transient state.
func (v *View) PurchaseSucceeded() error {
	if v.prov != Purchasing {
		return fmt.Errorf("no purchase in flight (state %s)", v.prov)
	}
	v.reset()
	return nil
}

// PurchaseFailed returns to the inventory with the failure shown. The
// selection is kept so the admin can retry without re-picking.
func (v *View) PurchaseFailed(msg string) error {
	if v.prov != Purchasing {
		return fmt.Errorf("no purchase in flight (state %s)", v.prov)
	}
	v.lastError = msg
	v.prov = InventoryShownWithError
	return nil
}

// Close dismisses the modal. Not allowed mid-purchase: the outcome of an
// in-flight charge must be observed.
func (v *View) Close() error {
	if v.prov == ProvisioningClosed {
		return nil
	}
	if v.prov == Purchasing {
		return fmt.Errorf("purchase in flight")
	}
	v.reset()
	return nil
}

func (v *View) reset() {
	v.prov = ProvisioningClosed
	v.inventory = nil
	v.selected = map[string]bool{}
	v.lastError = ""
}

func (v *View) lookup(id string) *scaledmail.PreWarmInbox {
	if v.inventory == nil {
		return nil
	}
	for i := range v.inventory.Google {
		if v.inventory.Google[i].ID == id {
			return &v.inventory.Google[i]
		}
	}
	for i := range v.inventory.Outlook {
		if v.inventory.Outlook[i].ID == id {
			return &v.inventory.Outlook[i]
		}
	}
	return nil
}
