package world

// Hint is the latest user-facing message. OK drives the success styling.
type Hint struct {
	Text string
	OK   bool
}

const (
	hintBegin         = "Survive. Loot cash. Safe Zone = shop."
	hintShopOpen      = "Shop open. E or ESC to close."
	hintShopClosed    = "Back to surviving."
	hintSafeZone      = "SAFE ZONE: press E to shop."
	hintNotInZone     = "The shop only opens inside the Safe Zone."
	hintDead          = "You died. Restart to try again."
	hintRestarted     = "Restarted. Don't get boxed in."
	hintEmpty         = "Empty. Press R to reload."
	hintNoReserve     = "No reserve ammo. Buy ammo in shop."
	hintReloading     = "Reloading..."
	hintReloaded      = "Reloaded."
	hintChewed        = "Getting chewed! Move!"
	hintNoCash        = "Not enough cash."
	hintBoughtAmmoFmt = "Bought ammo pack (+%d)."
	hintBoughtMedFmt  = "Healed +%.0f HP."
	hintBoughtDmgFmt  = "Damage increased (+%.0f%%)."
	hintPickupFmt     = "Picked up $%d."
	hintWaveFmt       = "Wave %d incoming."
)

func (w *World) setHint(text string, ok bool) {
	w.Hint = Hint{Text: text, OK: ok}
}
