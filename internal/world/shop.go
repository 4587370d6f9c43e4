package world

import "fmt"

type ShopItem int

const (
	ItemAmmo ShopItem = iota
	ItemMedkit
	ItemDamage
)

func (it ShopItem) String() string {
	switch it {
	case ItemAmmo:
		return "ammo"
	case ItemMedkit:
		return "medkit"
	case ItemDamage:
		return "damage"
	default:
		return "unknown"
	}
}

// ShopItems lists the purchasable items in menu order.
var ShopItems = []ShopItem{ItemAmmo, ItemMedkit, ItemDamage}

// Price returns the cost of item under cfg, or false for an unknown item.
func (c Config) Price(item ShopItem) (int, bool) {
	switch item {
	case ItemAmmo:
		return c.AmmoPrice, true
	case ItemMedkit:
		return c.MedkitPrice, true
	case ItemDamage:
		return c.DamagePrice, true
	default:
		return 0, false
	}
}

// ItemLabel is the menu line for item, price included.
func (c Config) ItemLabel(item ShopItem) string {
	price, _ := c.Price(item)
	switch item {
	case ItemAmmo:
		return fmt.Sprintf("Ammo pack (+%d reserve)  $%d", c.AmmoAmount, price)
	case ItemMedkit:
		return fmt.Sprintf("Medkit (+%.0f HP)  $%d", c.MedkitHeal, price)
	case ItemDamage:
		return fmt.Sprintf("Damage upgrade (+%.0f%%)  $%d", (c.DamageUpgrade-1)*100, price)
	default:
		return item.String()
	}
}

// Buy spends cash on item. It only works while the shop is open and never
// changes anything when it declines.
func (w *World) Buy(item ShopItem) error {
	if w.Mode != ModeShop {
		return ErrShopClosed
	}

	price, ok := w.Cfg.Price(item)
	if !ok {
		return fmt.Errorf("%w: %d", ErrUnknownItem, int(item))
	}
	if w.Player.Cash < price {
		w.setHint(hintNoCash, false)
		return ErrInsufficientFunds
	}

	w.Player.Cash -= price
	w.Stats.CashSpent += price
	w.Stats.Purchases++

	switch item {
	case ItemAmmo:
		w.Player.Weapon.Reserve += w.Cfg.AmmoAmount
		w.setHint(fmt.Sprintf(hintBoughtAmmoFmt, w.Cfg.AmmoAmount), true)
	case ItemMedkit:
		w.Player.HP = minf(w.Player.HP+w.Cfg.MedkitHeal, w.Player.MaxHP)
		w.setHint(fmt.Sprintf(hintBoughtMedFmt, w.Cfg.MedkitHeal), true)
	case ItemDamage:
		w.Player.DamageMul *= w.Cfg.DamageUpgrade
		w.setHint(fmt.Sprintf(hintBoughtDmgFmt, (w.Cfg.DamageUpgrade-1)*100), true)
	}

	return nil
}
