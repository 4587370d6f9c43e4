package world

import "horde-shop/internal/shared/input"

type Msg interface{ isMsg() }

// MsgInput replaces the held input (movement, aim, fire) used by later ticks.
type MsgInput struct{ Input input.State }

func (MsgInput) isMsg() {}

// MsgBegin leaves the start screen.
type MsgBegin struct{}

func (MsgBegin) isMsg() {}

type MsgReload struct{}

func (MsgReload) isMsg() {}

// MsgToggleShop opens the shop inside the safe zone, or closes it.
type MsgToggleShop struct{}

func (MsgToggleShop) isMsg() {}

type MsgCloseShop struct{}

func (MsgCloseShop) isMsg() {}

type MsgBuy struct{ Item ShopItem }

func (MsgBuy) isMsg() {}

type MsgRestart struct{}

func (MsgRestart) isMsg() {}
