package world

import "errors"

// Policy declines. None of them changes world state.
var (
	ErrNotPlaying        = errors.New("not playing")
	ErrReloading         = errors.New("reloading")
	ErrRateLimited       = errors.New("fire rate limited")
	ErrMagEmpty          = errors.New("magazine empty")
	ErrMagFull           = errors.New("magazine full")
	ErrNoReserve         = errors.New("no reserve ammo")
	ErrNotInSafeZone     = errors.New("not in safe zone")
	ErrShopClosed        = errors.New("shop closed")
	ErrInsufficientFunds = errors.New("insufficient funds")
	ErrUnknownItem       = errors.New("unknown shop item")
	ErrInvalidTransition = errors.New("invalid mode transition")
)
