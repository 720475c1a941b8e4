package api

import (
	"errors"
	"fmt"
	"math"
)

// Пределы для числовых полей, которым нельзя доверять с провода.
const (
	MaxDiceSides   = 1000
	MaxDiceQty     = 100
	MaxMapSide     = 8192
	MaxUsernameLen = 64
)

// Validator - интерфейс, который могут реализовать DTO.
// Обертка хендлера вызывает Validate автоматически до логики.
type Validator interface {
	Validate() error
}

func validCoord(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

func (p JoinGamePayload) Validate() error {
	if p.Code == "" {
		return errors.New("room code is required")
	}
	if len(p.Code) != 4 {
		return errors.New("room code must be 4 characters")
	}
	return nil
}

func (p MoveTokenPayload) Validate() error {
	if p.ID == "" {
		return errors.New("token id is required")
	}
	if !validCoord(p.X) || !validCoord(p.Y) {
		return errors.New("coordinates must be finite numbers")
	}
	return nil
}

func (p UpdateMapPayload) Validate() error {
	if p.Width <= 0 || p.Height <= 0 {
		return errors.New("map dimensions must be positive")
	}
	if p.Width > MaxMapSide || p.Height > MaxMapSide {
		return fmt.Errorf("map dimensions must not exceed %d", MaxMapSide)
	}
	return nil
}

func (p AssignTokenPayload) Validate() error {
	if p.TokenID == "" {
		return errors.New("tokenId is required")
	}
	return nil
}

func (p AddTokenPayload) Validate() error {
	if !validCoord(p.X) || !validCoord(p.Y) {
		return errors.New("coordinates must be finite numbers")
	}
	if p.HP < 0 || p.MaxHP < 0 {
		return errors.New("hp must not be negative")
	}
	if p.MaxHP > 0 && p.HP > p.MaxHP {
		return errors.New("hp must not exceed maxHp")
	}
	return nil
}

func (p RemoveTokenPayload) Validate() error {
	if p.TokenID == "" {
		return errors.New("tokenId is required")
	}
	return nil
}

func (p UpdateHPPayload) Validate() error {
	if p.TokenID == "" {
		return errors.New("tokenId is required")
	}
	if p.HP < 0 || p.MaxHP < 0 {
		return errors.New("hp must not be negative")
	}
	return nil
}

func (p RollDicePayload) Validate() error {
	if p.Sides < 1 {
		return errors.New("sides must be at least 1")
	}
	if p.Sides > MaxDiceSides {
		return fmt.Errorf("sides must not exceed %d", MaxDiceSides)
	}
	// Qty == 0 означает "один кубик" и подставляется хендлером.
	if p.Qty < 0 || p.Qty > MaxDiceQty {
		return fmt.Errorf("qty must be between 1 and %d", MaxDiceQty)
	}
	return nil
}
