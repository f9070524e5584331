package game

import (
	"fmt"

	"github.com/memmaker/tankwar/engine/util"
)

// AIController aims its tank at the player's tank and fires once locked.
type AIController struct {
	pawn         *Tank
	playerTarget func() *Tank
}

// NewAIController takes a lookup for the player tank, it may return nil.
func NewAIController(playerTarget func() *Tank) *AIController {
	return &AIController{playerTarget: playerTarget}
}

func (c *AIController) SetPawn(pawn *Tank) {
	c.pawn = pawn
	if pawn == nil {
		return
	}
	pawn.OnDeath(c.OnPossessedTankDeath)
}

func (c *AIController) GetPawn() *Tank {
	return c.pawn
}

func (c *AIController) OnPossessedTankDeath() {
	if c.pawn != nil {
		util.LogControllerInfo(fmt.Sprintf("[AIController] %s destroyed, detaching", c.pawn.GetName()))
	}
	c.pawn = nil
}

func (c *AIController) Tick(deltaTime float64) {
	if c.pawn == nil || c.playerTarget == nil {
		return
	}
	playerTank := c.playerTarget()
	if playerTank == nil || playerTank.IsDead() {
		return
	}
	aimingComponent := c.pawn.GetAimingComponent()
	if !util.Ensure(aimingComponent != nil, c.pawn.GetName()+" has no aiming component") {
		return
	}
	aimingComponent.AimAt(playerTank.GetWorldPosition())

	if aimingComponent.GetFiringState() == FiringStateLocked && aimingComponent.Fire() {
		util.LogControllerDebug(fmt.Sprintf("[AIController] %s fired at %s", c.pawn.GetName(), playerTank.GetName()))
	}
}
