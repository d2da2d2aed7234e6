package editor

import (
	"fmt"
	"math"

	"github.com/milk9111/leveledit/levels"
)

// Property setters. Each one checks the selection first and changes nothing
// when the check or the value is rejected.

func finite(name string, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return fmt.Errorf("%s %v: %w", name, v, ErrInvalidValue)
	}
	return nil
}

func (e *Engine) zoneGuard(title string) (int, error) {
	z, ok := e.selectedZone()
	if !ok {
		return -1, notice(ErrNothingSelected, title, "Select a zone vertex first.")
	}
	return z, nil
}

func (e *Engine) wallGuard(title string) (int, error) {
	w, ok := e.selectedWall()
	if !ok {
		return -1, notice(ErrNothingSelected, title, "Select a wall vertex first.")
	}
	return w, nil
}

func (e *Engine) pickupGuard(title string) (int, error) {
	i, ok := e.selectedPickup()
	if !ok {
		return -1, notice(ErrNothingSelected, title, "Select a pickup first.")
	}
	return i, nil
}

func (e *Engine) SetZoneKind(k levels.ZoneKind) error {
	z, err := e.zoneGuard("Zone kind")
	if err != nil {
		return err
	}
	if !k.Valid() {
		return fmt.Errorf("zone kind %d: %w", int(k), ErrInvalidValue)
	}
	e.level.Zones[z].Kind = k
	e.touch()
	e.log("zone_kind").WithField("kind", k.String()).Info("zone kind set")
	return nil
}

// SetZoneValue stores a dialog index for DialogTrigger zones and an angle for
// OneWay zones. Other kinds have no value and the call does nothing.
func (e *Engine) SetZoneValue(v float64) error {
	z, err := e.zoneGuard("Zone value")
	if err != nil {
		return err
	}
	if err := finite("zone value", v); err != nil {
		return err
	}
	switch e.level.Zones[z].Kind {
	case levels.ZoneDialogTrigger:
		if v != math.Trunc(v) {
			return fmt.Errorf("dialog index %v: %w", v, ErrInvalidValue)
		}
	case levels.ZoneOneWay:
	default:
		e.log("zone_value").WithField("kind", e.level.Zones[z].Kind.String()).Debug("zone kind has no value")
		return nil
	}
	e.level.Zones[z].Value = v
	e.touch()
	e.log("zone_value").WithField("value", v).Info("zone value set")
	return nil
}

func (e *Engine) SetZonePower(p float64) error {
	z, err := e.zoneGuard("Zone power")
	if err != nil {
		return err
	}
	if err := finite("zone power", p); err != nil {
		return err
	}
	e.level.Zones[z].Power = p
	e.touch()
	e.log("zone_power").WithField("power", p).Info("zone power set")
	return nil
}

func (e *Engine) SetWallKind(k levels.WallKind) error {
	w, err := e.wallGuard("Wall kind")
	if err != nil {
		return err
	}
	if !k.Valid() {
		return fmt.Errorf("wall kind %d: %w", int(k), ErrInvalidValue)
	}
	e.level.Walls[w].Kind = k
	e.touch()
	e.log("wall_kind").WithField("kind", k.String()).Info("wall kind set")
	return nil
}

// SetWallKeyID sets which pickup id opens a door. The id is not checked
// against existing pickups.
func (e *Engine) SetWallKeyID(id int) error {
	w, err := e.wallGuard("Door key")
	if err != nil {
		return err
	}
	if e.level.Walls[w].Kind != levels.WallDoor {
		return notice(ErrNotADoor, "Door key", "Only doors have a key. Change the wall kind to Door first.")
	}
	e.level.Walls[w].KeyID = id
	e.touch()
	e.log("wall_key").WithField("key_id", id).Info("door key set")
	return nil
}

func (e *Engine) SetPickupKind(k levels.PickupKind) error {
	i, err := e.pickupGuard("Pickup kind")
	if err != nil {
		return err
	}
	if !k.Valid() {
		return fmt.Errorf("pickup kind %d: %w", int(k), ErrInvalidValue)
	}
	e.level.Pickups[i].Kind = k
	e.touch()
	e.log("pickup_kind").WithField("kind", k.String()).Info("pickup kind set")
	return nil
}

// SetPickupID changes the gameplay id. Duplicates are allowed. The selection
// follows the pickup to its new id.
func (e *Engine) SetPickupID(id int) error {
	i, err := e.pickupGuard("Pickup id")
	if err != nil {
		return err
	}
	e.level.Pickups[i].ID = id
	e.sel = PickupAtSelection(id, i)
	e.touch()
	e.log("pickup_id").WithField("index", i).Info("pickup id set")
	return nil
}

// SetStartAngle sets the facing in degrees. The start has no selection guard.
func (e *Engine) SetStartAngle(deg float64) error {
	if err := finite("start angle", deg); err != nil {
		return err
	}
	e.level.Start.Angle = deg
	e.touch()
	e.log("start_angle").WithField("angle", deg).Info("start angle set")
	return nil
}
