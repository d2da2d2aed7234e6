package editor

import (
	"errors"
	"fmt"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"
	"github.com/milk9111/leveledit/common"
	"github.com/milk9111/leveledit/levels"
)

// RunScript runs a tengo macro against the engine. The script sees a global
// "editor" map of functions. A rejected command returns a tengo error value
// the script can check with is_error; any other failure stops the script.
func RunScript(e *Engine, src []byte) (err error) {
	// the tengo VM panics on some runtime faults, integer division by zero
	// among them
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("run script: %v", r)
		}
	}()

	script := tengo.NewScript(src)
	if err := script.Add("editor", buildScriptEditor(e)); err != nil {
		return err
	}
	script.SetImports(stdlib.GetModuleMap(stdlib.AllModuleNames()...))

	compiled, err := script.Compile()
	if err != nil {
		return fmt.Errorf("compile script: %w", err)
	}
	if err := compiled.Run(); err != nil {
		return fmt.Errorf("run script: %w", err)
	}
	return nil
}

// result maps an engine error to what the script sees.
func result(err error) (tengo.Object, error) {
	if err == nil {
		return tengo.TrueValue, nil
	}
	var n *NoticeError
	if errors.As(err, &n) || errors.Is(err, ErrInvalidValue) {
		return &tengo.Error{Value: &tengo.String{Value: err.Error()}}, nil
	}
	return nil, err
}

func intArgs(name string, args []tengo.Object, n int) ([]int, error) {
	if len(args) != n {
		return nil, tengo.ErrWrongNumArguments
	}
	out := make([]int, n)
	for i, a := range args {
		v, ok := tengo.ToInt(a)
		if !ok {
			return nil, tengo.ErrInvalidArgumentType{Name: fmt.Sprintf("%s arg %d", name, i+1), Expected: "int", Found: a.TypeName()}
		}
		out[i] = v
	}
	return out, nil
}

func floatArgs(name string, args []tengo.Object, n int) ([]float64, error) {
	if len(args) != n {
		return nil, tengo.ErrWrongNumArguments
	}
	out := make([]float64, n)
	for i, a := range args {
		v, ok := tengo.ToFloat64(a)
		if !ok {
			return nil, tengo.ErrInvalidArgumentType{Name: fmt.Sprintf("%s arg %d", name, i+1), Expected: "float", Found: a.TypeName()}
		}
		out[i] = v
	}
	return out, nil
}

func buildScriptEditor(e *Engine) *tengo.ImmutableMap {
	values := map[string]tengo.Object{}
	fn := func(name string, f tengo.CallableFunc) {
		values[name] = &tengo.UserFunction{Name: name, Value: f}
	}

	added := func(add func() int) tengo.CallableFunc {
		return func(args ...tengo.Object) (tengo.Object, error) {
			if len(args) != 0 {
				return nil, tengo.ErrWrongNumArguments
			}
			return &tengo.Int{Value: int64(add())}, nil
		}
	}
	fn("add_pickup", added(e.AddPickup))
	fn("add_wall", added(e.AddWall))
	fn("add_zone", added(e.AddZone))

	fn("select_start", func(args ...tengo.Object) (tengo.Object, error) {
		return result(e.Select(StartSelection()))
	})
	fn("select_pickup", func(args ...tengo.Object) (tengo.Object, error) {
		v, err := intArgs("select_pickup", args, 1)
		if err != nil {
			return nil, err
		}
		return result(e.Select(PickupSelection(v[0])))
	})
	fn("select_wall_vertex", func(args ...tengo.Object) (tengo.Object, error) {
		v, err := intArgs("select_wall_vertex", args, 2)
		if err != nil {
			return nil, err
		}
		return result(e.Select(WallVertexSelection(v[0], v[1])))
	})
	fn("select_zone_vertex", func(args ...tengo.Object) (tengo.Object, error) {
		v, err := intArgs("select_zone_vertex", args, 2)
		if err != nil {
			return nil, err
		}
		return result(e.Select(ZoneVertexSelection(v[0], v[1])))
	})
	fn("clear_selection", func(args ...tengo.Object) (tengo.Object, error) {
		e.ClearSelection()
		return tengo.TrueValue, nil
	})

	fn("insert_before", func(args ...tengo.Object) (tengo.Object, error) {
		return result(e.InsertVertexBefore())
	})
	fn("insert_after", func(args ...tengo.Object) (tengo.Object, error) {
		return result(e.InsertVertexAfter())
	})
	fn("remove", func(args ...tengo.Object) (tengo.Object, error) {
		return result(e.RemoveSelected())
	})
	fn("move", func(args ...tengo.Object) (tengo.Object, error) {
		v, err := floatArgs("move", args, 2)
		if err != nil {
			return nil, err
		}
		return result(e.MoveSelection(e.view.Snap(common.Pt(v[0], v[1]))))
	})

	setInt := func(name string, set func(int) error) {
		fn(name, func(args ...tengo.Object) (tengo.Object, error) {
			v, err := intArgs(name, args, 1)
			if err != nil {
				return nil, err
			}
			return result(set(v[0]))
		})
	}
	setFloat := func(name string, set func(float64) error) {
		fn(name, func(args ...tengo.Object) (tengo.Object, error) {
			v, err := floatArgs(name, args, 1)
			if err != nil {
				return nil, err
			}
			return result(set(v[0]))
		})
	}
	setInt("set_zone_kind", func(k int) error { return e.SetZoneKind(levels.ZoneKind(k)) })
	setFloat("set_zone_value", e.SetZoneValue)
	setFloat("set_zone_power", e.SetZonePower)
	setInt("set_wall_kind", func(k int) error { return e.SetWallKind(levels.WallKind(k)) })
	setInt("set_wall_key", e.SetWallKeyID)
	setInt("set_pickup_kind", func(k int) error { return e.SetPickupKind(levels.PickupKind(k)) })
	setInt("set_pickup_id", e.SetPickupID)
	setFloat("set_start_angle", e.SetStartAngle)

	fn("set_grid", func(args ...tengo.Object) (tengo.Object, error) {
		if len(args) != 2 {
			return nil, tengo.ErrWrongNumArguments
		}
		n, ok := tengo.ToInt(args[1])
		if !ok {
			return nil, tengo.ErrInvalidArgumentType{Name: "set_grid arg 2", Expected: "int", Found: args[1].TypeName()}
		}
		if err := e.SetGridSize(n); err != nil {
			return result(err)
		}
		if on := !args[0].IsFalsy(); on != e.view.GridEnabled {
			e.ToggleGrid()
		}
		return tengo.TrueValue, nil
	})

	fn("counts", func(args ...tengo.Object) (tengo.Object, error) {
		return &tengo.ImmutableMap{Value: map[string]tengo.Object{
			"pickups": &tengo.Int{Value: int64(len(e.level.Pickups))},
			"walls":   &tengo.Int{Value: int64(len(e.level.Walls))},
			"zones":   &tengo.Int{Value: int64(len(e.level.Zones))},
		}}, nil
	})
	fn("selection", func(args ...tengo.Object) (tengo.Object, error) {
		return &tengo.String{Value: e.sel.String()}, nil
	})

	return &tengo.ImmutableMap{Value: values}
}
