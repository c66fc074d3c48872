package module_test

import (
	"testing"

	"github.com/rafiw/referee-sub000/pkg/module"
	"github.com/rafiw/referee-sub000/pkg/position"
	"github.com/rafiw/referee-sub000/pkg/types"
)

func TestTimePropertyPreregistered(t *testing.T) {
	mod := module.New()
	d, ok := mod.Data(module.TimeProperty)
	if !ok {
		t.Fatal("expected __time__ to be pre-registered")
	}
	if d.Type.Kind != types.Integer {
		t.Errorf("expected __time__ to be Integer, got %s", d.Type)
	}
}

// TestMemberIndexInjectivity exercises spec.md §8's member-index
// injectivity property: declaring two properties assigns them distinct,
// order-preserving indices.
func TestMemberIndexInjectivity(t *testing.T) {
	mod := module.New()
	pos := position.Synthetic

	if err := mod.AddData("speed", types.TypeNumber, pos); err != nil {
		t.Fatalf("AddData(speed): %v", err)
	}
	if err := mod.AddData("gear", types.TypeInteger, pos); err != nil {
		t.Fatalf("AddData(gear): %v", err)
	}

	speed, _ := mod.Data("speed")
	gear, _ := mod.Data("gear")
	if speed.Index == gear.Index {
		t.Error("expected distinct properties to receive distinct indices")
	}
	// __time__ is registered first, so speed is index 1 and gear index 2.
	if speed.Index != 1 || gear.Index != 2 {
		t.Errorf("expected speed/gear indices 1/2, got %d/%d", speed.Index, gear.Index)
	}
}

func TestDuplicateAcrossNamespaces(t *testing.T) {
	mod := module.New()
	pos := position.Synthetic

	if err := mod.AddType("speed", types.TypeNumber, pos); err != nil {
		t.Fatalf("AddType(speed): %v", err)
	}
	if err := mod.AddData("speed", types.TypeNumber, pos); err == nil {
		t.Error("expected declaring speed as data after it was declared a type to fail")
	}
	if err := mod.AddConf("speed", types.TypeNumber, pos); err == nil {
		t.Error("expected declaring speed as conf after it was declared a type to fail")
	}
}

func TestContextTypeResolution(t *testing.T) {
	mod := module.New()
	pos := position.Synthetic
	if err := mod.AddData("speed", types.TypeNumber, pos); err != nil {
		t.Fatalf("AddData: %v", err)
	}
	if err := mod.AddConf("limit", types.TypeNumber, pos); err != nil {
		t.Fatalf("AddConf: %v", err)
	}

	curr, ok := mod.ContextType(module.CurrentContext)
	if !ok {
		t.Fatal("expected __curr__ to resolve")
	}
	if _, ok := curr.MemberType("speed"); !ok {
		t.Error("expected __curr__ to expose data property speed")
	}
	if _, ok := curr.MemberType("limit"); !ok {
		t.Error("expected __curr__ to expose configuration value limit (conf checked first)")
	}

	conf, ok := mod.ContextType(module.ConfigContext)
	if !ok {
		t.Fatal("expected __conf__ to resolve")
	}
	if _, ok := conf.MemberType("speed"); ok {
		t.Error("expected __conf__ to NOT expose a data property")
	}
	if _, ok := conf.MemberType("limit"); !ok {
		t.Error("expected __conf__ to expose configuration value limit")
	}

	if _, ok := mod.ContextType("nope"); ok {
		t.Error("expected an unbound context name to fail to resolve")
	}
}

func TestAtBoundAliasResolvesToCurrentType(t *testing.T) {
	mod := module.New()
	if _, ok := mod.ContextType("starting"); ok {
		t.Fatal("expected 'starting' to be unresolved before any At-scope is pushed")
	}

	mod.PushContext("starting")
	defer mod.PopContext()

	aliasType, ok := mod.ContextType("starting")
	if !ok {
		t.Fatal("expected 'starting' to resolve once pushed")
	}
	if aliasType != mod.CurrentContextType() {
		t.Error("expected an At-bound alias to resolve to __curr__'s type")
	}

	bound, ok := mod.CurrentBinding()
	if !ok || bound != "starting" {
		t.Errorf("expected CurrentBinding to report starting, got %q, %v", bound, ok)
	}
}
