// Package module implements the symbol table every compilation session
// carries: declared types, declared properties and configuration values,
// and the context-binding stack used while rewriting `At` scopes.
package module

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/rafiw/referee-sub000/pkg/errs"
	"github.com/rafiw/referee-sub000/pkg/position"
	"github.com/rafiw/referee-sub000/pkg/types"
)

// Reserved names pre-registered on every module.
const (
	TimeProperty   = "__time__"
	CurrentContext = "__curr__"
	ConfigContext  = "__conf__"
)

// Decl is one entry in a property or configuration declaration list. Order
// of insertion fixes Index, which downstream code emitters use to locate
// the corresponding slot in a sample or the configuration record.
type Decl struct {
	Name  string
	Type  *types.Type
	Index int
	Pos   position.Position
}

// Module is the per-compilation symbol table: the set of user types, the
// ordered list of declared data properties, the ordered list of declared
// configuration values, and the two synthetic context types (§3's
// `__curr__`/`__conf__`) that make every declaration reachable by name.
type Module struct {
	ID uuid.UUID

	types *types.Store

	typeNames map[string]*types.Type
	data      map[string]*Decl
	dataList  []*Decl
	conf      map[string]*Decl
	confList  []*Decl

	curr *types.Type
	confCtx *types.Type

	ctxStack []string
}

// New creates an empty module with the primitive type names and the
// __time__ property pre-registered, matching the original's constructor
// behavior of registering these eagerly rather than lazily.
func New() *Module {
	m := &Module{
		ID:        uuid.New(),
		types:     types.NewStore(),
		typeNames: make(map[string]*types.Type),
		data:      make(map[string]*Decl),
		conf:      make(map[string]*Decl),
	}

	m.typeNames["boolean"] = types.TypeBoolean
	m.typeNames["integer"] = types.TypeInteger
	m.typeNames["number"] = types.TypeNumber
	m.typeNames["string"] = types.TypeString

	m.curr = types.NewContext(currHost{m})
	m.confCtx = types.NewContext(confHost{m})

	if err := m.AddData(TimeProperty, types.TypeInteger, position.Synthetic); err != nil {
		panic("module: reserved property __time__ collided at construction: " + err.Error())
	}

	return m
}

// TypeStore exposes the shared composite-type interning table so that
// parsers and passes building Struct/Array/Enum types for this module
// reuse the same hash-consing table.
func (m *Module) TypeStore() *types.Store { return m.types }

// CurrentContextType is the Context type standing for __curr__: member
// lookup tries configuration first, then data, per §3.
func (m *Module) CurrentContextType() *types.Type { return m.curr }

// ConfigContextType is the Context type standing for __conf__.
func (m *Module) ConfigContextType() *types.Type { return m.confCtx }

// AddType declares a named user type. Fails if name is already declared
// (as a type, property, or configuration value).
func (m *Module) AddType(name string, t *types.Type, pos position.Position) error {
	if err := m.checkFresh(name, pos); err != nil {
		return err
	}
	m.typeNames[name] = t
	return nil
}

// LookupType returns the type registered under name, if any.
func (m *Module) LookupType(name string) (*types.Type, bool) {
	t, ok := m.typeNames[name]
	return t, ok
}

// AddData declares a property (data signal) of type t, assigning it the
// next index in declaration order.
func (m *Module) AddData(name string, t *types.Type, pos position.Position) error {
	if err := m.checkFresh(name, pos); err != nil {
		return err
	}
	d := &Decl{Name: name, Type: t, Index: len(m.dataList), Pos: pos}
	m.data[name] = d
	m.dataList = append(m.dataList, d)
	return nil
}

// AddConf declares a configuration value of type t, assigning it the next
// index in declaration order.
func (m *Module) AddConf(name string, t *types.Type, pos position.Position) error {
	if err := m.checkFresh(name, pos); err != nil {
		return err
	}
	d := &Decl{Name: name, Type: t, Index: len(m.confList), Pos: pos}
	m.conf[name] = d
	m.confList = append(m.confList, d)
	return nil
}

// Data returns the declaration for property name, if any.
func (m *Module) Data(name string) (*Decl, bool) {
	d, ok := m.data[name]
	return d, ok
}

// Conf returns the declaration for configuration value name, if any.
func (m *Module) Conf(name string) (*Decl, bool) {
	d, ok := m.conf[name]
	return d, ok
}

// DataList returns the declared properties in declaration order.
func (m *Module) DataList() []*Decl { return m.dataList }

// ConfList returns the declared configuration values in declaration order.
func (m *Module) ConfList() []*Decl { return m.confList }

func (m *Module) checkFresh(name string, pos position.Position) error {
	if _, ok := m.typeNames[name]; ok {
		return errs.NewTypeError(pos, "%q is already declared in this module", name)
	}
	if _, ok := m.data[name]; ok {
		return errs.NewTypeError(pos, "%q is already declared in this module", name)
	}
	if _, ok := m.conf[name]; ok {
		return errs.NewTypeError(pos, "%q is already declared in this module", name)
	}
	return nil
}

// DuplicateError reports a re-declaration of a name already bound in this
// module, as a type, a property, or a configuration value.
type DuplicateError struct {
	Name string
	Pos  position.Position
}

func (e *DuplicateError) Error() string {
	return fmt.Sprintf("%s: %q is already declared in this module", e.Pos, e.Name)
}

// PushContext enters an At-scope, binding name as the innermost rename
// target for __curr__ (§4.5.3). Call PopContext on scope exit.
func (m *Module) PushContext(name string) {
	m.ctxStack = append(m.ctxStack, name)
}

// PopContext leaves the innermost At-scope.
func (m *Module) PopContext() {
	m.ctxStack = m.ctxStack[:len(m.ctxStack)-1]
}

// CurrentBinding returns the name that __curr__ currently rewrites to, and
// whether any At-scope is open at all.
func (m *Module) CurrentBinding() (string, bool) {
	if len(m.ctxStack) == 0 {
		return "", false
	}
	return m.ctxStack[len(m.ctxStack)-1], true
}

// ContextType resolves a Context node's name to its type: the two
// reserved contexts, or an At-bound alias, which always stands for
// __curr__'s type since At only ever rebinds __curr__ (§4.5.3).
func (m *Module) ContextType(name string) (*types.Type, bool) {
	switch name {
	case CurrentContext:
		return m.curr, true
	case ConfigContext:
		return m.confCtx, true
	}
	for _, bound := range m.ctxStack {
		if bound == name {
			return m.curr, true
		}
	}
	return nil, false
}

// currHost implements types.ContextHost for __curr__: configuration is
// consulted first, then data properties, per §3's member lookup order.
type currHost struct{ m *Module }

func (h currHost) LookupMember(name string) (*types.Type, int, bool) {
	if d, ok := h.m.conf[name]; ok {
		return d.Type, d.Index, true
	}
	if d, ok := h.m.data[name]; ok {
		return d.Type, d.Index, true
	}
	return nil, 0, false
}

// confHost implements types.ContextHost for __conf__: only configuration
// values are visible.
type confHost struct{ m *Module }

func (h confHost) LookupMember(name string) (*types.Type, int, bool) {
	if d, ok := h.m.conf[name]; ok {
		return d.Type, d.Index, true
	}
	return nil, 0, false
}
