package symbols

import (
	"errors"

	"github.com/funvibe/logicc/internal/token"
)

type SymbolKind int

const (
	VariableSymbol SymbolKind = iota
	PredicateSymbol
)

func (k SymbolKind) String() string {
	if k == PredicateSymbol {
		return "predicate"
	}
	return "variable"
}

var (
	// ErrAlreadyDefined is returned when a name is inserted twice into one scope.
	ErrAlreadyDefined = errors.New("symbol already defined in this scope")
	// ErrArityMismatch is returned when a predicate is re-registered with a different arity.
	ErrArityMismatch = errors.New("predicate arity mismatch")
	// ErrKindMismatch is returned when a predicate name already resolves to a variable.
	ErrKindMismatch = errors.New("symbol is not a predicate")
)

type Symbol struct {
	Name       string
	Kind       SymbolKind
	Domain     []string // variables only
	Arity      int      // predicates only
	ScopeLevel int
	Line       int
	Column     int

	next *Symbol // bucket chain
}

func (s *Symbol) Position() token.Position {
	return token.Position{Line: s.Line, Column: s.Column}
}

// ScopeID indexes a scope in the table's arena.
type ScopeID int

// GlobalScope is the root scope. It exists for the lifetime of the table.
const GlobalScope ScopeID = 0

// Scope is one level of bindings. Parent is meaningless for GlobalScope.
type Scope struct {
	Level   int
	Parent  ScopeID
	buckets []*Symbol
	count   int
}

func (s *Scope) Len() int { return s.count }

// SymbolTable holds every live scope in an arena. Scopes are entered and
// exited in strict stack order, so the innermost scope is always the last
// element and exiting it truncates the arena.
type SymbolTable struct {
	scopes  []Scope
	buckets int
}

// DefaultBuckets is used when NewSymbolTable is given a non-positive count.
const DefaultBuckets = 101

func NewSymbolTable(buckets int) *SymbolTable {
	if buckets <= 0 {
		buckets = DefaultBuckets
	}
	st := &SymbolTable{buckets: buckets}
	st.scopes = append(st.scopes, Scope{Level: 0, Parent: GlobalScope, buckets: make([]*Symbol, buckets)})
	return st
}

// Hash is the polynomial string hash (h = h*31 + byte) reduced modulo the
// bucket count.
func (st *SymbolTable) Hash(name string) int {
	var h uint32
	for i := 0; i < len(name); i++ {
		h = h*31 + uint32(name[i])
	}
	return int(h % uint32(st.buckets))
}

func (st *SymbolTable) scope(id ScopeID) *Scope {
	if id < 0 || int(id) >= len(st.scopes) {
		panic("symbols: scope is not live")
	}
	return &st.scopes[id]
}

// Scope returns the scope with the given id.
func (st *SymbolTable) Scope(id ScopeID) *Scope {
	return st.scope(id)
}

// Depth returns the number of live scopes, the global scope included.
func (st *SymbolTable) Depth() int {
	return len(st.scopes)
}

// EnterScope opens a child of current and returns its id.
func (st *SymbolTable) EnterScope(current ScopeID) ScopeID {
	parent := st.scope(current)
	st.scopes = append(st.scopes, Scope{
		Level:   parent.Level + 1,
		Parent:  current,
		buckets: make([]*Symbol, st.buckets),
	})
	return ScopeID(len(st.scopes) - 1)
}

// ExitScope discards current and its entries and returns the parent.
// Exiting the global scope is a no-op that returns GlobalScope.
// Only the innermost scope may be exited.
func (st *SymbolTable) ExitScope(current ScopeID) ScopeID {
	if current == GlobalScope {
		return GlobalScope
	}
	if int(current) != len(st.scopes)-1 {
		panic("symbols: scopes must be exited innermost first")
	}
	parent := st.scopes[current].Parent
	st.scopes[current] = Scope{}
	st.scopes = st.scopes[:current]
	return parent
}

func (st *SymbolTable) insert(scope ScopeID, sym *Symbol) {
	s := st.scope(scope)
	h := st.Hash(sym.Name)
	sym.next = s.buckets[h]
	s.buckets[h] = sym
	s.count++
}

// InsertVariable binds name in scope. It fails with ErrAlreadyDefined only if
// the name exists in this same scope; outer bindings are shadowed, not
// touched. The existing entry is returned alongside the error.
func (st *SymbolTable) InsertVariable(scope ScopeID, name string, domain []string, pos token.Position) (*Symbol, error) {
	if existing, ok := st.LookupCurrentScope(scope, name); ok {
		return existing, ErrAlreadyDefined
	}
	sym := &Symbol{
		Name:       name,
		Kind:       VariableSymbol,
		Domain:     domain,
		ScopeLevel: st.scope(scope).Level,
		Line:       pos.Line,
		Column:     pos.Column,
	}
	st.insert(scope, sym)
	return sym, nil
}

// InsertPredicate registers a predicate in the global scope. If the name
// already resolves from scope, the existing entry is returned; the error is
// ErrArityMismatch or ErrKindMismatch when it does not agree.
func (st *SymbolTable) InsertPredicate(scope ScopeID, name string, arity int, pos token.Position) (*Symbol, error) {
	if existing, ok := st.Lookup(scope, name); ok {
		switch {
		case existing.Kind != PredicateSymbol:
			return existing, ErrKindMismatch
		case existing.Arity != arity:
			return existing, ErrArityMismatch
		}
		return existing, nil
	}
	sym := &Symbol{
		Name:       name,
		Kind:       PredicateSymbol,
		Arity:      arity,
		ScopeLevel: 0,
		Line:       pos.Line,
		Column:     pos.Column,
	}
	st.insert(GlobalScope, sym)
	return sym, nil
}

// Lookup walks from scope out to the global scope and returns the first match.
func (st *SymbolTable) Lookup(scope ScopeID, name string) (*Symbol, bool) {
	for id := scope; ; {
		if sym, ok := st.LookupCurrentScope(id, name); ok {
			return sym, true
		}
		if id == GlobalScope {
			return nil, false
		}
		id = st.scopes[id].Parent
	}
}

// LookupCurrentScope searches scope only.
func (st *SymbolTable) LookupCurrentScope(scope ScopeID, name string) (*Symbol, bool) {
	s := st.scope(scope)
	for sym := s.buckets[st.Hash(name)]; sym != nil; sym = sym.next {
		if sym.Name == name {
			return sym, true
		}
	}
	return nil, false
}
