package symbols

import (
	"sort"
	"strings"
)

// Type is the two-level type lattice. TypeInt promotes to TypeReal whenever
// the two are mixed; there is no implicit narrowing.
type Type int

const (
	TypeInt Type = iota
	TypeReal
)

func (t Type) String() string {
	if t == TypeReal {
		return "real"
	}
	return "int"
}

// Promote is the join over the lattice: real if either side is real.
func Promote(a, b Type) Type {
	if a == TypeReal || b == TypeReal {
		return TypeReal
	}
	return TypeInt
}

type SymbolInfo struct {
	Type Type
}

// SymbolTable is the flat per-run variable namespace. It persists across
// statements; Assign is the only mutation and it never narrows a type.
type SymbolTable struct {
	symbols map[string]SymbolInfo
}

func NewSymbolTable() *SymbolTable {
	return &SymbolTable{symbols: make(map[string]SymbolInfo)}
}

// Lookup searches for a symbol, returning a copy so the caller cannot
// modify the table's entry.
func (st *SymbolTable) Lookup(name string) (SymbolInfo, bool) {
	info, ok := st.symbols[name]
	return info, ok
}

// Assign records a variable's type. A new name is inserted as-is; an existing
// name whose type differs from ty is permanently widened to real.
func (st *SymbolTable) Assign(name string, ty Type) {
	info, ok := st.symbols[name]
	if !ok {
		st.symbols[name] = SymbolInfo{Type: ty}
		return
	}
	if info.Type != ty {
		st.symbols[name] = SymbolInfo{Type: TypeReal}
	}
}

// Clone returns an independent copy. The compile driver mutates a clone and
// hands it back only on success, so a failed statement leaves the caller's
// table untouched.
func (st *SymbolTable) Clone() *SymbolTable {
	cp := NewSymbolTable()
	for name, info := range st.symbols {
		cp.symbols[name] = info
	}
	return cp
}

func (st *SymbolTable) Len() int {
	return len(st.symbols)
}

// String renders the table as {a:int, b:real}, sorted by name so output is
// stable.
func (st *SymbolTable) String() string {
	names := make([]string, 0, len(st.symbols))
	for name := range st.symbols {
		names = append(names, name)
	}
	sort.Strings(names)

	var out strings.Builder
	out.WriteString("{")
	for i, name := range names {
		if i > 0 {
			out.WriteString(", ")
		}
		out.WriteString(name + ":" + st.symbols[name].Type.String())
	}
	out.WriteString("}")
	return out.String()
}
