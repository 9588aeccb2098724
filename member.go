package prop

// Member composition: build a rule for a member of the value another
// rule produces, then run it through the ordinary classification.
// Selector functions play the role of pointer-to-member. Because
// accessors satisfy the rule contracts, the parent may itself be an
// accessor, so composition nests to any depth.

type refField[S, F any, P Referencer[S]] struct {
	parent P
	sel    func(*S) *F
}

func (m refField[S, F, P]) Ref() *F { return m.sel(m.parent.Ref()) }

// RefField exposes a member of a referenced aggregate as its own
// Proxy accessor. sel must return the address of a member inside its
// argument; writes through the result land in the parent's referent.
func RefField[S, F any, P Referencer[S]](parent P, sel func(*S) *F) Proxy[F, refField[S, F, P]] {
	return OfRef[F](refField[S, F, P]{parent: parent, sel: sel})
}

type getField[S, F any, P Getter[S]] struct {
	parent P
	get    func(S) F
}

func (m getField[S, F, P]) Get() F { return m.get(m.parent.Get()) }

// GetField exposes a member of a computed value as a ReadOnly
// accessor.
func GetField[S, F any, P Getter[S]](parent P, get func(S) F) ReadOnly[F, getField[S, F, P]] {
	return OfGet[F](getField[S, F, P]{parent: parent, get: get})
}

type field[S, F any, P GetSetter[S]] struct {
	parent P
	get    func(S) F
	set    func(*S, F)
}

func (m field[S, F, P]) Get() F { return m.get(m.parent.Get()) }

// Set rewrites the member inside a copy of the parent's value and
// stores the copy back, the same triple shape Value.Update uses.
func (m field[S, F, P]) Set(v F) {
	x := m.parent.Get()
	m.set(&x, v)
	m.parent.Set(x)
}

// Field exposes a member of a computed value as a read-write Value
// accessor. Writes go member-into-copy, copy-through-parent.
func Field[S, F any, P GetSetter[S]](parent P, get func(S) F, set func(*S, F)) Value[F, field[S, F, P]] {
	return Of[F](field[S, F, P]{parent: parent, get: get, set: set})
}
