package planner

// Entry is one planned rename. Proposed is the composer's output before
// collision resolution; Target is the final collision-free path.
type Entry struct {
	Source   string
	Proposed string
	Target   string
}

// Unchanged reports whether the entry is a no-op: the file already carries
// its canonical name. No-op entries stay in the plan so they keep their
// claim on the name, but the executor does not touch them.
func (e Entry) Unchanged() bool { return e.Source == e.Target }

// Plan is the ordered set of renames for one run, fully materialized before
// any filesystem mutation.
type Plan struct {
	Entries []Entry
}

// Changes returns how many entries actually rename something.
func (p *Plan) Changes() int {
	n := 0
	for _, e := range p.Entries {
		if !e.Unchanged() {
			n++
		}
	}
	return n
}

// Empty reports whether the plan holds no entries at all.
func (p *Plan) Empty() bool { return len(p.Entries) == 0 }
