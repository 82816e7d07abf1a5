package view

// Accordion keeps at most one item expanded.
type Accordion struct {
	expanded int
	open     bool
}

func NewAccordion(expanded ...int) *Accordion {
	a := &Accordion{}
	if len(expanded) > 0 {
		a.expanded, a.open = expanded[0], true
	}
	return a
}

// Toggle expands id, collapsing any other item, or collapses id if it was the expanded one.
func (a *Accordion) Toggle(id int) {
	if a.open && a.expanded == id {
		a.open = false
		return
	}
	a.expanded, a.open = id, true
}

func (a *Accordion) IsExpanded(id int) bool { return a.open && a.expanded == id }

// Expanded returns the expanded id, if any.
func (a *Accordion) Expanded() (int, bool) { return a.expanded, a.open }

// ExpandSet keeps any number of items expanded, in the order they were opened.
type ExpandSet struct {
	ids []int
}

func NewExpandSet(expanded ...int) *ExpandSet {
	s := &ExpandSet{}
	for _, id := range expanded {
		if !s.IsExpanded(id) {
			s.ids = append(s.ids, id)
		}
	}
	return s
}

func (s *ExpandSet) Toggle(id int) {
	for i, v := range s.ids {
		if v == id {
			s.ids = append(s.ids[:i:i], s.ids[i+1:]...)
			return
		}
	}
	s.ids = append(s.ids, id)
}

func (s *ExpandSet) IsExpanded(id int) bool {
	for _, v := range s.ids {
		if v == id {
			return true
		}
	}
	return false
}

func (s *ExpandSet) Expanded() []int {
	ids := make([]int, len(s.ids))
	copy(ids, s.ids)
	return ids
}
