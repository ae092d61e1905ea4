package feed

// TaxonomyMembership maps a taxonomy name to the ordered term ids an entry
// belongs to within that taxonomy.
type TaxonomyMembership map[string][]int64

// TaxonomySet is the result of one bulk taxonomy load: per-entry memberships
// plus the term name and parent indexes needed to walk the term forest.
type TaxonomySet struct {
	Memberships map[int64]TaxonomyMembership
	Names       map[int64]string
	Parents     map[int64]int64
}

// NewTaxonomySet creates an empty TaxonomySet
func NewTaxonomySet() *TaxonomySet {
	return &TaxonomySet{
		Memberships: make(map[int64]TaxonomyMembership),
		Names:       make(map[int64]string),
		Parents:     make(map[int64]int64),
	}
}

// Add records one entry/term relationship
func (s *TaxonomySet) Add(entryID int64, taxonomy string, termID int64, name string, parentID int64) {
	m, ok := s.Memberships[entryID]
	if !ok {
		m = make(TaxonomyMembership)
		s.Memberships[entryID] = m
	}
	m[taxonomy] = append(m[taxonomy], termID)
	s.Names[termID] = name
	s.Parents[termID] = parentID
}

// Index records a term's name and parent without any entry membership.
// Ancestor terms need indexing even when no entry references them directly,
// otherwise upward walks stop short.
func (s *TaxonomySet) Index(termID int64, name string, parentID int64) {
	s.Names[termID] = name
	s.Parents[termID] = parentID
}

// Terms returns the ordered term ids of an entry within one taxonomy
func (s *TaxonomySet) Terms(entryID int64, taxonomy string) []int64 {
	return s.Memberships[entryID][taxonomy]
}

// Name returns the term name and whether the term is known
func (s *TaxonomySet) Name(termID int64) (string, bool) {
	name, ok := s.Names[termID]
	return name, ok
}

// Parent returns the parent term id, or 0 for roots and unknown terms
func (s *TaxonomySet) Parent(termID int64) int64 {
	return s.Parents[termID]
}
