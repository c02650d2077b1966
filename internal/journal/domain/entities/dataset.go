package entities

// Dataset - полный набор коллекций, который сохраняется в снимок.
type Dataset struct {
	Users        map[string]*User
	Insights     map[string]*Insight
	DiaryEntries map[string]*DiaryEntry
	Tutorials    map[string]*Tutorial
}

// NewDataset возвращает пустой набор из четырех коллекций.
func NewDataset() *Dataset {
	return &Dataset{
		Users:        make(map[string]*User),
		Insights:     make(map[string]*Insight),
		DiaryEntries: make(map[string]*DiaryEntry),
		Tutorials:    make(map[string]*Tutorial),
	}
}
