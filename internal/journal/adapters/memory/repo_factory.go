package memory

import "devjournal/internal/journal/ports/repositories"

// RepositoryFactory раздает репозитории, разделяющие один Store.
type RepositoryFactory struct {
	users     repositories.UserRepository
	insights  repositories.InsightRepository
	diary     repositories.DiaryEntryRepository
	tutorials repositories.TutorialRepository
}

// NewRepositoryFactory создает фабрику репозиториев поверх store.
func NewRepositoryFactory(store *Store) *RepositoryFactory {
	return &RepositoryFactory{
		users:     NewUserRepository(store),
		insights:  NewInsightRepository(store),
		diary:     NewDiaryEntryRepository(store),
		tutorials: NewTutorialRepository(store),
	}
}

func (f *RepositoryFactory) UserRepository() repositories.UserRepository {
	return f.users
}

func (f *RepositoryFactory) InsightRepository() repositories.InsightRepository {
	return f.insights
}

func (f *RepositoryFactory) DiaryEntryRepository() repositories.DiaryEntryRepository {
	return f.diary
}

func (f *RepositoryFactory) TutorialRepository() repositories.TutorialRepository {
	return f.tutorials
}
