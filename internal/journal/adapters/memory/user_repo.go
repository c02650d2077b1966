package memory

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"devjournal/internal/journal/domain/entities"
	"devjournal/internal/journal/ports/repositories"
	"devjournal/pkg/logger"
)

const (
	methodCreateUser = "UserRepository.Create"
	methodUpsertUser = "UserRepository.Upsert"
	methodUpdateUser = "UserRepository.Update"
	methodDeleteUser = "UserRepository.Delete"

	msgUserCreated  = "user created"
	msgUserUpserted = "user upserted"
	msgUserUpdated  = "user updated"
	msgUserDeleted  = "user deleted"

	errCtxCreateUser = "creating user"
	errCtxUpsertUser = "upserting user"
	errCtxUpdateUser = "updating user"
)

// UserRepository реализует хранение пользователей в памяти.
type UserRepository struct {
	s *Store
}

// NewUserRepository создает репозиторий пользователей.
func NewUserRepository(store *Store) repositories.UserRepository {
	return &UserRepository{s: store}
}

// GetAll возвращает пользователей по убыванию даты создания.
func (r *UserRepository) GetAll(_ context.Context) []*entities.User {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return r.s.users.sorted()
}

// GetByID ищет пользователя по идентификатору.
func (r *UserRepository) GetByID(_ context.Context, id string) (*entities.User, bool) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	u, ok := r.s.users.get(id)
	if !ok {
		return nil, false
	}
	return u.Clone(), true
}

// GetByUsername ищет пользователя по имени полным перебором.
func (r *UserRepository) GetByUsername(_ context.Context, username string) (*entities.User, bool) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	u := r.findByUsernameLocked(username)
	if u == nil {
		return nil, false
	}
	return u.Clone(), true
}

func (r *UserRepository) findByUsernameLocked(username string) *entities.User {
	for _, u := range r.s.users.items {
		if u.Username == username {
			return u
		}
	}
	return nil
}

// usernameTakenLocked сообщает, занято ли имя другим пользователем.
func (r *UserRepository) usernameTakenLocked(username, exceptID string) bool {
	u := r.findByUsernameLocked(username)
	return u != nil && u.ID != exceptID
}

// Create добавляет пользователя. Занятое имя дает ErrDuplicateUsername,
// существующая запись при этом не меняется.
func (r *UserRepository) Create(ctx context.Context, reg entities.UserRegistration) (*entities.User, error) {
	if reg.Username == "" {
		return nil, fmt.Errorf("%s: %w", errCtxCreateUser, entities.ErrEmptyUsername)
	}

	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if r.usernameTakenLocked(reg.Username, "") {
		return nil, fmt.Errorf("%s: %w", errCtxCreateUser, entities.ErrDuplicateUsername)
	}

	now := r.s.now()
	u := &entities.User{
		ID:              r.s.generateIDLocked(),
		Username:        reg.Username,
		Password:        reg.Password,
		Email:           reg.Email,
		FirstName:       reg.FirstName,
		LastName:        reg.LastName,
		ProfileImageURL: reg.ProfileImageURL,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	// Копия отвязывает указатели, переданные вызывающим кодом.
	u = u.Clone()
	r.s.users.put(u.ID, u)
	r.s.persistLocked(ctx, methodCreateUser)

	logger.Log(ctx).Debug(ctx, msgUserCreated, zap.String("user_id", u.ID))
	return u.Clone(), nil
}

// Upsert обновляет пользователя с данным id или создает нового.
// У существующего сохраняется CreatedAt, пустые поля не затирают старые значения.
func (r *UserRepository) Upsert(ctx context.Context, data entities.UserUpsert) (*entities.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	id := data.ID
	if id == "" {
		id = r.s.generateIDLocked()
	}
	if data.Username != "" && r.usernameTakenLocked(data.Username, id) {
		return nil, fmt.Errorf("%s: %w", errCtxUpsertUser, entities.ErrDuplicateUsername)
	}

	now := r.s.now()
	existing, ok := r.s.users.get(id)
	var u *entities.User
	if ok {
		u = existing.Clone()
		mergeUpsert(u, data)
		u.UpdatedAt = now
	} else {
		if data.Username == "" {
			return nil, fmt.Errorf("%s: %w", errCtxUpsertUser, entities.ErrEmptyUsername)
		}
		u = &entities.User{ID: id, CreatedAt: now, UpdatedAt: now}
		mergeUpsert(u, data)
	}

	r.s.users.put(id, u)
	r.s.persistLocked(ctx, methodUpsertUser)

	logger.Log(ctx).Debug(ctx, msgUserUpserted, zap.String("user_id", id), zap.Bool("existed", ok))
	return u.Clone(), nil
}

func mergeUpsert(u *entities.User, data entities.UserUpsert) {
	if data.Username != "" {
		u.Username = data.Username
	}
	if data.Password != "" {
		u.Password = data.Password
	}
	patch := entities.UserPatch{}
	if data.Email != nil {
		patch.Email = entities.Some(data.Email)
	}
	if data.FirstName != nil {
		patch.FirstName = entities.Some(data.FirstName)
	}
	if data.LastName != nil {
		patch.LastName = entities.Some(data.LastName)
	}
	if data.ProfileImageURL != nil {
		patch.ProfileImageURL = entities.Some(data.ProfileImageURL)
	}
	patch.ApplyTo(u)
}

// Update применяет частичное обновление.
func (r *UserRepository) Update(ctx context.Context, id string, patch entities.UserPatch) (*entities.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	existing, ok := r.s.users.get(id)
	if !ok {
		return nil, fmt.Errorf("%s %s: %w", errCtxUpdateUser, id, entities.ErrNotFound)
	}
	if name, ok := patch.Username.Get(); ok {
		if name == "" {
			return nil, fmt.Errorf("%s: %w", errCtxUpdateUser, entities.ErrEmptyUsername)
		}
		if r.usernameTakenLocked(name, id) {
			return nil, fmt.Errorf("%s: %w", errCtxUpdateUser, entities.ErrDuplicateUsername)
		}
	}

	u := existing.Clone()
	patch.ApplyTo(u)
	u.UpdatedAt = r.s.now()
	r.s.users.put(id, u)
	r.s.persistLocked(ctx, methodUpdateUser)

	logger.Log(ctx).Debug(ctx, msgUserUpdated, zap.String("user_id", id))
	return u.Clone(), nil
}

// Delete удаляет пользователя. Повторное удаление не является ошибкой.
func (r *UserRepository) Delete(ctx context.Context, id string) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	r.s.users.remove(id)
	r.s.persistLocked(ctx, methodDeleteUser)

	logger.Log(ctx).Debug(ctx, msgUserDeleted, zap.String("user_id", id))
}
