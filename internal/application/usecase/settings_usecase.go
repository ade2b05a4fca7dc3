package usecase

import (
	"context"
	"sort"
	"strings"

	"github.com/laglace/stock-portal/internal/application/dto"
	"github.com/laglace/stock-portal/internal/application/state"
	"github.com/laglace/stock-portal/internal/domain"
	"github.com/laglace/stock-portal/internal/domain/entity"
)

// SettingsUseCase noticias internas y fondo de la pantalla de login.
type SettingsUseCase struct {
	store *state.Store
}

// NewSettingsUseCase construye el caso de uso.
func NewSettingsUseCase(store *state.Store) *SettingsUseCase {
	return &SettingsUseCase{store: store}
}

// ListAnnouncements más recientes primero.
func (uc *SettingsUseCase) ListAnnouncements() []entity.Announcement {
	out := uc.store.Snapshot().Announcements
	if out == nil {
		out = []entity.Announcement{}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].UpdatedAt.After(out[j].UpdatedAt) })
	return out
}

// CreateAnnouncement asigna el siguiente id numérico.
func (uc *SettingsUseCase) CreateAnnouncement(ctx context.Context, in dto.AnnouncementRequest) (*entity.Announcement, error) {
	if strings.TrimSpace(in.Title) == "" {
		return nil, domain.ErrInvalidInput
	}
	var created entity.Announcement
	_, err := uc.store.Mutate(ctx, func(st *entity.State) error {
		next := 1
		for _, a := range st.Announcements {
			if a.ID >= next {
				next = a.ID + 1
			}
		}
		created = announcementFrom(next, in)
		created.UpdatedAt = uc.store.Now()
		st.Announcements = append(st.Announcements, created)
		return nil
	})
	if !committed(err) {
		return nil, err
	}
	return &created, err
}

// UpdateAnnouncement reemplaza el contenido y actualiza UpdatedAt.
func (uc *SettingsUseCase) UpdateAnnouncement(ctx context.Context, id int, in dto.AnnouncementRequest) (*entity.Announcement, error) {
	if strings.TrimSpace(in.Title) == "" {
		return nil, domain.ErrInvalidInput
	}
	var updated entity.Announcement
	_, err := uc.store.Mutate(ctx, func(st *entity.State) error {
		for i := range st.Announcements {
			if st.Announcements[i].ID == id {
				updated = announcementFrom(id, in)
				updated.UpdatedAt = uc.store.Now()
				st.Announcements[i] = updated
				return nil
			}
		}
		return domain.ErrNotFound
	})
	if !committed(err) {
		return nil, err
	}
	return &updated, err
}

func (uc *SettingsUseCase) DeleteAnnouncement(ctx context.Context, id int) error {
	_, err := uc.store.Mutate(ctx, func(st *entity.State) error {
		for i := range st.Announcements {
			if st.Announcements[i].ID == id {
				st.Announcements = append(st.Announcements[:i], st.Announcements[i+1:]...)
				return nil
			}
		}
		return domain.ErrNotFound
	})
	return err
}

// LoginBackground devuelve el fondo configurado (vacío = predeterminado).
func (uc *SettingsUseCase) LoginBackground() string {
	return uc.store.Snapshot().LoginBackground
}

// SetLoginBackground acepta data URLs de imagen o URLs http(s). Vacío restablece.
func (uc *SettingsUseCase) SetLoginBackground(ctx context.Context, image string) error {
	image = strings.TrimSpace(image)
	if image != "" &&
		!strings.HasPrefix(image, "data:image/") &&
		!strings.HasPrefix(image, "https://") &&
		!strings.HasPrefix(image, "http://") {
		return domain.ErrInvalidInput
	}
	_, err := uc.store.Mutate(ctx, func(st *entity.State) error {
		st.LoginBackground = image
		return nil
	})
	return err
}

func announcementFrom(id int, in dto.AnnouncementRequest) entity.Announcement {
	return entity.Announcement{
		ID:     id,
		Title:  strings.TrimSpace(in.Title),
		Detail: strings.TrimSpace(in.Detail),
		Icon:   nonEmpty(in.Icon, "📢"),
		Image:  strings.TrimSpace(in.Image),
		Color:  nonEmpty(in.Color, "bg-blue-50"),
	}
}
