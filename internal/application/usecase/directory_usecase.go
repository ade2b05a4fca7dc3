package usecase

import (
	"context"
	"strings"

	"github.com/laglace/stock-portal/internal/application/dto"
	"github.com/laglace/stock-portal/internal/application/state"
	"github.com/laglace/stock-portal/internal/domain"
	"github.com/laglace/stock-portal/internal/domain/entity"
)

// DirectoryUseCase tiendas y influencers. Los pedidos los referencian por nombre.
type DirectoryUseCase struct {
	store *state.Store
}

// NewDirectoryUseCase construye el caso de uso.
func NewDirectoryUseCase(store *state.Store) *DirectoryUseCase {
	return &DirectoryUseCase{store: store}
}

func (uc *DirectoryUseCase) ListStores() []entity.Store {
	out := uc.store.Snapshot().Stores
	if out == nil {
		out = []entity.Store{}
	}
	return out
}

func (uc *DirectoryUseCase) ListInfluencers() []entity.Influencer {
	out := uc.store.Snapshot().Influencers
	if out == nil {
		out = []entity.Influencer{}
	}
	return out
}

// CreateStore alta de cadena; nombres repetidos devuelven ErrDuplicate.
func (uc *DirectoryUseCase) CreateStore(ctx context.Context, in dto.CreateStoreRequest) (*entity.Store, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, domain.ErrInvalidInput
	}
	s := entity.Store{ID: newID("S"), Name: name}
	for _, b := range in.SubBranches {
		if b = strings.TrimSpace(b); b != "" {
			s.SubBranches = append(s.SubBranches, b)
		}
	}
	_, err := uc.store.Mutate(ctx, func(st *entity.State) error {
		for _, existing := range st.Stores {
			if strings.EqualFold(existing.Name, name) {
				return domain.ErrDuplicate
			}
		}
		st.Stores = append(st.Stores, s)
		return nil
	})
	if !committed(err) {
		return nil, err
	}
	return &s, err
}

// DeleteStore elimina la cadena; los pedidos guardan el nombre.
func (uc *DirectoryUseCase) DeleteStore(ctx context.Context, id string) error {
	_, err := uc.store.Mutate(ctx, func(st *entity.State) error {
		for i := range st.Stores {
			if st.Stores[i].ID == id {
				st.Stores = append(st.Stores[:i], st.Stores[i+1:]...)
				return nil
			}
		}
		return domain.ErrNotFound
	})
	return err
}

// CreateInfluencer alta de influencer.
func (uc *DirectoryUseCase) CreateInfluencer(ctx context.Context, in dto.CreateInfluencerRequest) (*entity.Influencer, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, domain.ErrInvalidInput
	}
	inf := entity.Influencer{ID: newID("IF"), Name: name}
	_, err := uc.store.Mutate(ctx, func(st *entity.State) error {
		for _, existing := range st.Influencers {
			if strings.EqualFold(existing.Name, name) {
				return domain.ErrDuplicate
			}
		}
		st.Influencers = append(st.Influencers, inf)
		return nil
	})
	if !committed(err) {
		return nil, err
	}
	return &inf, err
}

func (uc *DirectoryUseCase) DeleteInfluencer(ctx context.Context, id string) error {
	_, err := uc.store.Mutate(ctx, func(st *entity.State) error {
		for i := range st.Influencers {
			if st.Influencers[i].ID == id {
				st.Influencers = append(st.Influencers[:i], st.Influencers[i+1:]...)
				return nil
			}
		}
		return domain.ErrNotFound
	})
	return err
}
