package usecase

import (
	"context"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/laglace/stock-portal/internal/application/dto"
	"github.com/laglace/stock-portal/internal/application/state"
	"github.com/laglace/stock-portal/internal/domain"
	"github.com/laglace/stock-portal/internal/domain/entity"
)

// Valores por defecto de la ficha de producto.
const (
	DefaultUnit     = "ชิ้น"
	DefaultCategory = "ทั่วไป"
	DefaultLeadTime = "1 week"
	DefaultImage    = "https://images.unsplash.com/photo-1586528116311-ad8dd3c8310d?auto=format&fit=crop&q=80&w=300"
)

// ProductUseCase casos de uso CRUD para productos. El stock solo cambia por pedidos o ajustes.
type ProductUseCase struct {
	store *state.Store
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(store *state.Store) *ProductUseCase {
	return &ProductUseCase{store: store}
}

// Create crea un producto. Nombre y SKU son obligatorios; el SKU no se repite.
func (uc *ProductUseCase) Create(ctx context.Context, in dto.CreateProductRequest) (*entity.Product, error) {
	name := strings.TrimSpace(in.Name)
	sku := strings.TrimSpace(in.SKU)
	if name == "" || sku == "" || in.UnitPrice.IsNegative() {
		return nil, domain.ErrInvalidInput
	}
	p := entity.Product{
		ID:          newID("P"),
		SKU:         sku,
		Name:        name,
		Unit:        nonEmpty(in.Unit, DefaultUnit),
		Category:    nonEmpty(in.Category, DefaultCategory),
		Description: in.Description,
		Barcode13:   in.Barcode13,
		BarcodeMT:   in.BarcodeMT,
		Images:      in.Images,
		Weight:      in.Weight,
		Dimensions:  in.Dimensions,
		MFD:         in.MFD,
		EXP:         in.EXP,
		LotNumber:   in.LotNumber,
		UnitPrice:   in.UnitPrice,
		LeadTime:    nonEmpty(in.LeadTime, DefaultLeadTime),
	}
	if len(p.Images) == 0 {
		p.Images = []string{DefaultImage}
	}
	p.SetStock(entity.ChannelPurchasing, in.Stock.Purchasing)
	p.SetStock(entity.ChannelContent, in.Stock.Content)
	p.SetStock(entity.ChannelInfluencer, in.Stock.Influencer)
	p.SetStock(entity.ChannelLive, in.Stock.Live)
	p.SetStock(entity.ChannelAffiliate, in.Stock.Affiliate)
	p.SetStock(entity.ChannelBuffer, in.Stock.Buffer)

	_, err := uc.store.Mutate(ctx, func(st *entity.State) error {
		if skuTaken(st.Products, sku, "") {
			return domain.ErrDuplicate
		}
		st.Products = append(st.Products, p)
		return nil
	})
	if !committed(err) {
		return nil, err
	}
	return &p, err
}

// GetByID obtiene un producto por ID.
func (uc *ProductUseCase) GetByID(id string) (*entity.Product, error) {
	st := uc.store.Snapshot()
	idx := entity.FindProduct(st.Products, id)
	if idx < 0 {
		return nil, domain.ErrNotFound
	}
	return &st.Products[idx], nil
}

// List devuelve el catálogo filtrado. WarehouseOnly deja los productos con reserva en bodega.
func (uc *ProductUseCase) List(f dto.ProductFilter) []entity.Product {
	q := strings.ToLower(strings.TrimSpace(f.Search))
	out := make([]entity.Product, 0)
	for _, p := range uc.store.Snapshot().Products {
		if f.Category != "" && f.Category != "all" && p.Category != f.Category {
			continue
		}
		if f.WarehouseOnly && p.StockBuffer <= 0 {
			continue
		}
		if q != "" &&
			!strings.Contains(strings.ToLower(p.Name), q) &&
			!strings.Contains(strings.ToLower(p.SKU), q) &&
			!strings.Contains(strings.ToLower(p.ID), q) {
			continue
		}
		out = append(out, p)
	}
	return out
}

// Categories lista las categorías en uso en orden alfabético tailandés.
func (uc *ProductUseCase) Categories() []string {
	seen := map[string]bool{}
	out := make([]string, 0)
	for _, p := range uc.store.Snapshot().Products {
		if p.Category != "" && !seen[p.Category] {
			seen[p.Category] = true
			out = append(out, p.Category)
		}
	}
	collate.New(language.Thai).SortStrings(out)
	return out
}

// Update edita la ficha. No modifica stock.
func (uc *ProductUseCase) Update(ctx context.Context, id string, in dto.UpdateProductRequest) (*entity.Product, error) {
	var updated entity.Product
	_, err := uc.store.Mutate(ctx, func(st *entity.State) error {
		idx := entity.FindProduct(st.Products, id)
		if idx < 0 {
			return domain.ErrNotFound
		}
		p := &st.Products[idx]
		if in.SKU != nil {
			sku := strings.TrimSpace(*in.SKU)
			if sku == "" {
				return domain.ErrInvalidInput
			}
			if skuTaken(st.Products, sku, id) {
				return domain.ErrDuplicate
			}
			p.SKU = sku
		}
		if in.Name != nil {
			if strings.TrimSpace(*in.Name) == "" {
				return domain.ErrInvalidInput
			}
			p.Name = strings.TrimSpace(*in.Name)
		}
		if in.UnitPrice != nil {
			if in.UnitPrice.IsNegative() {
				return domain.ErrInvalidInput
			}
			p.UnitPrice = *in.UnitPrice
		}
		setString(&p.Unit, in.Unit)
		setString(&p.Category, in.Category)
		setString(&p.Description, in.Description)
		setString(&p.Barcode13, in.Barcode13)
		setString(&p.BarcodeMT, in.BarcodeMT)
		setString(&p.MFD, in.MFD)
		setString(&p.EXP, in.EXP)
		setString(&p.LotNumber, in.LotNumber)
		setString(&p.LeadTime, in.LeadTime)
		if in.Images != nil {
			p.Images = append([]string(nil), in.Images...)
		}
		if in.Weight != nil {
			w := *in.Weight
			p.Weight = &w
		}
		if in.Dimensions != nil {
			d := *in.Dimensions
			p.Dimensions = &d
		}
		updated = p.Clone()
		return nil
	})
	if !committed(err) {
		return nil, err
	}
	return &updated, err
}

// Delete elimina el producto. Los pedidos conservan nombre y SKU congelados.
func (uc *ProductUseCase) Delete(ctx context.Context, id string) error {
	_, err := uc.store.Mutate(ctx, func(st *entity.State) error {
		idx := entity.FindProduct(st.Products, id)
		if idx < 0 {
			return domain.ErrNotFound
		}
		st.Products = append(st.Products[:idx], st.Products[idx+1:]...)
		return nil
	})
	return err
}

func skuTaken(products []entity.Product, sku, exceptID string) bool {
	for _, p := range products {
		if p.ID != exceptID && strings.EqualFold(p.SKU, sku) {
			return true
		}
	}
	return false
}

func setString(dst *string, v *string) {
	if v != nil {
		*dst = strings.TrimSpace(*v)
	}
}

func nonEmpty(v, def string) string {
	if strings.TrimSpace(v) == "" {
		return def
	}
	return strings.TrimSpace(v)
}
