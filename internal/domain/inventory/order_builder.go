package inventory

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/laglace/stock-portal/internal/domain"
	"github.com/laglace/stock-portal/internal/domain/entity"
)

// DraftLine es una línea solicitada antes de congelar los datos del producto.
type DraftLine struct {
	ProductID string
	Quantity  int
}

// Draft es la solicitud de un departamento antes de convertirse en pedido.
type Draft struct {
	ID               string
	PONumber         string
	Source           entity.Channel
	StoreName        string
	SubBranch        string
	InfluencerName   string
	RecipientName    string
	RecipientAddress string
	RequestedBy      string
	Lines            []DraftLine
}

// BuildOrder arma un pedido pendiente a partir del borrador: congela nombre, sku, precio y
// stock del canal de cada producto. Productos desconocidos quedan como "Unknown" con precio 0.
// Líneas con cantidad <= 0 se descartan.
func BuildOrder(d Draft, products []entity.Product, now time.Time) (entity.Order, error) {
	if !d.Source.ValidSource() {
		return entity.Order{}, domain.ErrInvalidInput
	}
	order := entity.Order{
		ID:               d.ID,
		PONumber:         strings.TrimSpace(d.PONumber),
		Source:           d.Source,
		StoreName:        strings.TrimSpace(d.StoreName),
		SubBranch:        strings.TrimSpace(d.SubBranch),
		InfluencerName:   strings.TrimSpace(d.InfluencerName),
		RecipientName:    strings.TrimSpace(d.RecipientName),
		RecipientAddress: strings.TrimSpace(d.RecipientAddress),
		Status:           entity.OrderStatusPending,
		RequestedAt:      now,
		PurchasingDept:   d.RequestedBy,
	}
	if order.RecipientName != "" {
		order.TargetName = order.RecipientName
	}
	for _, l := range d.Lines {
		if l.Quantity <= 0 {
			continue
		}
		item := entity.OrderItem{
			ProductID:        l.ProductID,
			ProductName:      entity.UnknownProductName,
			Quantity:         l.Quantity,
			OriginalQuantity: l.Quantity,
			UnitPrice:        decimal.Zero,
		}
		if idx := entity.FindProduct(products, l.ProductID); idx >= 0 {
			p := products[idx]
			item.ProductName = p.Name
			item.SKU = p.SKU
			item.UnitPrice = p.UnitPrice
			if s, ok := p.Stock(d.Source); ok {
				item.StockAtTime = &s
			}
		}
		order.Items = append(order.Items, item)
	}
	if len(order.Items) == 0 {
		return entity.Order{}, domain.ErrInvalidInput
	}
	order.RecalculateTotal()
	return order, nil
}

// NormalizeIncoming prepara un pedido recibido por la API remota o Kafka para que el motor
// lo trate igual que uno creado localmente.
func NormalizeIncoming(o entity.Order, now time.Time) (entity.Order, error) {
	out := o.Clone()
	if strings.TrimSpace(out.ID) == "" || !out.Source.ValidSource() {
		return entity.Order{}, domain.ErrInvalidInput
	}
	switch out.Status {
	case "":
		out.Status = entity.OrderStatusPending
	case entity.OrderStatusPending, entity.OrderStatusConfirmed, entity.OrderStatusCancelled:
	default:
		return entity.Order{}, domain.ErrInvalidInput
	}
	if out.RequestedAt.IsZero() {
		out.RequestedAt = now
	}
	for i := range out.Items {
		it := &out.Items[i]
		if it.Quantity < 0 {
			it.Quantity = 0
		}
		if it.OriginalQuantity == 0 {
			it.OriginalQuantity = it.Quantity
		}
		if it.ProductName == "" {
			it.ProductName = entity.UnknownProductName
		}
	}
	out.RecalculateTotal()
	return out, nil
}
