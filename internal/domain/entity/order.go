package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de Order. confirmed y cancelled son terminales.
const (
	OrderStatusPending   = "pending"
	OrderStatusConfirmed = "confirmed"
	OrderStatusCancelled = "cancelled"
)

// UnknownProductName se usa cuando un ítem referencia un producto inexistente.
const UnknownProductName = "Unknown"

// OrderItem es una línea del pedido con datos del producto congelados al crearlo.
type OrderItem struct {
	ProductID        string          `json:"productId"`
	ProductName      string          `json:"productName"`
	SKU              string          `json:"sku"`
	Quantity         int             `json:"quantity"`
	OriginalQuantity int             `json:"originalQuantity"`
	UnitPrice        decimal.Decimal `json:"unitPrice"`
	StockAtTime      *int            `json:"stockAtTime,omitempty"`
}

// Subtotal = Quantity × UnitPrice.
func (i OrderItem) Subtotal() decimal.Decimal {
	return i.UnitPrice.Mul(decimal.NewFromInt(int64(i.Quantity)))
}

// Order es una solicitud contra un canal de stock (Source).
type Order struct {
	ID               string          `json:"id"`
	PONumber         string          `json:"poNumber"`
	Source           Channel         `json:"source"`
	StoreName        string          `json:"storeName,omitempty"`
	SubBranch        string          `json:"subBranch,omitempty"`
	InfluencerName   string          `json:"influencerName,omitempty"`
	TargetName       string          `json:"targetName,omitempty"`
	RecipientName    string          `json:"recipientName,omitempty"`
	RecipientAddress string          `json:"recipientAddress,omitempty"`
	Items            []OrderItem     `json:"items"`
	TotalValue       decimal.Decimal `json:"totalValue"`
	Status           string          `json:"status"`
	RequestedAt      time.Time       `json:"requestedAt"`
	ProcessedAt      *time.Time      `json:"processedAt,omitempty"`
	PurchasingDept   string          `json:"purchasingDept"`
	ProcessedBy      string          `json:"processedBy,omitempty"`
	WarehouseNote    string          `json:"warehouseNote,omitempty"`
	TrackingNumber   string          `json:"trackingNumber,omitempty"`
}

// IsPending indica si el pedido aún admite transiciones y edición de cantidades.
func (o *Order) IsPending() bool { return o.Status == OrderStatusPending }

// Target describe el destino: tienda, influencer, destinatario o "Unspecified".
func (o *Order) Target() string {
	for _, s := range []string{o.StoreName, o.InfluencerName, o.TargetName, o.RecipientName} {
		if s != "" {
			return s
		}
	}
	return "Unspecified"
}

// RecalculateTotal recalcula TotalValue como Σ quantity × unitPrice.
func (o *Order) RecalculateTotal() {
	total := decimal.Zero
	for _, it := range o.Items {
		total = total.Add(it.Subtotal())
	}
	o.TotalValue = total
}

// TotalQuantity suma las cantidades actuales de todos los ítems.
func (o *Order) TotalQuantity() int {
	n := 0
	for _, it := range o.Items {
		n += it.Quantity
	}
	return n
}

// Clone copia el pedido sin compartir ítems ni punteros.
func (o Order) Clone() Order {
	out := o
	if o.Items != nil {
		out.Items = make([]OrderItem, len(o.Items))
		for i, it := range o.Items {
			if it.StockAtTime != nil {
				v := *it.StockAtTime
				it.StockAtTime = &v
			}
			out.Items[i] = it
		}
	}
	if o.ProcessedAt != nil {
		t := *o.ProcessedAt
		out.ProcessedAt = &t
	}
	return out
}
