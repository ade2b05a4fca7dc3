package dto

import (
	"github.com/shopspring/decimal"

	"github.com/laglace/stock-portal/internal/domain/entity"
)

// ChannelStock stock inicial o editado por canal.
type ChannelStock struct {
	Purchasing int `json:"purchasing"`
	Content    int `json:"content"`
	Influencer int `json:"influencer"`
	Live       int `json:"live"`
	Affiliate  int `json:"affiliate"`
	Buffer     int `json:"buffer"`
}

// CreateProductRequest entrada para crear un producto.
type CreateProductRequest struct {
	SKU         string             `json:"sku" validate:"required"`
	Name        string             `json:"name" validate:"required"`
	Unit        string             `json:"unit"`
	Category    string             `json:"category"`
	Description string             `json:"description"`
	Barcode13   string             `json:"barcode13"`
	BarcodeMT   string             `json:"barcode_mt"`
	Images      []string           `json:"images"`
	Weight      *float64           `json:"weight"`
	Dimensions  *entity.Dimensions `json:"dimensions"`
	MFD         string             `json:"mfd"`
	EXP         string             `json:"exp"`
	LotNumber   string             `json:"lot_number"`
	UnitPrice   decimal.Decimal    `json:"unit_price"`
	LeadTime    string             `json:"lead_time"`
	Stock       ChannelStock       `json:"stock"`
}

// UpdateProductRequest edición de ficha; el stock solo cambia con ajustes.
type UpdateProductRequest struct {
	SKU         *string            `json:"sku"`
	Name        *string            `json:"name"`
	Unit        *string            `json:"unit"`
	Category    *string            `json:"category"`
	Description *string            `json:"description"`
	Barcode13   *string            `json:"barcode13"`
	BarcodeMT   *string            `json:"barcode_mt"`
	Images      []string           `json:"images"`
	Weight      *float64           `json:"weight"`
	Dimensions  *entity.Dimensions `json:"dimensions"`
	MFD         *string            `json:"mfd"`
	EXP         *string            `json:"exp"`
	LotNumber   *string            `json:"lot_number"`
	UnitPrice   *decimal.Decimal   `json:"unit_price"`
	LeadTime    *string            `json:"lead_time"`
}

// ProductFilter filtros del catálogo.
type ProductFilter struct {
	Category      string `query:"category"`
	Search        string `query:"search"`
	WarehouseOnly bool   `query:"warehouse_only"`
}

// StockAdjustmentRequest ajuste manual (rotura, reconteo). Delta con signo, distinto de cero.
type StockAdjustmentRequest struct {
	Channel string `json:"channel"`
	Delta   int    `json:"delta"`
	Reason  string `json:"reason"`
}

// StockSummaryDTO totales por canal.
type StockSummaryDTO struct {
	ByChannel  map[string]int `json:"by_channel"`
	GrandTotal int            `json:"grand_total"`
}
