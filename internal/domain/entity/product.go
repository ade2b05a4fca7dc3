package entity

import (
	"math"

	"github.com/shopspring/decimal"
)

// Dimensions del empaque en centímetros.
type Dimensions struct {
	L float64 `json:"l"`
	W float64 `json:"w"`
	H float64 `json:"h"`
}

// Product representa un SKU con un contador de stock por canal.
// Los contadores nunca son negativos; solo se modifican vía Stock/SetStock.
type Product struct {
	ID          string          `json:"id"`
	SKU         string          `json:"sku"`
	Name        string          `json:"name"`
	Unit        string          `json:"unit"`
	Category    string          `json:"category"`
	Description string          `json:"description,omitempty"`
	Barcode13   string          `json:"barcode13,omitempty"`
	BarcodeMT   string          `json:"barcodeMT,omitempty"`
	Images      []string        `json:"images"`
	Weight      *float64        `json:"weight,omitempty"`
	Dimensions  *Dimensions     `json:"dimensions,omitempty"`
	MFD         string          `json:"mfd,omitempty"`
	EXP         string          `json:"exp,omitempty"`
	LotNumber   string          `json:"lotNumber,omitempty"`
	UnitPrice   decimal.Decimal `json:"unitPrice"`
	LeadTime    string          `json:"leadTime"`

	StockPurchasing int `json:"stockPurchasing"`
	StockContent    int `json:"stockContent"`
	StockInfluencer int `json:"stockInfluencer"`
	StockLive       int `json:"stockLive"`
	StockAffiliate  int `json:"stockAffiliate"`
	StockBuffer     int `json:"stockBuffer"`
}

// Stock devuelve el contador del canal; ok=false si el canal no existe.
func (p *Product) Stock(c Channel) (int, bool) {
	ptr := p.counter(c)
	if ptr == nil {
		return 0, false
	}
	return *ptr, true
}

// SetStock fija el contador del canal con piso en cero.
func (p *Product) SetStock(c Channel, qty int) bool {
	ptr := p.counter(c)
	if ptr == nil {
		return false
	}
	if qty < 0 {
		qty = 0
	}
	*ptr = qty
	return true
}

// AddStock suma delta (con signo) al canal, con piso en cero y tope en math.MaxInt.
// Devuelve el nuevo valor.
func (p *Product) AddStock(c Channel, delta int) (int, bool) {
	cur, ok := p.Stock(c)
	if !ok {
		return 0, false
	}
	next := cur + delta
	if delta > 0 && cur > math.MaxInt-delta {
		next = math.MaxInt
	}
	p.SetStock(c, next)
	v, _ := p.Stock(c)
	return v, true
}

func (p *Product) counter(c Channel) *int {
	switch c {
	case ChannelPurchasing:
		return &p.StockPurchasing
	case ChannelContent:
		return &p.StockContent
	case ChannelInfluencer:
		return &p.StockInfluencer
	case ChannelLive:
		return &p.StockLive
	case ChannelAffiliate:
		return &p.StockAffiliate
	case ChannelBuffer:
		return &p.StockBuffer
	}
	return nil
}

// TotalStock suma los canales de asignación más la reserva (content no cuenta).
func (p *Product) TotalStock() int {
	return p.StockPurchasing + p.StockInfluencer + p.StockLive + p.StockAffiliate + p.StockBuffer
}

// Clone copia el producto sin compartir slices ni punteros.
func (p Product) Clone() Product {
	out := p
	if p.Images != nil {
		out.Images = append([]string(nil), p.Images...)
	}
	if p.Weight != nil {
		w := *p.Weight
		out.Weight = &w
	}
	if p.Dimensions != nil {
		d := *p.Dimensions
		out.Dimensions = &d
	}
	return out
}
