// Package seed contiene el catálogo, directorio y cuentas iniciales del portal.
package seed

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/laglace/stock-portal/internal/domain/entity"
)

var ict = time.FixedZone("ICT", 7*60*60)

// State arma el estado inicial. passwordHash es el bcrypt que reciben las cuentas sembradas.
func State(passwordHash string, now time.Time) entity.State {
	admin := entity.User{
		ID:           "U1",
		Name:         "คุณประเสริฐ (Admin)",
		Email:        "admin@laglace.com",
		PasswordHash: passwordHash,
		Role:         entity.RoleWarehouse,
	}
	admin.ApplyRoleDefaults()
	admin.CanManageAccounts = true

	staff := entity.User{
		ID:           "U2",
		Name:         "คุณสมชาย (Staff)",
		Email:        "staff@laglace.com",
		PasswordHash: passwordHash,
		Role:         entity.RolePurchasing,
	}
	staff.ApplyRoleDefaults()

	return entity.State{
		SchemaVersion: entity.SchemaVersion,
		Products:      Products(),
		Orders:        Orders(),
		Users:         []entity.User{admin, staff},
		Stores: []entity.Store{
			{ID: "S1", Name: "7-Eleven Central", SubBranches: []string{"สาขาลาดพร้าว", "สาขาสยาม", "สาขาบางนา"}},
			{ID: "S2", Name: "Lotus's Go Fresh", SubBranches: []string{"สาขาลาดพร้าว", "สาขาบางนา"}},
			{ID: "S3", Name: "Big C Extra", SubBranches: []string{"สาขาลาดพร้าว"}},
		},
		Influencers: []entity.Influencer{
			{ID: "IF1", Name: "คุณมานี Channel"},
			{ID: "IF2", Name: "รีวิวของกิน 4.0"},
		},
		Announcements: []entity.Announcement{
			{ID: 1, Title: "ยินดีต้อนรับสู่ LAGLACE Stock Portal", Detail: "ระบบจัดการสต็อกและคำขอสินค้าแบบรวมศูนย์", Icon: "megaphone", Color: "blue", UpdatedAt: now},
		},
	}
}

// Products catálogo inicial.
func Products() []entity.Product {
	weight := func(w float64) *float64 { return &w }
	return []entity.Product{
		{
			ID: "P001", SKU: "SKU-WTR-001", Name: "น้ำดื่ม 600ml (แพ็ค 12)", Unit: "แพ็ค", Category: "เครื่องดื่ม",
			Description: "น้ำดื่มสะอาดผ่านกระบวนการ RO", Barcode13: "8850000000012", BarcodeMT: "MT-WTR-001",
			Images:     []string{"https://images.unsplash.com/photo-1523362628744-0c100150b504?auto=format&fit=crop&q=80&w=300"},
			Weight:     weight(7.2),
			Dimensions: &entity.Dimensions{L: 30, W: 20, H: 25},
			UnitPrice:  decimal.NewFromInt(120), LeadTime: "1 day",
			StockPurchasing: 500, StockContent: 250, StockInfluencer: 750, StockLive: 300, StockAffiliate: 200, StockBuffer: 1000,
		},
		{
			ID: "P002", SKU: "SKU-RICE-005", Name: "ข้าวหอมมะลิ 5kg", Unit: "ถุง", Category: "อาหารแห้ง",
			Description: "ข้าวหอมมะลิแท้ 100% คัดพิเศษ", Barcode13: "8850000000055", BarcodeMT: "MT-RICE-005",
			Images:    []string{"https://images.unsplash.com/photo-1586201375761-83865001e31c?auto=format&fit=crop&q=80&w=300"},
			Weight:    weight(5.0),
			UnitPrice: decimal.NewFromInt(245), LeadTime: "1 week",
			StockPurchasing: 150, StockContent: 50, StockInfluencer: 300, StockLive: 100, StockAffiliate: 50, StockBuffer: 500,
		},
		{
			ID: "P003", SKU: "SKU-OIL-001", Name: "น้ำมันพืช 1L", Unit: "ขวด", Category: "เครื่องปรุง",
			Description: "น้ำมันปาล์มคุณภาพสูงสำหรับการทอด", Barcode13: "8850000000101", BarcodeMT: "MT-OIL-001",
			Images:    []string{"https://images.unsplash.com/photo-1474979266404-7eaacbcd87c5?auto=format&fit=crop&q=80&w=300"},
			Weight:    weight(1.0),
			UnitPrice: decimal.NewFromInt(48), LeadTime: "1 day",
			StockPurchasing: 200, StockContent: 100, StockInfluencer: 200, StockLive: 150, StockAffiliate: 80, StockBuffer: 400,
		},
	}
}

// Orders historial de ejemplo: uno confirmado y uno pendiente.
func Orders() []entity.Order {
	processed := time.Date(2024, 5, 20, 11, 0, 0, 0, time.UTC)
	orders := []entity.Order{
		{
			ID: "ORD-001", PONumber: "PO-20240520-000001", Source: entity.ChannelPurchasing,
			StoreName: "7-Eleven Central", SubBranch: "สาขาลาดพร้าว",
			Items: []entity.OrderItem{{
				ProductID: "P001", ProductName: "น้ำดื่ม 600ml (แพ็ค 12)", SKU: "SKU-WTR-001",
				Quantity: 100, OriginalQuantity: 100, UnitPrice: decimal.NewFromInt(120),
			}},
			Status:         entity.OrderStatusConfirmed,
			RequestedAt:    time.Date(2024, 5, 20, 10, 30, 0, 0, ict),
			ProcessedAt:    &processed,
			PurchasingDept: "คุณสมชาย (Staff)",
			ProcessedBy:    "คุณประเสริฐ (Admin)",
		},
		{
			ID: "ORD-002", PONumber: "PO-20240521-000002", Source: entity.ChannelPurchasing,
			StoreName: "Lotus's Go Fresh", SubBranch: "สาขาบางนา",
			Items: []entity.OrderItem{{
				ProductID: "P002", ProductName: "ข้าวหอมมะลิ 5kg", SKU: "SKU-RICE-005",
				Quantity: 50, OriginalQuantity: 50, UnitPrice: decimal.NewFromInt(245),
			}},
			Status:         entity.OrderStatusPending,
			RequestedAt:    time.Date(2024, 5, 21, 9, 15, 0, 0, ict),
			PurchasingDept: "คุณสมชาย (Staff)",
		},
	}
	for i := range orders {
		orders[i].RecalculateTotal()
	}
	return orders
}
