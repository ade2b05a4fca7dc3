package inventory

import (
	"time"

	"github.com/laglace/stock-portal/internal/domain"
	"github.com/laglace/stock-portal/internal/domain/entity"
)

// Las funciones de este archivo son puras: reciben colecciones, devuelven copias nuevas y
// nunca modifican la entrada. Un id desconocido es un no-op.

// StockPolicy decide qué hacer cuando una línea pide más de lo que hay en el canal.
type StockPolicy int

const (
	// PolicyClamp descuenta hasta cero y confirma igual (comportamiento por defecto).
	PolicyClamp StockPolicy = iota
	// PolicyReject rechaza la confirmación completa con *domain.InsufficientStockError.
	PolicyReject
)

// BulkOutcome lista qué pedidos confirmó BulkConfirmPending y cuáles quedaron pendientes.
type BulkOutcome struct {
	Confirmed []string
	Skipped   []string
}

// ConfirmOrder confirma un pedido pendiente descontando cada línea del canal del pedido,
// con piso en cero. Ítems sin producto se ignoran. Si el pedido no está pendiente no hay efecto.
func ConfirmOrder(orders []entity.Order, products []entity.Product, orderID, confirmedBy string, now time.Time) ([]entity.Order, []entity.Product) {
	outOrders, outProducts, _ := ConfirmOrderWithPolicy(orders, products, orderID, confirmedBy, now, PolicyClamp)
	return outOrders, outProducts
}

// ConfirmOrderWithPolicy es ConfirmOrder con política explícita de stock insuficiente.
// Con PolicyReject devuelve las entradas copiadas sin cambios y el error.
func ConfirmOrderWithPolicy(orders []entity.Order, products []entity.Product, orderID, confirmedBy string, now time.Time, policy StockPolicy) ([]entity.Order, []entity.Product, error) {
	outOrders := entity.CloneOrders(orders)
	outProducts := entity.CloneProducts(products)

	idx := entity.FindOrder(outOrders, orderID)
	if idx < 0 || !outOrders[idx].IsPending() {
		return outOrders, outProducts, nil
	}
	order := &outOrders[idx]

	if policy == PolicyReject {
		if err := checkSufficient(order, outProducts); err != nil {
			return entity.CloneOrders(orders), entity.CloneProducts(products), err
		}
	}

	for _, it := range order.Items {
		pIdx := entity.FindProduct(outProducts, it.ProductID)
		if pIdx < 0 {
			continue
		}
		outProducts[pIdx].AddStock(order.Source, -it.Quantity)
	}
	markProcessed(order, entity.OrderStatusConfirmed, confirmedBy, now)
	return outOrders, outProducts, nil
}

// checkSufficient valida todas las líneas contra una copia que se va descontando,
// así dos líneas del mismo producto suman su demanda.
func checkSufficient(order *entity.Order, products []entity.Product) error {
	running := entity.CloneProducts(products)
	for _, it := range order.Items {
		pIdx := entity.FindProduct(running, it.ProductID)
		if pIdx < 0 {
			continue
		}
		avail, ok := running[pIdx].Stock(order.Source)
		if !ok {
			continue
		}
		if avail < it.Quantity {
			return &domain.InsufficientStockError{
				OrderID:   order.ID,
				ProductID: it.ProductID,
				Channel:   string(order.Source),
				Available: avail,
				Requested: it.Quantity,
			}
		}
		running[pIdx].AddStock(order.Source, -it.Quantity)
	}
	return nil
}

// RejectOrder cancela un pedido pendiente. No toca stock.
func RejectOrder(orders []entity.Order, orderID, rejectedBy string, now time.Time) []entity.Order {
	out := entity.CloneOrders(orders)
	idx := entity.FindOrder(out, orderID)
	if idx < 0 || !out[idx].IsPending() {
		return out
	}
	markProcessed(&out[idx], entity.OrderStatusCancelled, rejectedBy, now)
	return out
}

// BulkConfirmPending confirma, en orden de lista, cada pedido pendiente cuyo stock alcance
// para todas sus líneas. Un pedido que no alcanza queda pendiente y no toca stock.
// Ítems que apuntan a productos inexistentes hacen que el pedido se omita.
func BulkConfirmPending(orders []entity.Order, products []entity.Product, confirmedBy string, now time.Time) ([]entity.Order, []entity.Product, BulkOutcome) {
	outOrders := entity.CloneOrders(orders)
	outProducts := entity.CloneProducts(products)
	var res BulkOutcome

	for i := range outOrders {
		order := &outOrders[i]
		if !order.IsPending() {
			continue
		}
		tentative, ok := reserveAll(order, outProducts)
		if !ok {
			res.Skipped = append(res.Skipped, order.ID)
			continue
		}
		outProducts = tentative
		markProcessed(order, entity.OrderStatusConfirmed, confirmedBy, now)
		res.Confirmed = append(res.Confirmed, order.ID)
	}
	return outOrders, outProducts, res
}

// reserveAll descuenta todas las líneas sobre una copia; si alguna no alcanza devuelve ok=false.
func reserveAll(order *entity.Order, products []entity.Product) ([]entity.Product, bool) {
	tentative := entity.CloneProducts(products)
	for _, it := range order.Items {
		pIdx := entity.FindProduct(tentative, it.ProductID)
		if pIdx < 0 {
			return nil, false
		}
		avail, ok := tentative[pIdx].Stock(order.Source)
		if !ok || avail < it.Quantity {
			return nil, false
		}
		tentative[pIdx].SetStock(order.Source, avail-it.Quantity)
	}
	return tentative, true
}

// AdjustItemQuantity cambia la cantidad de la línea de productID en un pedido pendiente y
// recalcula el total. Cantidades negativas se ignoran; OriginalQuantity no cambia.
func AdjustItemQuantity(orders []entity.Order, orderID, productID string, newQuantity int) []entity.Order {
	out := entity.CloneOrders(orders)
	if newQuantity < 0 {
		return out
	}
	idx := entity.FindOrder(out, orderID)
	if idx < 0 || !out[idx].IsPending() {
		return out
	}
	order := &out[idx]
	for i := range order.Items {
		if order.Items[i].ProductID == productID {
			order.Items[i].Quantity = newQuantity
			break
		}
	}
	order.RecalculateTotal()
	return out
}

// ManualStockAdjustment suma delta (con signo) al canal indicado, con piso en cero.
func ManualStockAdjustment(products []entity.Product, productID string, channel entity.Channel, delta int) []entity.Product {
	out := entity.CloneProducts(products)
	idx := entity.FindProduct(out, productID)
	if idx < 0 {
		return out
	}
	out[idx].AddStock(channel, delta)
	return out
}

func markProcessed(order *entity.Order, status, by string, now time.Time) {
	t := now
	order.Status = status
	order.ProcessedAt = &t
	if by != "" {
		order.ProcessedBy = by
	}
}
