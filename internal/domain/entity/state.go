package entity

import "time"

// SchemaVersion del documento State que escribe esta versión.
const SchemaVersion = 1

// State es el documento completo que se persiste como un solo blob.
type State struct {
	SchemaVersion   int            `json:"schemaVersion"`
	Revision        int64          `json:"revision"`
	Products        []Product      `json:"products"`
	Orders          []Order        `json:"orders"`
	Users           []User         `json:"users"`
	Stores          []Store        `json:"stores"`
	Influencers     []Influencer   `json:"influencers"`
	Announcements   []Announcement `json:"announcements"`
	LoginBackground string         `json:"loginBackground,omitempty"`
	SavedAt         time.Time      `json:"savedAt"`
}

// Clone devuelve una copia profunda del estado.
func (s State) Clone() State {
	out := s
	out.Products = CloneProducts(s.Products)
	out.Orders = CloneOrders(s.Orders)
	if s.Users != nil {
		out.Users = make([]User, len(s.Users))
		for i, u := range s.Users {
			out.Users[i] = u.Clone()
		}
	}
	if s.Stores != nil {
		out.Stores = make([]Store, len(s.Stores))
		for i, st := range s.Stores {
			st.SubBranches = append([]string(nil), st.SubBranches...)
			out.Stores[i] = st
		}
	}
	out.Influencers = append([]Influencer(nil), s.Influencers...)
	out.Announcements = append([]Announcement(nil), s.Announcements...)
	return out
}

// CloneProducts copia la lista de productos.
func CloneProducts(in []Product) []Product {
	if in == nil {
		return nil
	}
	out := make([]Product, len(in))
	for i, p := range in {
		out[i] = p.Clone()
	}
	return out
}

// CloneOrders copia la lista de pedidos.
func CloneOrders(in []Order) []Order {
	if in == nil {
		return nil
	}
	out := make([]Order, len(in))
	for i, o := range in {
		out[i] = o.Clone()
	}
	return out
}

// FindProduct devuelve el índice del producto o -1.
func FindProduct(products []Product, id string) int {
	for i := range products {
		if products[i].ID == id {
			return i
		}
	}
	return -1
}

// FindOrder devuelve el índice del pedido o -1.
func FindOrder(orders []Order, id string) int {
	for i := range orders {
		if orders[i].ID == id {
			return i
		}
	}
	return -1
}
