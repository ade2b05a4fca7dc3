package entity

import "strings"

// Channel identifica uno de los contadores de stock de un producto.
type Channel string

const (
	ChannelPurchasing Channel = "purchasing"
	ChannelContent    Channel = "content"
	ChannelInfluencer Channel = "influencer"
	ChannelLive       Channel = "live"
	ChannelAffiliate  Channel = "affiliate"
	ChannelBuffer     Channel = "buffer"
)

// Channels en el orden en que se muestran en tablero y reportes.
var Channels = []Channel{
	ChannelPurchasing,
	ChannelContent,
	ChannelInfluencer,
	ChannelLive,
	ChannelAffiliate,
	ChannelBuffer,
}

// OrderSources son los canales desde los que se puede pedir (content es solo contable).
var OrderSources = []Channel{
	ChannelPurchasing,
	ChannelInfluencer,
	ChannelLive,
	ChannelAffiliate,
	ChannelBuffer,
}

// Valid indica si el canal corresponde a un contador de Product.
func (c Channel) Valid() bool {
	switch c {
	case ChannelPurchasing, ChannelContent, ChannelInfluencer, ChannelLive, ChannelAffiliate, ChannelBuffer:
		return true
	}
	return false
}

// ValidSource indica si el canal puede usarse como origen de un pedido.
func (c Channel) ValidSource() bool {
	return c.Valid() && c != ChannelContent
}

// ParseChannel normaliza nombres de canal del tablero ("INFLUENCERS", "OVERALL", ...).
// OVERALL es la reserva de bodega (buffer).
func ParseChannel(s string) (Channel, bool) {
	v := strings.ToLower(strings.TrimSpace(s))
	switch v {
	case "overall":
		return ChannelBuffer, true
	case "influencers":
		return ChannelInfluencer, true
	}
	c := Channel(v)
	return c, c.Valid()
}
