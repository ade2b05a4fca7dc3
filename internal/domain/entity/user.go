package entity

// Roles conocidos. El rol es texto libre; estos valores activan permisos por defecto.
const (
	RoleAdmin      = "Admin"
	RoleWarehouse  = "Warehouse"
	RolePurchasing = "Purchasing"
	RoleLive       = "Live Dept"
	RoleAffiliate  = "Affiliate Dept"
)

// Vistas del tablero que un usuario puede tener habilitadas.
const (
	ViewDashboard        = "DASHBOARD"
	ViewPurchasing       = "PURCHASING"
	ViewInfluencerDep    = "INFLUENCER_DEP"
	ViewLiveDep          = "LIVE_DEP"
	ViewAffiliateDep     = "AFFILIATE_DEP"
	ViewBufferDep        = "BUFFER_DEP"
	ViewWarehouse        = "WAREHOUSE"
	ViewInventory        = "INVENTORY"
	ViewAIChat           = "AI_CHAT"
	ViewSettings         = "SETTINGS"
	ViewExport           = "EXPORT"
	ViewShipments        = "SHIPMENTS"
	ViewNewsAnnouncement = "NEWS_ANNOUNCEMENT"
)

// AllViews en el orden del menú.
var AllViews = []string{
	ViewDashboard, ViewNewsAnnouncement, ViewInventory, ViewAIChat,
	ViewPurchasing, ViewInfluencerDep, ViewLiveDep, ViewAffiliateDep, ViewBufferDep,
	ViewWarehouse, ViewShipments, ViewSettings, ViewExport,
}

// PurchasingViews: vistas por defecto de roles que solo solicitan.
var PurchasingViews = []string{
	ViewDashboard, ViewNewsAnnouncement,
	ViewPurchasing, ViewInfluencerDep, ViewLiveDep, ViewAffiliateDep, ViewBufferDep,
	ViewShipments, ViewAIChat, ViewExport,
}

// User representa una cuenta del tablero.
type User struct {
	ID                string   `json:"id"`
	Name              string   `json:"name"`
	Email             string   `json:"email"`
	PasswordHash      string   `json:"passwordHash"` // bcrypt
	Role              string   `json:"role"`
	CanManageAccounts bool     `json:"canManageAccounts"`
	CanCreateProducts bool     `json:"canCreateProducts"`
	CanAdjustStock    bool     `json:"canAdjustStock"`
	AllowedViews      []string `json:"allowedViews"`
}

// ApplyRoleDefaults asigna capacidades y vistas según el rol.
func (u *User) ApplyRoleDefaults() {
	warehouseLike := u.Role == RoleAdmin || u.Role == RoleWarehouse
	u.CanManageAccounts = u.Role == RoleAdmin
	u.CanCreateProducts = warehouseLike
	u.CanAdjustStock = warehouseLike
	if warehouseLike {
		u.AllowedViews = append([]string(nil), AllViews...)
	} else {
		u.AllowedViews = append([]string(nil), PurchasingViews...)
	}
}

// HomeView es la primera vista tras el login: DASHBOARD si está permitida.
func (u *User) HomeView() string {
	for _, v := range u.AllowedViews {
		if v == ViewDashboard {
			return v
		}
	}
	if len(u.AllowedViews) > 0 {
		return u.AllowedViews[0]
	}
	return ""
}

// Clone copia el usuario sin compartir la lista de vistas.
func (u User) Clone() User {
	out := u
	out.AllowedViews = append([]string(nil), u.AllowedViews...)
	return out
}
