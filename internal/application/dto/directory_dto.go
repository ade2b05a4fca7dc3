package dto

// CreateStoreRequest alta de cadena con sus sucursales.
type CreateStoreRequest struct {
	Name        string   `json:"name"`
	SubBranches []string `json:"sub_branches"`
}

// CreateInfluencerRequest alta de influencer.
type CreateInfluencerRequest struct {
	Name string `json:"name"`
}
