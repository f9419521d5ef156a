package dto

type CreateRestaurantRequest struct {
	Name             string `json:"name" validate:"required,max=255"`
	CuisineType      string `json:"cuisineType" validate:"max=100"`
	Location         string `json:"location" validate:"max=255"`
	FranchiseGroupID string `json:"franchiseGroupId" validate:"omitempty,uuid"`
}

type RestaurantResponse struct {
	ID               string  `json:"id"`
	Name             string  `json:"name"`
	CuisineType      string  `json:"cuisineType"`
	Location         string  `json:"location"`
	FranchiseGroupID *string `json:"franchiseGroupId"`
	CreatedAt        string  `json:"createdAt"`
}
