package model

type CreateEquipmentRequest struct {
	Name              string    `json:"name" validate:"required"`
	Category          string    `json:"category" validate:"required"`
	Condition         Condition `json:"condition" validate:"required,oneof=EXCELLENT GOOD FAIR POOR NEEDS_REPAIR"`
	Description       string    `json:"description"`
	ImageURL          string    `json:"imageUrl"`
	Quantity          int       `json:"quantity" validate:"gte=0"`
	AvailableQuantity *int      `json:"availableQuantity,omitempty" validate:"omitempty,gte=0"`
}

// AdjustCapacityRequest is the administrative edit of equipment counts.
type AdjustCapacityRequest struct {
	Quantity          int `json:"quantity"`
	AvailableQuantity int `json:"availableQuantity"`
}

type UpdateEquipmentRequest struct {
	Name        *string    `json:"name,omitempty"`
	Category    *string    `json:"category,omitempty"`
	Condition   *Condition `json:"condition,omitempty" validate:"omitempty,oneof=EXCELLENT GOOD FAIR POOR NEEDS_REPAIR"`
	Description *string    `json:"description,omitempty"`
	ImageURL    *string    `json:"imageUrl,omitempty"`
}

type CreateRequestRequest struct {
	EquipmentUid string `json:"equipmentUid" validate:"required,uuid"`
	Quantity     int    `json:"quantity" validate:"required,gt=0"`
	RequiredDate Date   `json:"requiredDate" validate:"required"`
	ReturnDate   *Date  `json:"returnDate,omitempty"`
	Purpose      string `json:"purpose" validate:"required"`
	Username     string `json:"-" validate:"required"`
}

type ApproveRequest struct {
	Notes string `json:"notes"`
}

type DenyRequest struct {
	DenialReason string `json:"denialReason" validate:"required"`
}

type UserCreateRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required,min=8"`
	Email    string `json:"email" validate:"required,email"`
	FullName string `json:"fullName" validate:"required"`
	Role     string `json:"role" validate:"required"`
}

type AuthRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type AuthResponse struct {
	ExpiresIn   int    `json:"expiresIn"`
	AccessToken string `json:"accessToken"`
}

type EquipmentFilter struct {
	Category      string
	Condition     Condition
	Search        string
	AvailableOnly bool
	Page          int
	Size          int
}

type RequestFilter struct {
	Status       Status
	EquipmentUid string
	Requester    string
	Page         int
	Size         int
}

type RequestStatistics struct {
	TotalRequests int `json:"totalRequests" db:"total_requests"`
	Pending       int `json:"pending" db:"pending"`
	Approved      int `json:"approved" db:"approved"`
	Denied        int `json:"denied" db:"denied"`
	Cancelled     int `json:"cancelled" db:"cancelled"`
	Returned      int `json:"returned" db:"returned"`
}

type EquipmentStatistics struct {
	TotalItems     int `json:"totalItems" db:"total_items"`
	TotalUnits     int `json:"totalUnits" db:"total_units"`
	AvailableUnits int `json:"availableUnits" db:"available_units"`
	OnLoanUnits    int `json:"onLoanUnits" db:"on_loan_units"`
}

type Statistics struct {
	Requests  RequestStatistics   `json:"requests"`
	Equipment EquipmentStatistics `json:"equipment"`
}
