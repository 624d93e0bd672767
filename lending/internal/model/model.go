package model

import (
	"database/sql"
	"strings"
	"time"
)

type Condition string

const (
	ConditionExcellent   Condition = "EXCELLENT"
	ConditionGood        Condition = "GOOD"
	ConditionFair        Condition = "FAIR"
	ConditionPoor        Condition = "POOR"
	ConditionNeedsRepair Condition = "NEEDS_REPAIR"
)

type Status string

const (
	StatusPending   Status = "PENDING"
	StatusApproved  Status = "APPROVED"
	StatusDenied    Status = "DENIED"
	StatusCancelled Status = "CANCELLED"
	StatusReturned  Status = "RETURNED"
)

type Equipment struct {
	ID                int       `json:"-" db:"id"`
	EquipmentUid      string    `json:"equipmentUid" db:"equipment_uid"`
	Name              string    `json:"name" db:"name"`
	Category          string    `json:"category" db:"category"`
	Condition         Condition `json:"condition" db:"condition"`
	Description       string    `json:"description" db:"description"`
	ImageURL          string    `json:"imageUrl" db:"image_url"`
	Quantity          int       `json:"quantity" db:"quantity"`
	AvailableQuantity int       `json:"availableQuantity" db:"available_quantity"`
	CreatedAt         time.Time `json:"-" db:"created_at"`
}

type EquipmentRequest struct {
	ID           int        `json:"-" db:"id"`
	RequestUid   string     `json:"requestUid" db:"request_uid"`
	RequesterID  int        `json:"-" db:"requester_id"`
	EquipmentID  int        `json:"-" db:"equipment_id"`
	Quantity     int        `json:"quantity" db:"quantity"`
	Status       Status     `json:"status" db:"status"`
	RequestDate  time.Time  `json:"requestDate" db:"request_date"`
	RequiredDate time.Time  `json:"requiredDate" db:"required_date"`
	ReturnDate   *time.Time `json:"returnDate,omitempty" db:"return_date"`
	Purpose      string     `json:"purpose" db:"purpose"`
	Notes        string     `json:"notes,omitempty" db:"notes"`
	DenialReason string     `json:"denialReason,omitempty" db:"denial_reason"`
	ApproverID   *int       `json:"-" db:"approver_id"`
	ApprovedDate *time.Time `json:"approvedDate,omitempty" db:"approved_date"`
	ReturnedDate *time.Time `json:"returnedDate,omitempty" db:"returned_date"`
}

// RequestView is the read projection joining requester, approver and
// equipment display attributes for listings.
type RequestView struct {
	EquipmentRequest
	RequesterName      string         `json:"requesterName" db:"requester_name"`
	RequesterRole      string         `json:"requesterRole" db:"requester_role"`
	EquipmentUid       string         `json:"equipmentUid" db:"equipment_uid"`
	EquipmentName      string         `json:"equipmentName" db:"equipment_name"`
	EquipmentCategory  string         `json:"equipmentCategory" db:"equipment_category"`
	EquipmentCondition Condition      `json:"equipmentCondition" db:"equipment_condition"`
	ApproverName       sql.NullString `json:"-" db:"approver_name"`
}

type User struct {
	ID        int       `json:"-" db:"id"`
	UserUid   string    `json:"userUid" db:"user_uid"`
	Username  string    `json:"username" db:"username"`
	Email     string    `json:"email" db:"email"`
	Password  string    `json:"-" db:"password"`
	FullName  string    `json:"fullName" db:"full_name"`
	Role      string    `json:"role" db:"role"`
	IsActive  bool      `json:"isActive" db:"is_active"`
	CreatedAt time.Time `json:"-" db:"created_at"`
}

type Paging struct {
	Page          int `json:"page"`
	PageSize      int `json:"pageSize"`
	TotalElements int `json:"totalElements"`
}

type ListEquipment struct {
	Paging `json:",inline"`
	Items  []Equipment `json:"items"`
}

type ListRequests struct {
	Paging `json:",inline"`
	Items  []RequestView `json:"items"`
}

// Date is a date-only JSON value in 2006-01-02 form.
type Date struct {
	time.Time `json:",inline"`
}

func (d *Date) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), `"`)
	if s == "" || s == "null" {
		return nil
	}
	t, err := time.Parse(time.DateOnly, s)
	if err != nil {
		return err
	}
	d.Time = t
	return nil
}

func (d Date) MarshalJSON() ([]byte, error) {
	if d.IsZero() {
		return []byte("null"), nil
	}
	return []byte(`"` + d.Format(time.DateOnly) + `"`), nil
}
