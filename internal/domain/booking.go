package domain

type BookingStatus string

const (
	BookingStatusPending   BookingStatus = "pending"
	BookingStatusConfirmed BookingStatus = "confirmed"
	BookingStatusCompleted BookingStatus = "completed"
	BookingStatusCancelled BookingStatus = "cancelled"
)

func (s BookingStatus) Valid() bool {
	switch s {
	case BookingStatusPending, BookingStatusConfirmed, BookingStatusCompleted, BookingStatusCancelled:
		return true
	}
	return false
}

// Terminal reports whether no transition leaves the status.
func (s BookingStatus) Terminal() bool {
	return s == BookingStatusCompleted || s == BookingStatusCancelled
}

// CanTransition encodes the booking state machine. Bookings are created
// pending; a vendor accept moves them to confirmed, a vendor reject or a
// customer cancel moves them to cancelled, and a return (explicit or via the
// elapsed-bookings job) moves confirmed to completed.
func CanTransition(from, to BookingStatus) bool {
	switch from {
	case BookingStatusPending:
		return to == BookingStatusConfirmed || to == BookingStatusCancelled
	case BookingStatusConfirmed:
		return to == BookingStatusCompleted
	}
	return false
}

type DeliveryOption string

const (
	DeliveryPickup   DeliveryOption = "pickup"
	DeliveryDelivery DeliveryOption = "delivery"
)

func (d DeliveryOption) Valid() bool {
	return d == DeliveryPickup || d == DeliveryDelivery
}

// Booking is immutable after creation except for status, the fields written
// by the transition that sets it (cancel reason, completed_by) and the
// version counter guarding concurrent status updates. The rate fields are a
// snapshot of the equipment at creation time; total_amount is never
// recomputed.
type Booking struct {
	ID             int32          `json:"id"`
	IdempotencyKey string         `json:"-"`
	EquipmentID    int32          `json:"equipment_id"`
	EquipmentName  string         `json:"equipment_name"`
	CustomerID     int32          `json:"customer_id"`
	CustomerName   string         `json:"customer_name"`
	CustomerEmail  string         `json:"customer_email"`
	VendorID       int32          `json:"vendor_id"`
	VendorName     string         `json:"vendor_name"`
	StartDate      string         `json:"start_date"`
	EndDate        string         `json:"end_date"`
	Quantity       int32          `json:"quantity"`
	DeliveryOption DeliveryOption `json:"delivery_option"`
	DailyRate      int64          `json:"daily_rate"`
	WeeklyRate     int64          `json:"weekly_rate"`
	TotalAmount    int64          `json:"total_amount"`
	Status         BookingStatus  `json:"status"`
	CancelReason   string         `json:"cancel_reason,omitempty"`
	CompletedBy    *int32         `json:"completed_by,omitempty"`
	Version        int32          `json:"version"`
	CreatedOn      string         `json:"created_on"`
	UpdatedOn      string         `json:"updated_on"`
}

// Party returns the reviewer role userID holds on the booking, or "" when
// the user is not a party to it.
func (b *Booking) Party(userID int32) ReviewerRole {
	switch userID {
	case b.CustomerID:
		return ReviewerRoleRenter
	case b.VendorID:
		return ReviewerRoleVendor
	}
	return ""
}
