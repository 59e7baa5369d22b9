package models

// Booking carries the fields of a confirmed discovery-call slot that the
// notifier turns into operator and customer emails.
type Booking struct {
	BookingID    string `json:"booking_id"`
	Email        string `json:"email"`
	CustomerName string `json:"customer_name"`
	Company      string `json:"company"`
	Slot         string `json:"slot"`
}
