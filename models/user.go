package models

// Student is a roster entry used to contact the person a session is booked for.
type Student struct {
	Name              string `json:"name"`
	ContactPreference string `json:"contactPreference"` // e.g. "WhatsApp", "Instagram"
	ContactInfo       string `json:"contactInfo"`
}
