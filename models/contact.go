package models

// Contact represents a single address-book record. Booleans are native in
// the domain model; the storage layer translates them to INTEGER 0/1
// columns at its boundary.
type Contact struct {
	// ContactID is the internal unique identifier of the contact,
	// assigned by the storage layer on creation.
	ContactID int64 `json:"id"`

	// FirstName is required and non-empty after trimming.
	FirstName string `json:"firstName"`

	// LastName is required and non-empty after trimming.
	LastName string `json:"lastName"`

	// Address is the free-text postal address. When the address was
	// geocoded successfully it holds the provider's normalized form.
	Address string `json:"address"`

	// Phone is an optional phone number.
	Phone string `json:"phone"`

	// Email is an optional e-mail address.
	Email string `json:"email"`

	// Title is an optional honorific or job title.
	Title string `json:"title"`

	// ContactByMail indicates the person agreed to be contacted by post.
	ContactByMail bool `json:"contactByMail"`

	// ContactByPhone indicates the person agreed to be contacted by phone.
	ContactByPhone bool `json:"contactByPhone"`

	// ContactByEmail indicates the person agreed to be contacted by e-mail.
	ContactByEmail bool `json:"contactByEmail"`

	// Latitude of the geocoded address. (0,0) together with Longitude is
	// the sentinel for "no resolved location".
	Latitude float64 `json:"latitude"`

	// Longitude of the geocoded address. See Latitude.
	Longitude float64 `json:"longitude"`
}

// HasLocation reports whether the contact carries resolved map
// coordinates. The pair (0,0) is reserved as the "unresolved" sentinel
// and is never a valid location in this system.
func (c Contact) HasLocation() bool {
	return c.Latitude != 0 || c.Longitude != 0
}

// FullName returns the display name used in page titles and messages.
func (c Contact) FullName() string {
	return c.FirstName + " " + c.LastName
}

// TableName returns the name of the database table
// associated with the Contact model.
func (c Contact) TableName() string {
	return "contacts"
}

// ContactInput is the boundary representation of the dynamic contact-form
// payload: an explicit structured record with named fields, validated
// before it reaches the store.
type ContactInput struct {
	FirstName      string `json:"firstName"`
	LastName       string `json:"lastName"`
	Address        string `json:"address"`
	Phone          string `json:"phone"`
	Email          string `json:"email"`
	Title          string `json:"title"`
	ContactByMail  bool   `json:"contactByMail"`
	ContactByPhone bool   `json:"contactByPhone"`
	ContactByEmail bool   `json:"contactByEmail"`
}
