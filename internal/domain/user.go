package domain

type UserRole string

const (
	UserRoleVendor   UserRole = "vendor"
	UserRoleCustomer UserRole = "customer"
	UserRoleAdmin    UserRole = "admin"
)

func (r UserRole) Valid() bool {
	switch r {
	case UserRoleVendor, UserRoleCustomer, UserRoleAdmin:
		return true
	}
	return false
}

type User struct {
	ID            int32    `json:"id"`
	Email         string   `json:"email"`
	PasswordHash  string   `json:"-"`
	FirstName     string   `json:"first_name"`
	LastName      string   `json:"last_name"`
	Role          UserRole `json:"role"`
	BusinessName  string   `json:"business_name,omitempty"`
	IsKYCVerified bool     `json:"is_kyc_verified"`
	CreatedOn     string   `json:"created_on"`
	UpdatedOn     string   `json:"updated_on"`
}

// Name returns the display name used in notifications and reviews.
func (u *User) Name() string {
	if u.LastName == "" {
		return u.FirstName
	}
	return u.FirstName + " " + u.LastName
}
