package model

type HomeRole string

const (
	RoleOwner  HomeRole = "owner"
	RoleMember HomeRole = "member"
	RoleGuest  HomeRole = "guest"
)

type HomeConfiguration struct {
	Floors    int     `json:"floors"`
	TotalArea float64 `json:"totalArea"`
	Timezone  string  `json:"timezone,omitempty"`
}

type Address struct {
	Country        string `json:"country"`
	Region         string `json:"region"`
	City           string `json:"city"`
	Street         string `json:"street"`
	BuildingNumber string `json:"buildingNumber"`
	Apartment      string `json:"apartment,omitempty"`
	PostalCode     string `json:"postalCode,omitempty"`
}

type Home struct {
	ID            string            `json:"id"`
	Name          string            `json:"name"`
	Type          string            `json:"type"`
	Configuration HomeConfiguration `json:"configuration"`
	Address       Address           `json:"address"`
	Role          HomeRole          `json:"role"`
}
