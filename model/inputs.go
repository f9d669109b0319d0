package model

import "strings"

type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (c Credentials) Validate() error {
	errs := FieldErrors{}

	if !validEmail(c.Email) {
		errs["email"] = "a valid email address is required"
	}

	if c.Password == "" {
		errs["password"] = "password is required"
	}

	return errs.OrNil()
}

type GoogleProfile struct {
	Email     string `json:"email"`
	FirstName string `json:"firstName,omitempty"`
	LastName  string `json:"lastName,omitempty"`
	Picture   string `json:"picture,omitempty"`
}

type Registration struct {
	FirstName   string `json:"firstName"`
	LastName    string `json:"lastName"`
	Email       string `json:"email"`
	PhoneNumber string `json:"phoneNumber,omitempty"`
	Password    string `json:"password"`
}

func (r Registration) Validate() error {
	errs := FieldErrors{}

	if r.FirstName == "" {
		errs["firstName"] = "first name is required"
	}

	if r.LastName == "" {
		errs["lastName"] = "last name is required"
	}

	if !validEmail(r.Email) {
		errs["email"] = "a valid email address is required"
	}

	if len(r.Password) < 8 {
		errs["password"] = "password must be at least 8 characters"
	}

	return errs.OrNil()
}

type HomeInput struct {
	Name          string            `json:"name"`
	Type          string            `json:"type"`
	Configuration HomeConfiguration `json:"configuration"`
}

func (h HomeInput) Validate() error {
	errs := FieldErrors{}

	if h.Name == "" {
		errs["name"] = "name is required"
	}

	if h.Type == "" {
		errs["type"] = "type is required"
	}

	if h.Configuration.Floors < 1 {
		errs["configuration.floors"] = "a home must have at least one floor"
	}

	if h.Configuration.TotalArea <= 0 {
		errs["configuration.totalArea"] = "total area must be positive"
	}

	return errs.OrNil()
}

type AddressInput struct {
	Country        string `json:"country"`
	Region         string `json:"region"`
	City           string `json:"city"`
	Street         string `json:"street"`
	BuildingNumber string `json:"buildingNumber"`
	Apartment      string `json:"apartment,omitempty"`
	PostalCode     string `json:"postalCode,omitempty"`
}

func (a AddressInput) Validate() error {
	errs := FieldErrors{}

	if a.Country == "" {
		errs["country"] = "country is required"
	}

	if a.City == "" {
		errs["city"] = "city is required"
	}

	if a.Street == "" {
		errs["street"] = "street is required"
	}

	if a.BuildingNumber == "" {
		errs["buildingNumber"] = "building number is required"
	}

	return errs.OrNil()
}

// CreateHomeRequest is the two-part payload produced by the add home wizard.
type CreateHomeRequest struct {
	HomeData    HomeInput    `json:"homeData"`
	AddressData AddressInput `json:"addressData"`
}

func (c CreateHomeRequest) Validate() error {
	errs := FieldErrors{}

	if err := c.HomeData.Validate(); err != nil {
		mergeFieldErrors(errs, "homeData", err)
	}

	if err := c.AddressData.Validate(); err != nil {
		mergeFieldErrors(errs, "addressData", err)
	}

	return errs.OrNil()
}

type RoomInput struct {
	HomeID string `json:"homeId"`
	Name   string `json:"name"`
	Type   string `json:"type,omitempty"`
}

func (r RoomInput) Validate() error {
	errs := FieldErrors{}

	if r.HomeID == "" {
		errs["homeId"] = "home is required"
	}

	if r.Name == "" {
		errs["name"] = "name is required"
	}

	return errs.OrNil()
}

type AutomationInput struct {
	HomeID        string         `json:"homeId"`
	Name          string         `json:"name"`
	TriggerType   TriggerType    `json:"triggerType"`
	TimeTrigger   *TimeTrigger   `json:"timeTrigger,omitempty"`
	SensorTrigger *SensorTrigger `json:"sensorTrigger,omitempty"`
	IsActive      bool           `json:"isActive"`
}

func (a AutomationInput) Validate() error {
	errs := FieldErrors{}

	if a.HomeID == "" {
		errs["homeId"] = "home is required"
	}

	if a.Name == "" {
		errs["name"] = "name is required"
	}

	switch a.TriggerType {
	case TriggerTime:
		if a.TimeTrigger == nil || a.SensorTrigger != nil {
			errs["triggerType"] = "time automation must carry exactly a time trigger"
		}
	case TriggerSensor:
		if a.SensorTrigger == nil || a.TimeTrigger != nil {
			errs["triggerType"] = "sensor automation must carry exactly a sensor trigger"
		}
	default:
		errs["triggerType"] = "trigger type must be time or sensor"
	}

	return errs.OrNil()
}

type ProfileInput struct {
	FirstName   string `json:"firstName"`
	LastName    string `json:"lastName"`
	PhoneNumber string `json:"phoneNumber,omitempty"`
}

func (p ProfileInput) Validate() error {
	errs := FieldErrors{}

	if p.FirstName == "" {
		errs["firstName"] = "first name is required"
	}

	if p.LastName == "" {
		errs["lastName"] = "last name is required"
	}

	return errs.OrNil()
}

type PasswordChange struct {
	CurrentPassword string `json:"currentPassword"`
	NewPassword     string `json:"newPassword"`
}

func (p PasswordChange) Validate() error {
	errs := FieldErrors{}

	if p.CurrentPassword == "" {
		errs["currentPassword"] = "current password is required"
	}

	if len(p.NewPassword) < 8 {
		errs["newPassword"] = "new password must be at least 8 characters"
	}

	return errs.OrNil()
}

func validEmail(email string) bool {
	at := strings.Index(email, "@")
	if at < 1 {
		return false
	}

	domain := email[at+1:]

	return strings.Contains(domain, ".") && !strings.HasPrefix(domain, ".") && !strings.HasSuffix(domain, ".")
}

func mergeFieldErrors(into FieldErrors, prefix string, err error) {
	if fieldErrs, ok := err.(FieldErrors); ok {
		for field, message := range fieldErrs {
			into[prefix+"."+field] = message
		}
	} else {
		into[prefix] = err.Error()
	}
}
