package entity

// PaymentMethod describes one payment channel available to the merchant
// account, as listed by payment/methods.
type PaymentMethod struct {
	Name              string             `json:"name"`
	Id                int                `json:"id"`
	Group             string             `json:"group,omitempty"`
	Subgroup          string             `json:"subgroup,omitempty"`
	Status            bool               `json:"status"`
	ImgUrl            string             `json:"imgUrl"`
	MobileImgUrl      string             `json:"mobileImgUrl"`
	Mobile            bool               `json:"mobile"`
	AvailabilityHours *AvailabilityHours `json:"availabilityHours,omitempty"`
}

type AvailabilityHours struct {
	MondayToFriday string `json:"mondayToFriday"`
	Saturday       string `json:"saturday"`
	Sunday         string `json:"sunday"`
}
