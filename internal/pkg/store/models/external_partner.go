package models

import (
	"encoding/json"
	"strconv"
	"time"
)

type ExternalPartner struct {
	ID             string      `bson:"_id" json:"id"`
	PartnerName    string      `bson:"partner_name" json:"partner_name"`
	PartnerType    PartnerType `bson:"partner_type" json:"partner_type"`
	ContactPerson  string      `bson:"contact_person" json:"contact_person"`
	Email          string      `bson:"email" json:"email"`
	PhoneNumber    string      `bson:"phone_number" json:"phone_number"`
	CommissionRate float64     `bson:"commission_rate" json:"commission_rate"`
	IsActive       bool        `bson:"is_active" json:"is_active"`
	CreatedAt      time.Time   `bson:"created_at" json:"created_at"`
}

func (p ExternalPartner) CommissionPercentage() string {
	return strconv.FormatFloat(p.CommissionRate, 'f', -1, 64) + "%"
}

// Commission is the partner's cut of a recovered amount.
func (p ExternalPartner) Commission(recovered float64) float64 {
	return RoundToCents(recovered * p.CommissionRate / 100)
}

func (p ExternalPartner) MarshalJSON() ([]byte, error) {
	type partner ExternalPartner
	return json.Marshal(struct {
		partner
		CommissionPercentage string `json:"commission_percentage"`
	}{partner(p), p.CommissionPercentage()})
}

type ExternalPartnerCreate struct {
	PartnerName    string      `json:"partner_name" binding:"required"`
	PartnerType    PartnerType `json:"partner_type" binding:"required,oneof=debt_collector auctioneer legal_firm"`
	ContactPerson  string      `json:"contact_person" binding:"required"`
	Email          string      `json:"email" binding:"required,email"`
	PhoneNumber    string      `json:"phone_number" binding:"required"`
	CommissionRate float64     `json:"commission_rate" binding:"gte=0,lte=100"`
}

func NewExternalPartner(in ExternalPartnerCreate, id string, now time.Time) ExternalPartner {
	return ExternalPartner{
		ID:             id,
		PartnerName:    in.PartnerName,
		PartnerType:    in.PartnerType,
		ContactPerson:  in.ContactPerson,
		Email:          in.Email,
		PhoneNumber:    in.PhoneNumber,
		CommissionRate: in.CommissionRate,
		IsActive:       true,
		CreatedAt:      now,
	}
}
