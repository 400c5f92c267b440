package models

import (
	"encoding/json"
	"time"

	"go.mongodb.org/mongo-driver/bson"
)

const MemberStatusActive = "active"

type Member struct {
	ID               string     `bson:"_id" json:"id"`
	MemberNumber     string     `bson:"member_number" json:"member_number"`
	FirstName        string     `bson:"first_name" json:"first_name"`
	LastName         string     `bson:"last_name" json:"last_name"`
	Email            string     `bson:"email" json:"email"`
	PhoneNumber      string     `bson:"phone_number" json:"phone_number"`
	IDNumber         string     `bson:"id_number" json:"id_number"`
	Address          string     `bson:"address" json:"address"`
	BranchCode       string     `bson:"branch_code" json:"branch_code"`
	RegistrationDate time.Time  `bson:"registration_date" json:"registration_date"`
	Status           string     `bson:"status" json:"status"`
	CreatedAt        time.Time  `bson:"created_at" json:"created_at"`
	UpdatedAt        *time.Time `bson:"updated_at,omitempty" json:"updated_at,omitempty"`
}

func (m Member) FullName() string {
	return m.FirstName + " " + m.LastName
}

func (m Member) MarshalJSON() ([]byte, error) {
	type member Member
	return json.Marshal(struct {
		member
		FullName string `json:"full_name"`
	}{member(m), m.FullName()})
}

type MemberCreate struct {
	MemberNumber string `json:"member_number" binding:"required,max=32"`
	FirstName    string `json:"first_name" binding:"required"`
	LastName     string `json:"last_name" binding:"required"`
	Email        string `json:"email" binding:"required,email"`
	PhoneNumber  string `json:"phone_number" binding:"required"`
	IDNumber     string `json:"id_number" binding:"required"`
	Address      string `json:"address" binding:"required"`
	BranchCode   string `json:"branch_code" binding:"required"`
}

// NewMember stamps a create request with identity and timestamps.
func NewMember(in MemberCreate, id string, now time.Time) Member {
	return Member{
		ID:               id,
		MemberNumber:     in.MemberNumber,
		FirstName:        in.FirstName,
		LastName:         in.LastName,
		Email:            in.Email,
		PhoneNumber:      in.PhoneNumber,
		IDNumber:         in.IDNumber,
		Address:          in.Address,
		BranchCode:       in.BranchCode,
		RegistrationDate: now,
		Status:           MemberStatusActive,
		CreatedAt:        now,
	}
}

type MemberUpdate struct {
	FirstName   *string `json:"first_name" binding:"omitempty,min=1"`
	LastName    *string `json:"last_name" binding:"omitempty,min=1"`
	Email       *string `json:"email" binding:"omitempty,email"`
	PhoneNumber *string `json:"phone_number" binding:"omitempty,min=1"`
	Address     *string `json:"address"`
	BranchCode  *string `json:"branch_code" binding:"omitempty,min=1"`
	Status      *string `json:"status" binding:"omitempty,oneof=active inactive suspended"`
}

// Fields returns the $set document for the fields present in the request.
func (u MemberUpdate) Fields() bson.M {
	set := bson.M{}
	putString(set, "first_name", u.FirstName)
	putString(set, "last_name", u.LastName)
	putString(set, "email", u.Email)
	putString(set, "phone_number", u.PhoneNumber)
	putString(set, "address", u.Address)
	putString(set, "branch_code", u.BranchCode)
	putString(set, "status", u.Status)
	return set
}

type MemberFilter struct {
	Search string
	Skip   int64
	Limit  int64
}

func putString(set bson.M, key string, v *string) {
	if v != nil {
		set[key] = *v
	}
}

func putFloat(set bson.M, key string, v *float64) {
	if v != nil {
		set[key] = *v
	}
}
